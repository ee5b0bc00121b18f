package services

import (
	"testing"
	"time"

	apperrors "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/errors"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/pagination"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/testutil"
)

func TestAuditRecord(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	svc.Record(RunRecord{Endpoint: models.EndpointNews, Subject: "TCS.NS", Duration: 1500 * time.Millisecond, ClientIP: "10.0.0.1"})
	svc.Record(RunRecord{Endpoint: models.EndpointPortfolio, Subject: "A,B", Err: apperrors.ErrDataFetchFailed})

	var runs []models.AnalysisRun
	if err := db.Order("endpoint ASC").Find(&runs).Error; err != nil {
		t.Fatalf("query runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Status != models.RunStatusSucceeded || runs[0].DurationMS != 1500 {
		t.Errorf("unexpected success run %+v", runs[0])
	}
	if runs[1].Status != models.RunStatusFailed || runs[1].ErrorCode != "DATA_FETCH_FAILED" {
		t.Errorf("unexpected failed run %+v", runs[1])
	}
	if runs[0].ID == "" {
		t.Error("expected generated ID")
	}
}

func TestListRuns(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	for i := 0; i < 3; i++ {
		testutil.CreateTestRun(t, db, models.EndpointPrediction, models.RunStatusSucceeded)
	}
	testutil.CreateTestRun(t, db, models.EndpointNews, models.RunStatusFailed)

	t.Run("all", func(t *testing.T) {
		page, err := svc.ListRuns(pagination.PageRequest{Page: 1, PageSize: 2}, nil)
		testutil.AssertNoError(t, err)
		if page.TotalItems != 4 || page.TotalPages != 2 || len(page.Data) != 2 {
			t.Errorf("unexpected page %+v", page)
		}
	})

	t.Run("filtered", func(t *testing.T) {
		endpoint := models.EndpointNews
		page, err := svc.ListRuns(pagination.PageRequest{}, &endpoint)
		testutil.AssertNoError(t, err)
		if page.TotalItems != 1 || page.Data[0].Endpoint != models.EndpointNews {
			t.Errorf("unexpected filtered page %+v", page)
		}
		if page.PageSize != 20 {
			t.Errorf("expected default page size 20, got %d", page.PageSize)
		}
	})
}

func TestAuditDisabled(t *testing.T) {
	svc := NewAuditService(nil)
	svc.Record(RunRecord{Endpoint: models.EndpointNews, Subject: "TCS.NS"})

	page, err := svc.ListRuns(pagination.PageRequest{}, nil)
	testutil.AssertNoError(t, err)
	if page.TotalItems != 0 || len(page.Data) != 0 {
		t.Errorf("expected empty page, got %+v", page)
	}
}
