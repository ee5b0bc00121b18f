package testutil_test

import (
	"testing"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/errors"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	if err := db.Table("analysis_runs").Count(&count).Error; err != nil {
		t.Errorf("table analysis_runs should exist after migration: %v", err)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	run := testutil.CreateTestRun(t, db, models.EndpointNews, models.RunStatusFailed)
	if run.ID == "" {
		t.Fatal("run should have an ID")
	}
	if run.ErrorCode == "" {
		t.Error("failed run should carry an error code")
	}

	series := testutil.PriceSeries("TCS.NS", 10, 11, 12)
	if len(series.Bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(series.Bars))
	}
	if !series.Bars[2].Date.Equal(testutil.SeriesStart.AddDate(0, 0, 2)) {
		t.Errorf("unexpected third date %v", series.Bars[2].Date)
	}

	wavy := testutil.WavySeries("INFY.NS", 200, 100)
	for i, b := range wavy.Bars {
		if b.Close <= 0 {
			t.Fatalf("bar %d has non-positive close %v", i, b.Close)
		}
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrNewsNotFound, "custom message")
	testutil.AssertAppError(t, err, "NEWS_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
