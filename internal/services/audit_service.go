package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/errors"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/logger"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/pagination"
)

// auditService handles analysis run recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer. A nil db disables recording
// and lists nothing.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Record stores a finished run. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Record(run RunRecord) {
	if s.db == nil {
		return
	}

	entry := &models.AnalysisRun{
		Endpoint:   run.Endpoint,
		Subject:    run.Subject,
		Status:     models.RunStatusSucceeded,
		DurationMS: run.Duration.Milliseconds(),
		ClientIP:   run.ClientIP,
	}
	if run.Err != nil {
		entry.Status = models.RunStatusFailed
		entry.ErrorCode = apperrors.ErrInternalServer.Code
		var appErr *apperrors.AppError
		if errors.As(run.Err, &appErr) {
			entry.ErrorCode = appErr.Code
		}
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create analysis run entry",
			"error", err,
			"endpoint", run.Endpoint,
			"subject", run.Subject,
		)
	}
}

// ListRuns returns a paginated list of runs, newest first, optionally filtered by endpoint.
func (s *auditService) ListRuns(page pagination.PageRequest, endpoint *models.Endpoint) (*pagination.PageResponse[models.AnalysisRun], error) {
	page.Defaults()
	if s.db == nil {
		result := pagination.NewPageResponse[models.AnalysisRun](nil, page.Page, page.PageSize, 0)
		return &result, nil
	}

	filter := func(db *gorm.DB) *gorm.DB {
		if endpoint != nil {
			return db.Where("endpoint = ?", *endpoint)
		}
		return db
	}

	var totalItems int64
	if err := s.db.Model(&models.AnalysisRun{}).Scopes(filter).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var runs []models.AnalysisRun
	if err := s.db.Scopes(filter).Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&runs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(runs, page.Page, page.PageSize, totalItems)
	return &result, nil
}
