package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/errors"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/pagination"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/services"
)

// RunHandler serves the analysis audit trail.
type RunHandler struct {
	auditService services.AuditServicer
}

// NewRunHandler creates a new RunHandler.
func NewRunHandler(auditService services.AuditServicer) *RunHandler {
	return &RunHandler{auditService: auditService}
}

// ListRunsQuery holds the query parameters for listing runs.
type ListRunsQuery struct {
	pagination.PageRequest
	Endpoint string `form:"endpoint" binding:"omitempty,oneof=predict_stock news portfolio_optimize loss_averaging"`
}

// ListRuns handles listing recorded analysis runs.
// @Summary     List analysis runs
// @Description Get a paginated list of recorded analysis requests, newest first
// @Tags        runs
// @Produce     json
// @Param       endpoint  query string false "Filter by endpoint"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.AnalysisRun] "Runs"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/v1/runs [get]
func (h *RunHandler) ListRuns(c *gin.Context) {
	var q ListRunsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var endpoint *models.Endpoint
	if q.Endpoint != "" {
		e := models.Endpoint(q.Endpoint)
		endpoint = &e
	}

	page, err := h.auditService.ListRuns(q.PageRequest, endpoint)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
