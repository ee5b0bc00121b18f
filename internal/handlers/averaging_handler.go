package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/analytics"
	apperrors "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/errors"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/marketdata"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/services"
)

// AveragingHandler handles loss-averaging requests.
type AveragingHandler struct {
	averagingService services.AveragingServicer
	auditService     services.AuditServicer
}

// NewAveragingHandler creates a new AveragingHandler.
func NewAveragingHandler(averagingService services.AveragingServicer, auditService services.AuditServicer) *AveragingHandler {
	return &AveragingHandler{averagingService: averagingService, auditService: auditService}
}

// LossAveragingRequest represents the request payload for the loss-averaging calculator.
type LossAveragingRequest struct {
	StockSymbol  string  `json:"stock_symbol" binding:"required,ticker"`
	AvgPrice     float64 `json:"avg_price" binding:"required,gt=0"`
	NumShares    int64   `json:"num_shares" binding:"required,gt=0"`
	InvestAmount float64 `json:"invest_amount" binding:"required,gt=0"`
	Currency     string  `json:"currency" binding:"omitempty,iso4217"`
}

// LossAveraging handles suggesting how many shares to buy to lower the average price.
// @Summary     Loss averaging
// @Description Suggest additional shares to buy when the price is 15% or more below the average cost
// @Tags        analysis
// @Accept      json
// @Produce     json
// @Param       request body LossAveragingRequest true "Current holding and available cash"
// @Success     200 {object} analytics.AveragingResult "Suggestion"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Price unavailable"
// @Router      /loss-averaging [post]
func (h *AveragingHandler) LossAveraging(c *gin.Context) {
	var req LossAveragingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	symbol := marketdata.NormalizeSymbol(req.StockSymbol)

	start := time.Now()
	result, err := h.averagingService.Calculate(c.Request.Context(), analytics.Position{
		Symbol:       symbol,
		AvgPrice:     req.AvgPrice,
		NumShares:    req.NumShares,
		InvestAmount: req.InvestAmount,
		Currency:     req.Currency,
	})
	recordRun(c, h.auditService, models.EndpointLossAveraging, symbol, start, err)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
