package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/errors"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/marketdata"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/services"
)

// PredictionHandler handles price forecasting requests.
type PredictionHandler struct {
	predictionService services.PredictionServicer
	auditService      services.AuditServicer
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(predictionService services.PredictionServicer, auditService services.AuditServicer) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService, auditService: auditService}
}

// PredictStockRequest represents the request payload for a price forecast.
type PredictStockRequest struct {
	Symbol string `json:"symbol" binding:"required,ticker"`
}

// PredictStock handles forecasting a stock's price.
// @Summary     Forecast stock price
// @Description Train a recurrent model on daily history and forecast the next 100 days
// @Tags        analysis
// @Accept      json
// @Produce     json
// @Param       request body PredictStockRequest true "Ticker symbol"
// @Success     200 {object} services.PredictionResult "Errors and base64 PNG charts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     422 {object} ErrorResponse "Not enough history"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Failure     500 {object} ErrorResponse "Prediction failed"
// @Router      /predict_stock [post]
func (h *PredictionHandler) PredictStock(c *gin.Context) {
	var req PredictStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	symbol := marketdata.NormalizeSymbol(req.Symbol)

	start := time.Now()
	result, err := h.predictionService.Predict(c.Request.Context(), symbol)
	recordRun(c, h.auditService, models.EndpointPrediction, symbol, start, err)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
