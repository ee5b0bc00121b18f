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

const defaultNewsSymbol = "RELIANCE.NS"

// NewsHandler handles news sentiment requests.
type NewsHandler struct {
	sentimentService services.SentimentServicer
	auditService     services.AuditServicer
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(sentimentService services.SentimentServicer, auditService services.AuditServicer) *NewsHandler {
	return &NewsHandler{sentimentService: sentimentService, auditService: auditService}
}

// NewsQuery holds the query parameters for the news endpoint.
type NewsQuery struct {
	Symbol string `form:"symbol" binding:"omitempty,ticker"`
}

// GetNews handles news sentiment and fundamentals for a stock.
// @Summary     News sentiment
// @Description Classify recent news sentiment and rate company fundamentals
// @Tags        analysis
// @Produce     json
// @Param       symbol query string false "Ticker symbol (default RELIANCE.NS)"
// @Success     200 {object} services.NewsReport "Sentiment report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "No news found"
// @Failure     502 {object} ErrorResponse "News feed unavailable"
// @Router      /news [get]
func (h *NewsHandler) GetNews(c *gin.Context) {
	var q NewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	symbol := defaultNewsSymbol
	if q.Symbol != "" {
		symbol = marketdata.NormalizeSymbol(q.Symbol)
	}

	start := time.Now()
	report, err := h.sentimentService.Analyze(c.Request.Context(), symbol)
	recordRun(c, h.auditService, models.EndpointNews, symbol, start, err)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
