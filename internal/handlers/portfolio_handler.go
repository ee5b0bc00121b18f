package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/errors"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/services"
)

// PortfolioHandler handles portfolio optimization requests.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
	auditService     services.AuditServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer, auditService services.AuditServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, auditService: auditService}
}

// OptimizePortfolioRequest represents the request payload for portfolio optimization.
type OptimizePortfolioRequest struct {
	Stocks     []string `json:"stocks" binding:"required,min=1,max=25,dive,ticker"`
	Investment float64  `json:"investment" binding:"required,gt=0"`
}

// OptimizePortfolio handles allocating an investment across stocks.
// @Summary     Optimize portfolio
// @Description Score stocks on return, volatility and revenue growth and allocate whole shares
// @Tags        analysis
// @Accept      json
// @Produce     json
// @Param       request body OptimizePortfolioRequest true "Stocks and investment amount"
// @Success     200 {object} services.PortfolioResult "Allocation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     422 {object} ErrorResponse "Calculation failed"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /portfolio-optimize [post]
func (h *PortfolioHandler) OptimizePortfolio(c *gin.Context) {
	var req OptimizePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	symbols := normalizeSymbols(req.Stocks)

	start := time.Now()
	result, err := h.portfolioService.Optimize(c.Request.Context(), symbols, req.Investment)
	recordRun(c, h.auditService, models.EndpointPortfolio, subject(symbols...), start, err)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
