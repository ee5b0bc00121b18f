package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/errors"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/logger"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/marketdata"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/services"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
// Anything caused by the request deadline becomes REQUEST_TIMEOUT.
func respondWithError(c *gin.Context, err error) {
	err = deadlineError(err)

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}

// deadlineError maps failures caused by the request deadline to REQUEST_TIMEOUT.
func deadlineError(err error) error {
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.ErrRequestTimeout.Code {
			return err
		}
		return apperrors.Wrap(apperrors.ErrRequestTimeout, err)
	}
	return err
}

// recordRun writes the audit entry for a finished analysis request. The
// stored error code matches the one the client receives.
func recordRun(c *gin.Context, audit services.AuditServicer, endpoint models.Endpoint, subject string, start time.Time, err error) {
	audit.Record(services.RunRecord{
		Endpoint: endpoint,
		Subject:  subject,
		Err:      deadlineError(err),
		Duration: time.Since(start),
		ClientIP: c.ClientIP(),
	})
}

// normalizeSymbols upper-cases symbols and drops duplicates, keeping first-seen order.
func normalizeSymbols(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = marketdata.NormalizeSymbol(s)
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func subject(symbols ...string) string {
	return strings.Join(symbols, ",")
}
