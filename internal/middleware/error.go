package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/errors"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/logger"
)

// ErrorHandler returns a Gin middleware that turns errors attached to the Gin
// context into the JSON error envelope. It also answers REQUEST_TIMEOUT when
// the request deadline passed before any handler wrote a response.
// Responses already written are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		var err error
		switch {
		case len(c.Errors) > 0:
			// The last error is the most relevant in a middleware chain.
			err = c.Errors.Last().Err
		case errors.Is(c.Request.Context().Err(), context.DeadlineExceeded):
			err = apperrors.Wrap(apperrors.ErrRequestTimeout, c.Request.Context().Err())
		default:
			return
		}
		if errors.Is(err, context.DeadlineExceeded) {
			err = apperrors.Wrap(apperrors.ErrRequestTimeout, err)
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				logger.Get().Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
					"request_id", RequestID(c),
				)
			}
			abortWithError(c, appErr)
			return
		}

		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", RequestID(c),
		)
		abortWithError(c, apperrors.ErrInternalServer)
	}
}

func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
