// Package errors provides custom error types for the stock insight API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// ForSymbol creates a new AppError whose message names the ticker that failed,
// keeping the internal cause for logging.
func ForSymbol(sentinel *AppError, symbol string, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    fmt.Sprintf("%s for %s", sentinel.Message, symbol),
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrRequestTimeout = &AppError{Code: "REQUEST_TIMEOUT", Message: "The request took too long to complete", StatusCode: http.StatusGatewayTimeout}
)

// Market data errors.
var (
	ErrDataFetchFailed  = &AppError{Code: "DATA_FETCH_FAILED", Message: "Data fetch failed", StatusCode: http.StatusBadGateway}
	ErrPriceUnavailable = &AppError{Code: "PRICE_UNAVAILABLE", Message: "Failed to fetch current price", StatusCode: http.StatusBadGateway}
)

// Analysis errors.
var (
	ErrCalculationFailed   = &AppError{Code: "CALCULATION_FAILED", Message: "Error calculating returns", StatusCode: http.StatusUnprocessableEntity}
	ErrInsufficientHistory = &AppError{Code: "INSUFFICIENT_HISTORY", Message: "Not enough price history to build a forecast", StatusCode: http.StatusUnprocessableEntity}
	ErrPredictionFailed    = &AppError{Code: "PREDICTION_FAILED", Message: "Prediction failed", StatusCode: http.StatusInternalServerError}
)

// News errors.
var (
	ErrNewsNotFound = &AppError{Code: "NEWS_NOT_FOUND", Message: "No news found for this stock", StatusCode: http.StatusNotFound}
)
