// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/Rhymond/go-money"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// tickerRegex accepts Yahoo-style symbols: RELIANCE.NS, BRK-B, ^NSEI, EURUSD=X, M&M.NS.
var tickerRegex = regexp.MustCompile(`^[A-Za-z0-9^][A-Za-z0-9.\-=^&]{0,19}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ticker", validateTicker)
		_ = v.RegisterValidation("iso4217", validateISO4217)
	}
}

// IsTicker reports whether s looks like a market data symbol.
func IsTicker(s string) bool {
	return tickerRegex.MatchString(s)
}

func validateTicker(fl validator.FieldLevel) bool {
	return IsTicker(fl.Field().String())
}

func validateISO4217(fl validator.FieldLevel) bool {
	return money.GetCurrency(fl.Field().String()) != nil
}
