package httputil

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// priceRe matches the decimal price format the store carries: up to eight
// integer digits and at most two decimals, so NUMERIC(10,2) never rounds
// what the client sent.
var priceRe = regexp.MustCompile(`^\d{1,8}(\.\d{1,2})?$`)

// NewValidator returns a request validator with the shared custom tags
// registered. "price" validates the decimal price string.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		return priceRe.MatchString(fl.Field().String())
	})
	return v
}
