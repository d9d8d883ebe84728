package services

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// NewValidator builds the shared validator with domain rules registered.
func NewValidator() *validator.Validate {
	validate := validator.New()

	// Model years far outside a sane range are rejected outright.
	_ = validate.RegisterValidation("bike_year", func(fl validator.FieldLevel) bool {
		year := fl.Field().Int()
		return year >= 1900 && year <= int64(time.Now().Year()+1)
	})

	return validate
}
