package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/nwtrack/networth_backend/internal/apperrors"
)

// validate backs the explicit validation boundary. It reuses the `binding`
// tags that gin checks at bind time, so a request is validated by the same
// rules whether it arrives over HTTP or is constructed directly (service
// callers, tests).
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// Validate runs struct-tag validation on a request payload and wraps any
// failure in apperrors.ErrValidation so callers can match with errors.Is.
func Validate(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}
