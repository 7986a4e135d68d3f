package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/magicvilla/villa-api/internal/pkg/validation"
)

// echoValidator adapts validation.Validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validation.Validator
}

// NewValidator returns an echo.Validator whose failures are
// *domain.ValidationError values.
func NewValidator(v *validation.Validator) echo.Validator {
	return &echoValidator{v: v}
}

func (ev *echoValidator) Validate(i any) error {
	return ev.v.Struct(i)
}
