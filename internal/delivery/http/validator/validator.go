// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can validate bound request structs by tag.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps a single validator instance shared by all handlers.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the Echo validator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Tag violations surface as 400s through
// the central error handler.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
