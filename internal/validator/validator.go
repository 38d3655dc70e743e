package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/novaflix/internal/domain"
)

const (
	ErrRequired       = "is required"
	ErrNotBlank       = "must not be blank"
	ErrURL            = "must be a valid URL"
	ErrPalette        = "must be one of the category palette colors"
	ErrMinLength      = "must be at least %s characters long"
	ErrMaxLength      = "must be at most %s characters long"
	ErrDefaultInvalid = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("notblank", validateNotBlank)
	validator.RegisterValidation("palette", validatePaletteColor)

	return validator
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validatePaletteColor(fl validator.FieldLevel) bool {
	return domain.IsPaletteColor(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "notblank":
		return ErrNotBlank
	case "url":
		return ErrURL
	case "palette":
		return ErrPalette
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	default:
		return ErrDefaultInvalid
	}
}
