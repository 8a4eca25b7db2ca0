package api

import (
	"github.com/go-playground/validator/v10"

	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/validation"
)

// Validator adapts the shared go-playground validator to echo's interface.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validation.Validator()}
}

func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.NewValidationError(err.Error(), "", nil)
	}
	return nil
}
