package api

import (
	"github.com/labstack/echo/v4"

	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
)

// Binder wraps echo's default binder so bind failures land in the domain
// error taxonomy instead of raw echo.HTTPErrors.
type Binder struct {
	base echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i any, c echo.Context) error {
	if err := b.base.Bind(i, c); err != nil {
		return constants.NewValidationError("invalid request payload", "", nil)
	}
	return nil
}
