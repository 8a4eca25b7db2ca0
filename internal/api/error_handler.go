package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/michaelekornrud/BouvetRadar/internal/domain"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/logger"
)

// httpErrorHandler renders every error as the JSON envelope. Domain errors
// surface their status, machine code and details; echo routing errors keep
// their status; anything unclassified becomes a bare 500 with no internal
// detail leaked.
func httpErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	resp := domain.ErrorResponse{
		Success: false,
		Error:   "Internal server error",
	}

	matched := false
	for e := err; e != nil; e = errors.Unwrap(e) {
		if ce, ok := e.(*constants.CodedError); ok {
			code = ce.Code()
			resp.Error = ce.Error()
			resp.ErrorCode = int(ce.ErrorCode())
			resp.ErrorName = ce.ErrorCode().String()
			resp.Details = ce.Details()
			matched = true
			break
		}
	}

	if !matched {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			resp.Error = fmt.Sprintf("%v", he.Message)
			matched = true
		}
	}

	if !matched || code >= http.StatusInternalServerError {
		logger.Errorf(c.Request().Context(), "%s %s: %s", c.Request().Method, c.Path(), err.Error())
	}

	if !c.Response().Committed {
		_ = c.JSON(code, resp)
	}
}
