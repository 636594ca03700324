package validation

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of a failed request
type ErrorResponse struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// EchoValidator plugs the Engine into echo so handlers can call c.Validate
type EchoValidator struct {
	engine *Engine
}

func NewEchoValidator(engine *Engine) *EchoValidator {
	if engine == nil {
		engine = New()
	}
	return &EchoValidator{engine: engine}
}

func (v *EchoValidator) Validate(i interface{}) error {
	return v.engine.Struct(i)
}

// HTTPError maps err onto an echo error. Field failures become a 400 listing
// every field, anything else is reported as an internal error.
func HTTPError(err error) *echo.HTTPError {
	var fieldErrs Errors
	if errors.As(err, &fieldErrs) {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{
			Error:   "VALIDATION_ERROR",
			Message: "Validation failed",
			Details: fieldErrs,
		})
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	return echo.NewHTTPError(http.StatusInternalServerError, ErrorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "Unable to validate request",
	}).SetInternal(err)
}
