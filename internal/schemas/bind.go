package schemas

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flameshq/flames/internal/domain"
	"github.com/flameshq/flames/internal/validation"
)

// Bind reads the request body of ec as a document for collection and
// validates it. Failures are returned as *echo.HTTPError ready to be handed
// back from a handler.
func (c *Catalog) Bind(ec echo.Context, collection string) (domain.Record, error) {
	body, err := io.ReadAll(ec.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, validation.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Unable to read request body",
		}).SetInternal(err)
	}

	rec, err := c.ValidateJSON(collection, body)
	switch {
	case err == nil:
		return rec, nil
	case errors.Is(err, ErrUnknownCollection):
		return nil, echo.NewHTTPError(http.StatusNotFound, validation.ErrorResponse{
			Error:   "UNKNOWN_COLLECTION",
			Message: "Collection " + collection + " has no schema",
		})
	case errors.Is(err, ErrMalformedDocument):
		return nil, echo.NewHTTPError(http.StatusBadRequest, validation.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Request body must be a JSON object",
			Details: err.Error(),
		})
	default:
		return nil, validation.HTTPError(err)
	}
}
