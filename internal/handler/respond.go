package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "nordstudio/internal/errors"
	"nordstudio/internal/response"
)

// respondError renders a service failure. Validation failures carry the
// per-field problem list; everything else goes through the domain error
// mapping and the router's central error handler.
func respondError(c echo.Context, err error) error {
	if ve, ok := apperrors.AsValidationError(err); ok {
		return c.JSON(http.StatusBadRequest, response.ValidationFailed(ve.Problems))
	}
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
}
