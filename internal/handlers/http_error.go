package handlers

import (
	"errors"
	"net/http"

	"github.com/arifhn/socialbase/backend/internal/errs"
	"github.com/labstack/echo/v4"
)

// httpError translates a service-layer error into an echo HTTP error. All
// domain errors are recovered here; anything unrecognized becomes a 500.
func httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrPermission):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrSelfReference), errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrAlreadyFollowing),
		errors.Is(err, errs.ErrNotFollowing),
		errors.Is(err, errs.ErrAlreadyLiked),
		errors.Is(err, errs.ErrNotLiked):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
