package http

import (
	"errors"
	"net/http"

	"meetbot/internal/meeting"
	pkgErrors "meetbot/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	errWrongID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	errNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, "meeting not found")
	errBadDate    = pkgErrors.NewHTTPError(http.StatusBadRequest, "date is not understood")
	errEmptyInput = pkgErrors.NewHTTPError(http.StatusBadRequest, "request text is empty")
)

// mapError translates use-case errors into HTTP errors. Anything not listed
// is a store failure and becomes a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, meeting.ErrMeetingNotFound):
		return errNotFound
	case errors.Is(err, meeting.ErrInvalidID):
		return errWrongID
	case errors.Is(err, meeting.ErrInvalidDate):
		return errBadDate
	case errors.Is(err, meeting.ErrEmptyInput):
		return errEmptyInput
	default:
		return pkgErrors.ErrInternalServerError
	}
}
