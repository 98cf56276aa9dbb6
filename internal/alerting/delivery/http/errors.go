package http

import (
	"errors"

	"botguard-srv/internal/alerting"
	pkgErrors "botguard-srv/pkg/errors"
)

var (
	errAlertNotFound   = pkgErrors.NewHTTPError(404, "Alert not found")
	errInvalidSeverity = pkgErrors.NewHTTPError(400, "Invalid alert severity")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, alerting.ErrAlertNotFound):
		return errAlertNotFound
	case errors.Is(err, alerting.ErrInvalidSeverity):
		return errInvalidSeverity
	default:
		panic(err)
	}
}
