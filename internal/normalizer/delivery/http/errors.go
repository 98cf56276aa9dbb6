package http

import (
	"errors"

	"botguard-srv/internal/normalizer"
	pkgErrors "botguard-srv/pkg/errors"
)

var (
	errRuleNotFound = pkgErrors.NewHTTPError(404, "Normalization rule not found")
	errRuleExists   = pkgErrors.NewHTTPError(409, "Normalization rule already registered")
	errRuleInvalid  = pkgErrors.NewHTTPError(400, "Invalid normalization rule")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, normalizer.ErrRuleNotFound):
		return errRuleNotFound
	case errors.Is(err, normalizer.ErrRuleExists):
		return errRuleExists
	case errors.Is(err, normalizer.ErrRuleNameRequired),
		errors.Is(err, normalizer.ErrRuleApplyRequired):
		return errRuleInvalid
	default:
		panic(err)
	}
}
