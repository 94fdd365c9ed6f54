package http

import (
	"errors"
	"net/http"

	"depression-srv/internal/questionnaire"
	pkgErrors "depression-srv/pkg/errors"
)

var (
	errNotFound = pkgErrors.NewHTTPError(
		http.StatusNotFound, "Questionnaire definition not found",
	)
	errRead = pkgErrors.NewHTTPError(
		http.StatusInternalServerError, "Failed to read questionnaire definition",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, questionnaire.ErrNotFound):
		return errNotFound
	case errors.Is(err, questionnaire.ErrRead):
		return errRead
	default:
		panic(err)
	}
}
