package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"aurapoll/internal/delivery/http/helpers"
	"aurapoll/internal/domain"
)

// writeDomainError maps service errors to the API error envelope:
// ValidationError -> 400 with every violation joined, ErrNotFound -> 404,
// ErrConflict -> 409, anything else -> 500 (logged).
func writeDomainError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, strings.Join(ve.Violations, "; "))
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "operation conflicts with the event's current state")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
