package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tipstream/api/internal/model"
	"github.com/tipstream/api/internal/service"
)

// WriteServiceError converts a service error into the appropriate
// envelope and status code. This centralizes error handling logic for
// all handlers, ensuring consistent responses across the API.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	// ===== Validation and credential failures → 400 =====
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrBodyRequired),
		errors.Is(err, service.ErrCategoryRequired),
		errors.Is(err, service.ErrContentRequired),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrEmailAlreadyExists):
		WriteFail(w, http.StatusBadRequest, err.Error())

	// ===== Missing resources → 404 =====
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrTipNotFound):
		WriteFail(w, http.StatusNotFound, err.Error())

	// ===== Default → 500 =====
	default:
		slog.Error("unhandled service error", "error", err)
		WriteJSON(w, http.StatusInternalServerError,
			model.NewError("internal server error", err))
	}
}
