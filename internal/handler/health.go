package handler

import (
	"net/http"

	"github.com/tipstream/api/internal/database"
	"github.com/tipstream/api/internal/model"
)

// HealthHandler reports service and store health
type HealthHandler struct {
	db database.Database
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db database.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable,
			model.NewError("service unhealthy", err))
		return
	}

	WriteSuccess(w, http.StatusOK, "ok", nil)
}
