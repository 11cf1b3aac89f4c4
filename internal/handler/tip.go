package handler

import (
	"net/http"

	"github.com/tipstream/api/internal/middleware"
	"github.com/tipstream/api/internal/service"
)

// TipHandler handles tip endpoints
type TipHandler struct {
	tipService *service.TipService
}

// NewTipHandler creates a new tip handler
func NewTipHandler(tipService *service.TipService) *TipHandler {
	return &TipHandler{
		tipService: tipService,
	}
}

// CreateTipRequest represents the add-tips endpoint request body
type CreateTipRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// CommentRequest represents the comments endpoint request body
type CommentRequest struct {
	Content string `json:"content"`
}

// Create handles POST /add-tips
func (h *TipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTipRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tip, err := h.tipService.Create(r.Context(), middleware.GetUserID(r.Context()), service.CreateTipRequest{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, "tip created", map[string]interface{}{
		"tip": tip,
	})
}

// List handles GET /tips
func (h *TipHandler) List(w http.ResponseWriter, r *http.Request) {
	tips, err := h.tipService.List(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "tips retrieved", map[string]interface{}{
		"tips": tips,
	})
}

// Detail handles GET /tips/{tipId}
func (h *TipHandler) Detail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.tipService.GetDetail(r.Context(), r.PathValue("tipId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "tip retrieved", map[string]interface{}{
		"tip": detail,
	})
}

// UpVote handles POST /tips/{tipId}/up-votes
func (h *TipHandler) UpVote(w http.ResponseWriter, r *http.Request) {
	tip, err := h.tipService.UpVote(r.Context(), r.PathValue("tipId"), middleware.GetUserID(r.Context()))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "tip up-voted", map[string]interface{}{
		"tip": tip,
	})
}

// DownVote handles POST /tips/{tipId}/down-votes
func (h *TipHandler) DownVote(w http.ResponseWriter, r *http.Request) {
	tip, err := h.tipService.DownVote(r.Context(), r.PathValue("tipId"), middleware.GetUserID(r.Context()))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "tip down-voted", map[string]interface{}{
		"tip": tip,
	})
}

// AddComment handles POST /tips/{tipId}/comments
func (h *TipHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.tipService.AddComment(r.Context(), r.PathValue("tipId"), middleware.GetUserID(r.Context()), req.Content)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, "comment added", map[string]interface{}{
		"comment": comment,
	})
}
