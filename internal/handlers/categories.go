package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fintrack/internal/auth"
)

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.ListCategories(auth.UserID(r.Context()))
	if err != nil {
		fail(w, "Failed to list categories", err)
		return
	}
	respond(w, http.StatusOK, categories)
}

// GetCategory handles GET /api/categories/{id}.
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.repo.GetCategory(auth.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, "Failed to get category", err)
		return
	}
	respond(w, http.StatusOK, category)
}

// CreateCategory handles POST /api/categories.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decode(r, &req); err != nil || req.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	category, err := h.repo.CreateCategory(auth.UserID(r.Context()), req.Name)
	if err != nil {
		fail(w, "Failed to create category", err)
		return
	}
	respond(w, http.StatusCreated, category)
}

// RenameCategory handles PATCH /api/categories/{id}.
func (h *Handler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decode(r, &req); err != nil || req.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	category, err := h.repo.RenameCategory(auth.UserID(r.Context()), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		fail(w, "Failed to rename category", err)
		return
	}
	respond(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/categories/{id}.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteCategory(auth.UserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		fail(w, "Failed to delete category", err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"id": chi.URLParam(r, "id")})
}

// BulkDeleteCategories handles POST /api/categories/bulk-delete.
func (h *Handler) BulkDeleteCategories(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	deleted, err := h.repo.BulkDeleteCategories(auth.UserID(r.Context()), req.IDs)
	if err != nil {
		fail(w, "Failed to delete categories", err)
		return
	}
	respond(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
