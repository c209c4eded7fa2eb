package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fintrack/internal/auth"
)

type nameRequest struct {
	Name string `json:"name"`
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// ListAccounts handles GET /api/accounts.
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.repo.ListAccounts(auth.UserID(r.Context()))
	if err != nil {
		fail(w, "Failed to list accounts", err)
		return
	}
	respond(w, http.StatusOK, accounts)
}

// GetAccount handles GET /api/accounts/{id}.
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.repo.GetAccount(auth.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, "Failed to get account", err)
		return
	}
	respond(w, http.StatusOK, account)
}

// CreateAccount handles POST /api/accounts.
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decode(r, &req); err != nil || req.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	account, err := h.repo.CreateAccount(auth.UserID(r.Context()), req.Name)
	if err != nil {
		fail(w, "Failed to create account", err)
		return
	}
	respond(w, http.StatusCreated, account)
}

// RenameAccount handles PATCH /api/accounts/{id}.
func (h *Handler) RenameAccount(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decode(r, &req); err != nil || req.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	account, err := h.repo.RenameAccount(auth.UserID(r.Context()), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		fail(w, "Failed to rename account", err)
		return
	}
	respond(w, http.StatusOK, account)
}

// DeleteAccount handles DELETE /api/accounts/{id}.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteAccount(auth.UserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		fail(w, "Failed to delete account", err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"id": chi.URLParam(r, "id")})
}

// BulkDeleteAccounts handles POST /api/accounts/bulk-delete.
func (h *Handler) BulkDeleteAccounts(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	deleted, err := h.repo.BulkDeleteAccounts(auth.UserID(r.Context()), req.IDs)
	if err != nil {
		fail(w, "Failed to delete accounts", err)
		return
	}
	respond(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
