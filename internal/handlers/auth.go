package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"fintrack/internal/auth"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "Name, email and password are required", http.StatusBadRequest)
		return
	}

	if _, err := h.repo.GetUserByEmail(req.Email); err == nil {
		http.Error(w, "Email already registered", http.StatusConflict)
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		fail(w, "Failed to register", err)
		return
	}

	user, err := h.auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		fail(w, "Failed to register", err)
		return
	}
	respond(w, http.StatusCreated, user)
}

// Login handles POST /api/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, user, err := h.auth.Login(strings.TrimSpace(strings.ToLower(req.Email)), req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		fail(w, "Failed to log in", err)
		return
	}

	respond(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Logout handles POST /api/logout. Requires auth.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 {
		if err := h.auth.Logout(strings.TrimSpace(parts[1])); err != nil {
			fail(w, "Failed to log out", err)
			return
		}
	}
	respond(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me handles GET /api/me. Requires auth.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.repo.GetUser(auth.UserID(r.Context()))
	if err != nil {
		fail(w, "Failed to load user", err)
		return
	}
	respond(w, http.StatusOK, user)
}
