package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"fintrack/internal/auth"
	"fintrack/internal/database"
	"fintrack/internal/summary"
)

type Handler struct {
	repo    *database.Repository
	auth    *auth.Service
	summary *summary.Service
}

func New(repo *database.Repository, authSvc *auth.Service, summarySvc *summary.Service) *Handler {
	return &Handler{
		repo:    repo,
		auth:    authSvc,
		summary: summarySvc,
	}
}

// Health handles GET /api/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respond writes v wrapped in the data envelope every endpoint uses.
func respond(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"data": v})
}

func decode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// fail logs the cause for operators and sends the caller a generic body.
// Missing rows surface as 404, everything else as 500.
func fail(w http.ResponseWriter, msg string, err error) {
	log.Printf("%s: %v", msg, err)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	http.Error(w, msg, http.StatusInternalServerError)
}
