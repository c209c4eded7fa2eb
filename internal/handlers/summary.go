package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/auth"
	"fintrack/internal/summary"
)

// GetSummary handles GET /api/summary?from&to&accountId.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := h.summary.GetSummary(
		auth.UserID(r.Context()),
		q.Get("accountId"),
		q.Get("from"),
		q.Get("to"),
	)
	if err != nil {
		if errors.Is(err, summary.ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fail(w, "Failed to get summary", err)
		return
	}

	respond(w, http.StatusOK, result)
}
