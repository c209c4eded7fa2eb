package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fintrack/internal/auth"
	"fintrack/internal/database"
	"fintrack/internal/models"
	"fintrack/internal/summary"
)

type transactionRequest struct {
	Amount     int64  `json:"amount"`
	Payee      string `json:"payee"`
	Notes      string `json:"notes"`
	Date       string `json:"date"`
	AccountID  string `json:"account_id"`
	CategoryID string `json:"category_id"`
}

func (req *transactionRequest) validate() error {
	if req.Payee == "" {
		return errors.New("payee is required")
	}
	if req.AccountID == "" {
		return errors.New("account_id is required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return errors.New("date must be yyyy-mm-dd")
	}
	return nil
}

func (req *transactionRequest) params() database.TransactionParams {
	return database.TransactionParams{
		Amount:     req.Amount,
		Payee:      req.Payee,
		Notes:      req.Notes,
		Date:       req.Date,
		AccountID:  req.AccountID,
		CategoryID: req.CategoryID,
	}
}

// ListTransactions handles GET /api/transactions?from&to&accountId. The
// window defaults to the same 30 days the summary uses.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	period, err := summary.ResolvePeriod(q.Get("from"), q.Get("to"))
	if err != nil {
		http.Error(w, "Invalid date range", http.StatusBadRequest)
		return
	}

	transactions, err := h.repo.ListTransactions(
		auth.UserID(r.Context()),
		period.Start.Format("2006-01-02"),
		period.End.Format("2006-01-02"),
		q.Get("accountId"),
	)
	if err != nil {
		fail(w, "Failed to list transactions", err)
		return
	}

	views := make([]models.TransactionView, 0, len(transactions))
	for _, tx := range transactions {
		views = append(views, tx.ToView())
	}
	respond(w, http.StatusOK, views)
}

// GetTransaction handles GET /api/transactions/{id}.
func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := h.repo.GetTransaction(auth.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, "Failed to get transaction", err)
		return
	}
	respond(w, http.StatusOK, tx.ToView())
}

// CreateTransaction handles POST /api/transactions.
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.repo.CreateTransaction(auth.UserID(r.Context()), req.params())
	if err != nil {
		fail(w, "Failed to create transaction", err)
		return
	}
	respond(w, http.StatusCreated, tx.ToView())
}

// UpdateTransaction handles PATCH /api/transactions/{id}.
func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.repo.UpdateTransaction(auth.UserID(r.Context()), chi.URLParam(r, "id"), req.params())
	if err != nil {
		fail(w, "Failed to update transaction", err)
		return
	}
	respond(w, http.StatusOK, tx.ToView())
}

// DeleteTransaction handles DELETE /api/transactions/{id}.
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteTransaction(auth.UserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		fail(w, "Failed to delete transaction", err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"id": chi.URLParam(r, "id")})
}

// BulkDeleteTransactions handles POST /api/transactions/bulk-delete.
func (h *Handler) BulkDeleteTransactions(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	deleted, err := h.repo.BulkDeleteTransactions(auth.UserID(r.Context()), req.IDs)
	if err != nil {
		fail(w, "Failed to delete transactions", err)
		return
	}
	respond(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
