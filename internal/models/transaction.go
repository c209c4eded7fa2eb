package models

import (
	"database/sql"
	"math"
)

// Amounts are stored as integer miliunits: $12.34 is 12340. Income is
// positive, spending is negative.
type Transaction struct {
	ID         string         `json:"id"`
	Amount     int64          `json:"amount"`
	Payee      string         `json:"payee"`
	Notes      sql.NullString `json:"-"`
	Date       string         `json:"date"`
	AccountID  string         `json:"account_id"`
	CategoryID sql.NullString `json:"-"`
}

type TransactionView struct {
	ID         string `json:"id"`
	Amount     int64  `json:"amount"`
	Payee      string `json:"payee"`
	Notes      string `json:"notes"`
	Date       string `json:"date"`
	AccountID  string `json:"account_id"`
	CategoryID string `json:"category_id"`
}

func (t *Transaction) ToView() TransactionView {
	view := TransactionView{
		ID:        t.ID,
		Amount:    t.Amount,
		Payee:     t.Payee,
		Date:      t.Date,
		AccountID: t.AccountID,
	}
	if t.Notes.Valid {
		view.Notes = t.Notes.String
	}
	if t.CategoryID.Valid {
		view.CategoryID = t.CategoryID.String
	}
	return view
}

// AmountToMiliunits converts a decimal currency amount to miliunits.
func AmountToMiliunits(amount float64) int64 {
	return int64(math.Round(amount * 1000))
}

// MiliunitsToAmount converts miliunits back to a decimal currency amount.
func MiliunitsToAmount(miliunits int64) float64 {
	return float64(miliunits) / 1000
}
