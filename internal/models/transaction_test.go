package models

import (
	"database/sql"
	"testing"
)

func TestAmountToMiliunits(t *testing.T) {
	cases := []struct {
		amount   float64
		expected int64
	}{
		{12.34, 12340},
		{0, 0},
		{-99.999, -99999},
		{0.0004, 0},
		{0.0006, 1},
	}

	for _, tc := range cases {
		if got := AmountToMiliunits(tc.amount); got != tc.expected {
			t.Fatalf("AmountToMiliunits(%v) = %d, want %d", tc.amount, got, tc.expected)
		}
	}
}

func TestMiliunitsToAmount(t *testing.T) {
	if got := MiliunitsToAmount(12340); got != 12.34 {
		t.Fatalf("MiliunitsToAmount(12340) = %v, want 12.34", got)
	}
}

func TestTransactionToView(t *testing.T) {
	tx := Transaction{
		ID:        "t1",
		Amount:    -2500,
		Payee:     "grocer",
		Date:      "2023-01-02",
		AccountID: "a1",
		Notes:     sql.NullString{String: "weekly shop", Valid: true},
	}

	view := tx.ToView()
	if view.Notes != "weekly shop" {
		t.Fatalf("Notes = %q", view.Notes)
	}
	if view.CategoryID != "" {
		t.Fatalf("CategoryID = %q, want empty for NULL", view.CategoryID)
	}
}
