package models

import "time"

// PeriodTotals is the aggregate of all transactions inside one period.
// ExpensesNet keeps the stored sign convention: it is the sum of negative
// amounts and is therefore zero or negative. Remaining = Income + ExpensesNet.
type PeriodTotals struct {
	Income      int64 `json:"income"`
	ExpensesNet int64 `json:"expenses"`
	Remaining   int64 `json:"remaining"`
}

// CategorySpend is spending attributed to one category, as a positive
// magnitude (sum of absolute values of the category's negative amounts).
type CategorySpend struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// DayActivity is one day of aggregated activity. Unlike PeriodTotals,
// Expenses here is an absolute (positive) magnitude. The two conventions are
// deliberately distinct; do not conflate them.
type DayActivity struct {
	Date     time.Time `json:"date"`
	Income   int64     `json:"income"`
	Expenses int64     `json:"expenses"`
}

// SummaryResult is the payload of GET /api/summary.
type SummaryResult struct {
	RemainingAmount int64           `json:"remainingAmount"`
	RemainingChange float64         `json:"remainingChange"`
	IncomeAmount    int64           `json:"incomeAmount"`
	IncomeChange    float64         `json:"incomeChange"`
	ExpensesAmount  int64           `json:"expensesAmount"`
	ExpensesChange  float64         `json:"expensesChange"`
	Categories      []CategorySpend `json:"categories"`
	Days            []DayActivity   `json:"days"`
}
