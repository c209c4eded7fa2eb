package database

import (
	"time"

	"fintrack/internal/models"
)

// FetchFinancialData aggregates all of the user's transactions inside
// [from, to] (inclusive, yyyy-mm-dd): income is the sum of non-negative
// amounts, ExpensesNet the sum of negative amounts (itself <= 0), remaining
// the net sum. An empty accountID means all of the user's accounts.
func (r *Repository) FetchFinancialData(userID, accountID, from, to string) (*models.PeriodTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN t.amount >= 0 THEN t.amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN t.amount < 0 THEN t.amount ELSE 0 END), 0) AS expenses,
			COALESCE(SUM(t.amount), 0) AS remaining
		FROM transactions t
		INNER JOIN accounts a ON t.account_id = a.id
		WHERE a.user_id = ? AND t.txn_date >= ? AND t.txn_date <= ?`
	args := []interface{}{userID, from, to}

	if accountID != "" {
		query += ` AND t.account_id = ?`
		args = append(args, accountID)
	}

	totals := &models.PeriodTotals{}
	err := r.db.QueryRow(query, args...).Scan(&totals.Income, &totals.ExpensesNet, &totals.Remaining)
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// GetCategoriesSummary returns spending per category inside [from, to] as
// positive magnitudes, descending by value with category name as the
// tie-break. Only negative amounts count as spending.
func (r *Repository) GetCategoriesSummary(userID, accountID, from, to string) ([]models.CategorySpend, error) {
	query := `
		SELECT c.name, SUM(ABS(t.amount)) AS value
		FROM transactions t
		INNER JOIN accounts a ON t.account_id = a.id
		INNER JOIN categories c ON t.category_id = c.id
		WHERE a.user_id = ? AND t.amount < 0 AND t.txn_date >= ? AND t.txn_date <= ?`
	args := []interface{}{userID, from, to}

	if accountID != "" {
		query += ` AND t.account_id = ?`
		args = append(args, accountID)
	}
	query += `
		GROUP BY c.name
		ORDER BY value DESC, c.name ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.CategorySpend
	for rows.Next() {
		var cs models.CategorySpend
		if err := rows.Scan(&cs.Name, &cs.Value); err != nil {
			return nil, err
		}
		categories = append(categories, cs)
	}
	return categories, rows.Err()
}

// GetSummaryActiveDays returns one row per day that had at least one
// transaction inside [from, to], ascending by date. Expenses here follow the
// positive convention: the sum of absolute values of that day's negative
// amounts.
func (r *Repository) GetSummaryActiveDays(userID, accountID, from, to string) ([]models.DayActivity, error) {
	query := `
		SELECT
			t.txn_date,
			COALESCE(SUM(CASE WHEN t.amount >= 0 THEN t.amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN t.amount < 0 THEN ABS(t.amount) ELSE 0 END), 0) AS expenses
		FROM transactions t
		INNER JOIN accounts a ON t.account_id = a.id
		WHERE a.user_id = ? AND t.txn_date >= ? AND t.txn_date <= ?`
	args := []interface{}{userID, from, to}

	if accountID != "" {
		query += ` AND t.account_id = ?`
		args = append(args, accountID)
	}
	query += `
		GROUP BY t.txn_date
		ORDER BY t.txn_date ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []models.DayActivity
	for rows.Next() {
		var dateStr string
		var day models.DayActivity
		if err := rows.Scan(&dateStr, &day.Income, &day.Expenses); err != nil {
			return nil, err
		}
		day.Date, err = time.ParseInLocation("2006-01-02", dateStr, time.UTC)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}
