package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"fintrack/internal/models"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// --- Users & sessions ---

func (r *Repository) CreateUser(name, email, passwordHash string) (*models.User, error) {
	id := uuid.New().String()
	_, err := r.db.Exec(
		`INSERT INTO users (id, name, email, password_hash) VALUES (?, ?, ?, ?)`,
		id, name, email, passwordHash,
	)
	if err != nil {
		return nil, err
	}
	return r.GetUser(id)
}

func (r *Repository) GetUser(id string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(
		`SELECT id, name, email, password_hash, created_at FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) CreateSession(userID, token, expiresAt string) error {
	_, err := r.db.Exec(
		`INSERT INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?)`,
		token, userID, expiresAt,
	)
	return err
}

// GetSession returns the session for token, expired or not. Expiry is the
// caller's check.
func (r *Repository) GetSession(token string) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRow(
		`SELECT token, user_id, expires_at, created_at FROM sessions WHERE token = ?`, token,
	).Scan(&s.Token, &s.UserID, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) DeleteSession(token string) error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE token = ?`, token)
	return err
}

// --- Accounts ---

func (r *Repository) ListAccounts(userID string) ([]models.Account, error) {
	rows, err := r.db.Query(
		`SELECT id, name, user_id, created_at FROM accounts WHERE user_id = ? ORDER BY name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.UserID, &a.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *Repository) GetAccount(userID, id string) (*models.Account, error) {
	var a models.Account
	err := r.db.QueryRow(
		`SELECT id, name, user_id, created_at FROM accounts WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&a.ID, &a.Name, &a.UserID, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) CreateAccount(userID, name string) (*models.Account, error) {
	id := uuid.New().String()
	_, err := r.db.Exec(
		`INSERT INTO accounts (id, name, user_id) VALUES (?, ?, ?)`,
		id, name, userID,
	)
	if err != nil {
		return nil, err
	}
	return r.GetAccount(userID, id)
}

func (r *Repository) RenameAccount(userID, id, name string) (*models.Account, error) {
	result, err := r.db.Exec(
		`UPDATE accounts SET name = ? WHERE id = ? AND user_id = ?`,
		name, id, userID,
	)
	if err != nil {
		return nil, err
	}
	if err := requireAffected(result); err != nil {
		return nil, err
	}
	return r.GetAccount(userID, id)
}

func (r *Repository) DeleteAccount(userID, id string) error {
	result, err := r.db.Exec(`DELETE FROM accounts WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *Repository) BulkDeleteAccounts(userID string, ids []string) (int64, error) {
	return r.bulkDelete("accounts", "user_id", userID, ids)
}

// --- Categories ---

func (r *Repository) ListCategories(userID string) ([]models.Category, error) {
	rows, err := r.db.Query(
		`SELECT id, name, user_id, created_at FROM categories WHERE user_id = ? ORDER BY name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.UserID, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *Repository) GetCategory(userID, id string) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRow(
		`SELECT id, name, user_id, created_at FROM categories WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&c.ID, &c.Name, &c.UserID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CreateCategory(userID, name string) (*models.Category, error) {
	id := uuid.New().String()
	_, err := r.db.Exec(
		`INSERT INTO categories (id, name, user_id) VALUES (?, ?, ?)`,
		id, name, userID,
	)
	if err != nil {
		return nil, err
	}
	return r.GetCategory(userID, id)
}

func (r *Repository) RenameCategory(userID, id, name string) (*models.Category, error) {
	result, err := r.db.Exec(
		`UPDATE categories SET name = ? WHERE id = ? AND user_id = ?`,
		name, id, userID,
	)
	if err != nil {
		return nil, err
	}
	if err := requireAffected(result); err != nil {
		return nil, err
	}
	return r.GetCategory(userID, id)
}

func (r *Repository) DeleteCategory(userID, id string) error {
	result, err := r.db.Exec(`DELETE FROM categories WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *Repository) BulkDeleteCategories(userID string, ids []string) (int64, error) {
	return r.bulkDelete("categories", "user_id", userID, ids)
}

// --- Transactions ---

type TransactionParams struct {
	Amount     int64
	Payee      string
	Notes      string
	Date       string
	AccountID  string
	CategoryID string
}

func (r *Repository) CreateTransaction(userID string, p TransactionParams) (*models.Transaction, error) {
	// The account must belong to the caller; a foreign category is rejected
	// the same way.
	if _, err := r.GetAccount(userID, p.AccountID); err != nil {
		return nil, err
	}
	if p.CategoryID != "" {
		if _, err := r.GetCategory(userID, p.CategoryID); err != nil {
			return nil, err
		}
	}

	id := uuid.New().String()
	_, err := r.db.Exec(`
		INSERT INTO transactions (id, amount, payee, notes, txn_date, account_id, category_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, p.Amount, p.Payee, nullString(p.Notes), p.Date, p.AccountID, nullString(p.CategoryID),
	)
	if err != nil {
		return nil, err
	}
	return r.GetTransaction(userID, id)
}

func (r *Repository) GetTransaction(userID, id string) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.QueryRow(`
		SELECT t.id, t.amount, t.payee, t.notes, t.txn_date, t.account_id, t.category_id
		FROM transactions t
		INNER JOIN accounts a ON t.account_id = a.id
		WHERE t.id = ? AND a.user_id = ?`,
		id, userID,
	).Scan(&tx.ID, &tx.Amount, &tx.Payee, &tx.Notes, &tx.Date, &tx.AccountID, &tx.CategoryID)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *Repository) UpdateTransaction(userID, id string, p TransactionParams) (*models.Transaction, error) {
	if _, err := r.GetTransaction(userID, id); err != nil {
		return nil, err
	}
	if _, err := r.GetAccount(userID, p.AccountID); err != nil {
		return nil, err
	}
	if p.CategoryID != "" {
		if _, err := r.GetCategory(userID, p.CategoryID); err != nil {
			return nil, err
		}
	}

	_, err := r.db.Exec(`
		UPDATE transactions
		SET amount = ?, payee = ?, notes = ?, txn_date = ?, account_id = ?, category_id = ?
		WHERE id = ?`,
		p.Amount, p.Payee, nullString(p.Notes), p.Date, p.AccountID, nullString(p.CategoryID), id,
	)
	if err != nil {
		return nil, err
	}
	return r.GetTransaction(userID, id)
}

func (r *Repository) DeleteTransaction(userID, id string) error {
	result, err := r.db.Exec(`
		DELETE FROM transactions
		WHERE id = ? AND account_id IN (SELECT id FROM accounts WHERE user_id = ?)`,
		id, userID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *Repository) BulkDeleteTransactions(userID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := fmt.Sprintf(`
		DELETE FROM transactions
		WHERE id IN (%s) AND account_id IN (SELECT id FROM accounts WHERE user_id = ?)`,
		placeholders(len(ids)),
	)
	args := make([]interface{}, 0, len(ids)+1)
	for _, id := range ids {
		args = append(args, id)
	}
	args = append(args, userID)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ListTransactions returns the caller's transactions inside [from, to]
// (inclusive, yyyy-mm-dd), newest first, optionally limited to one account.
func (r *Repository) ListTransactions(userID, from, to, accountID string) ([]models.Transaction, error) {
	query := `
		SELECT t.id, t.amount, t.payee, t.notes, t.txn_date, t.account_id, t.category_id
		FROM transactions t
		INNER JOIN accounts a ON t.account_id = a.id
		WHERE a.user_id = ? AND t.txn_date >= ? AND t.txn_date <= ?`
	args := []interface{}{userID, from, to}

	if accountID != "" {
		query += ` AND t.account_id = ?`
		args = append(args, accountID)
	}
	query += ` ORDER BY t.txn_date DESC, t.id ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		err := rows.Scan(&tx.ID, &tx.Amount, &tx.Payee, &tx.Notes, &tx.Date, &tx.AccountID, &tx.CategoryID)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

// --- Helpers ---

func (r *Repository) bulkDelete(table, ownerCol, owner string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := fmt.Sprintf(
		`DELETE FROM %s WHERE id IN (%s) AND %s = ?`,
		table, placeholders(len(ids)), ownerCol,
	)
	args := make([]interface{}, 0, len(ids)+1)
	for _, id := range ids {
		args = append(args, id)
	}
	args = append(args, owner)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
