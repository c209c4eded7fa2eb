package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccountOwnershipScoping(t *testing.T) {
	f := newFixture(t)

	_, err := f.repo.GetAccount(f.other.ID, f.acct.ID)
	require.ErrorIs(t, err, sql.ErrNoRows)

	_, err = f.repo.RenameAccount(f.other.ID, f.acct.ID, "stolen")
	require.ErrorIs(t, err, sql.ErrNoRows)

	err = f.repo.DeleteAccount(f.other.ID, f.acct.ID)
	require.ErrorIs(t, err, sql.ErrNoRows)

	// Still intact for the owner.
	account, err := f.repo.GetAccount(f.user.ID, f.acct.ID)
	require.NoError(t, err)
	require.Equal(t, "Checking", account.Name)
}

func TestRenameAccount(t *testing.T) {
	f := newFixture(t)

	renamed, err := f.repo.RenameAccount(f.user.ID, f.acct.ID, "Everyday")
	require.NoError(t, err)
	require.Equal(t, "Everyday", renamed.Name)
	require.Equal(t, f.acct.ID, renamed.ID)
}

func TestBulkDeleteAccountsScopedToOwner(t *testing.T) {
	f := newFixture(t)

	deleted, err := f.repo.BulkDeleteAccounts(f.other.ID, []string{f.acct.ID, f.acct2.ID})
	require.NoError(t, err)
	require.Zero(t, deleted)

	deleted, err = f.repo.BulkDeleteAccounts(f.user.ID, []string{f.acct.ID, f.acct2.ID, "no-such-id"})
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	accounts, err := f.repo.ListAccounts(f.user.ID)
	require.NoError(t, err)
	require.Empty(t, accounts)
}

func TestCreateTransactionRejectsForeignAccount(t *testing.T) {
	f := newFixture(t)

	_, err := f.repo.CreateTransaction(f.other.ID, TransactionParams{
		Amount:    -100,
		Payee:     "store",
		Date:      "2023-01-02",
		AccountID: f.acct.ID,
	})
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTransactionLifecycle(t *testing.T) {
	f := newFixture(t)

	created, err := f.repo.CreateTransaction(f.user.ID, TransactionParams{
		Amount:     -2500,
		Payee:      "grocer",
		Notes:      "weekly shop",
		Date:       "2023-01-02",
		AccountID:  f.acct.ID,
		CategoryID: f.food.ID,
	})
	require.NoError(t, err)
	require.Equal(t, int64(-2500), created.Amount)
	require.Equal(t, "weekly shop", created.Notes.String)

	updated, err := f.repo.UpdateTransaction(f.user.ID, created.ID, TransactionParams{
		Amount:    -2000,
		Payee:     "grocer",
		Date:      "2023-01-03",
		AccountID: f.acct2.ID,
	})
	require.NoError(t, err)
	require.Equal(t, int64(-2000), updated.Amount)
	require.Equal(t, f.acct2.ID, updated.AccountID)
	require.False(t, updated.CategoryID.Valid)

	require.NoError(t, f.repo.DeleteTransaction(f.user.ID, created.ID))
	_, err = f.repo.GetTransaction(f.user.ID, created.ID)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListTransactionsWindowAndAccountFilter(t *testing.T) {
	f := newFixture(t)
	f.addTxn(t, f.acct.ID, "", "2023-01-05", 100)
	f.addTxn(t, f.acct.ID, "", "2023-01-20", -50)
	f.addTxn(t, f.acct2.ID, "", "2023-01-21", -70)
	f.addTxn(t, f.acct.ID, "", "2023-03-01", 999)

	all, err := f.repo.ListTransactions(f.user.ID, "2023-01-01", "2023-01-31", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	require.Equal(t, "2023-01-21", all[0].Date)

	onlyChecking, err := f.repo.ListTransactions(f.user.ID, "2023-01-01", "2023-01-31", f.acct.ID)
	require.NoError(t, err)
	require.Len(t, onlyChecking, 2)
}

func TestDeleteCategoryNullsTransactionCategory(t *testing.T) {
	f := newFixture(t)
	tx := f.addTxn(t, f.acct.ID, f.food.ID, "2023-01-05", -100)

	require.NoError(t, f.repo.DeleteCategory(f.user.ID, f.food.ID))

	got, err := f.repo.GetTransaction(f.user.ID, tx.ID)
	require.NoError(t, err)
	require.False(t, got.CategoryID.Valid)
}

func TestDeleteAccountCascadesTransactions(t *testing.T) {
	f := newFixture(t)
	tx := f.addTxn(t, f.acct.ID, "", "2023-01-05", -100)

	require.NoError(t, f.repo.DeleteAccount(f.user.ID, f.acct.ID))

	_, err := f.repo.GetTransaction(f.user.ID, tx.ID)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserUniqueEmail(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.CreateUser("Ada", "ada@example.com", "hash")
	require.NoError(t, err)
	_, err = repo.CreateUser("Imposter", "ada@example.com", "hash")
	require.Error(t, err)
}
