package ledger

import (
	"testing"
	"time"

	"finledger/internal/domain"
	"finledger/internal/period"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Wallet{}, &domain.Transaction{}))
	return db
}

func mustCreateWallet(t *testing.T, svc *Service, userID uint, name string) *domain.Wallet {
	t.Helper()
	w, err := svc.CreateWallet(userID, name)
	require.NoError(t, err)
	return w
}

func income(amount string, date time.Time) TransactionInput {
	return TransactionInput{
		Type:   domain.Income,
		Amount: decimal.RequireFromString(amount),
		Date:   date,
		Source: "salary",
	}
}

func expense(amount, description string, date time.Time) TransactionInput {
	return TransactionInput{
		Type:        domain.Expense,
		Amount:      decimal.RequireFromString(amount),
		Date:        date,
		Category:    "groceries",
		Description: description,
	}
}

func TestCreateWallet(t *testing.T) {
	svc := NewService(setupDB(t))

	w := mustCreateWallet(t, svc, 1, "Cash")
	assert.NotEmpty(t, w.ID)
	assert.Equal(t, uint(1), w.UserID)

	_, err := svc.CreateWallet(0, "Cash")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	_, err = svc.CreateWallet(1, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyWalletName)
}

func TestListWalletsWithCounts(t *testing.T) {
	svc := NewService(setupDB(t))
	first := mustCreateWallet(t, svc, 1, "Cash")
	second := mustCreateWallet(t, svc, 1, "Bank")
	mustCreateWallet(t, svc, 2, "Other user")

	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	in := income("100", day)
	in.WalletID = first.ID
	_, err := svc.CreateTransaction(1, in)
	require.NoError(t, err)
	in = expense("40", "lunch", day)
	in.WalletID = first.ID
	_, err = svc.CreateTransaction(1, in)
	require.NoError(t, err)

	wallets, err := svc.ListWallets(1)
	require.NoError(t, err)
	require.Len(t, wallets, 2)

	byID := map[string]WalletSummary{}
	for _, w := range wallets {
		byID[w.ID] = w
	}
	assert.Equal(t, int64(2), byID[first.ID].TransactionCount)
	assert.Equal(t, int64(0), byID[second.ID].TransactionCount)
}

func TestListWalletsUnauthenticated(t *testing.T) {
	svc := NewService(setupDB(t))
	wallets, err := svc.ListWallets(0)
	require.NoError(t, err)
	assert.Empty(t, wallets)
}

func TestCreateTransactionRoundTrip(t *testing.T) {
	svc := NewService(setupDB(t))
	w := mustCreateWallet(t, svc, 1, "Cash")

	day := time.Date(2024, time.March, 15, 13, 45, 0, 0, time.Local)
	in := income("1250.50", day)
	in.WalletID = w.ID
	created, err := svc.CreateTransaction(1, in)
	require.NoError(t, err)

	// Querying with a day filter equal to the record's date returns it.
	txs, err := svc.ListTransactions(1, w.ID, period.Day(day))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, created.ID, txs[0].ID)
	assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("1250.50")))

	// A neighboring day misses it.
	txs, err = svc.ListTransactions(1, w.ID, period.Day(day.AddDate(0, 0, 1)))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestListTransactionsOrderedNewestFirst(t *testing.T) {
	svc := NewService(setupDB(t))
	w := mustCreateWallet(t, svc, 1, "Cash")

	for _, day := range []int{5, 20, 10} {
		in := income("10", time.Date(2024, time.March, day, 0, 0, 0, 0, time.Local))
		in.WalletID = w.ID
		_, err := svc.CreateTransaction(1, in)
		require.NoError(t, err)
	}

	txs, err := svc.ListTransactions(1, w.ID, period.Month(2, 2024))
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, 20, txs[0].Date.Day())
	assert.Equal(t, 10, txs[1].Date.Day())
	assert.Equal(t, 5, txs[2].Date.Day())
}

func TestListTransactionsUnauthenticated(t *testing.T) {
	svc := NewService(setupDB(t))
	w := mustCreateWallet(t, svc, 1, "Cash")

	txs, err := svc.ListTransactions(0, w.ID, period.NoFilter())
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestExpenseDescriptionRequired(t *testing.T) {
	svc := NewService(setupDB(t))
	w := mustCreateWallet(t, svc, 1, "Cash")
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)

	in := expense("50", "", day)
	in.WalletID = w.ID
	_, err := svc.CreateTransaction(1, in)
	assert.ErrorIs(t, err, domain.ErrEmptyDescription)

	// INCOME with an empty description is fine.
	in = income("50", day)
	in.WalletID = w.ID
	in.Description = ""
	_, err = svc.CreateTransaction(1, in)
	assert.NoError(t, err)
}

func TestCreateTransactionRejectsNonPositiveAmount(t *testing.T) {
	svc := NewService(setupDB(t))
	w := mustCreateWallet(t, svc, 1, "Cash")
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)

	in := income("0", day)
	in.WalletID = w.ID
	_, err := svc.CreateTransaction(1, in)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	in = income("-5", day)
	in.WalletID = w.ID
	_, err = svc.CreateTransaction(1, in)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestForeignWalletIndistinguishableFromMissing(t *testing.T) {
	svc := NewService(setupDB(t))
	theirs := mustCreateWallet(t, svc, 2, "Their wallet")
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)

	in := income("50", day)
	in.WalletID = theirs.ID
	_, errForeign := svc.CreateTransaction(1, in)

	in.WalletID = "no-such-wallet"
	_, errMissing := svc.CreateTransaction(1, in)

	// Same error shape for both, so wallet existence cannot be probed.
	assert.ErrorIs(t, errForeign, domain.ErrWalletNotFound)
	assert.ErrorIs(t, errMissing, domain.ErrWalletNotFound)
	assert.Equal(t, errMissing.Error(), errForeign.Error())
}

func TestUpdateTransaction(t *testing.T) {
	svc := NewService(setupDB(t))
	w := mustCreateWallet(t, svc, 1, "Cash")
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)

	in := income("50", day)
	in.WalletID = w.ID
	created, err := svc.CreateTransaction(1, in)
	require.NoError(t, err)

	in.Type = domain.Expense
	in.Amount = decimal.RequireFromString("75.25")
	in.Description = "corrected entry"
	updated, err := svc.UpdateTransaction(1, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, domain.Expense, updated.Type)
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("75.25")))

	txs, err := svc.ListTransactions(1, w.ID, period.Day(day))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "corrected entry", txs[0].Description)
}

func TestUpdateTransactionCannotMoveToForeignWallet(t *testing.T) {
	svc := NewService(setupDB(t))
	mine := mustCreateWallet(t, svc, 1, "Mine")
	theirs := mustCreateWallet(t, svc, 2, "Theirs")
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)

	in := income("50", day)
	in.WalletID = mine.ID
	created, err := svc.CreateTransaction(1, in)
	require.NoError(t, err)

	in.WalletID = theirs.ID
	_, err = svc.UpdateTransaction(1, created.ID, in)
	assert.ErrorIs(t, err, domain.ErrWalletNotFound)
}

func TestUpdateTransactionScopedToOwner(t *testing.T) {
	svc := NewService(setupDB(t))
	mine := mustCreateWallet(t, svc, 1, "Mine")
	theirs := mustCreateWallet(t, svc, 2, "Theirs")
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)

	in := income("50", day)
	in.WalletID = mine.ID
	created, err := svc.CreateTransaction(1, in)
	require.NoError(t, err)

	// User 2 cannot touch user 1's record even with a wallet of their own.
	in.WalletID = theirs.ID
	_, err = svc.UpdateTransaction(2, created.ID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
