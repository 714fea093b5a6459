package service

import (
	"bytes"
	"testing"

	"github.com/EnmaSantos/office-snack-app/internal/repository"
	"github.com/EnmaSantos/office-snack-app/internal/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestTransactionService_Listings(t *testing.T) {
	db := testutil.NewDB(t)
	userRepo := repository.NewUserRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	snackRepo := repository.NewSnackRepo(db)
	ledger := NewLedgerService(userRepo, txRepo, db)
	checkout := NewCheckoutService(userRepo, snackRepo, txRepo, db, nil)
	transactions := NewTransactionService(userRepo, txRepo)

	admin := identityOf(testutil.CreateUser(t, db, "admin@byui.edu", "0", true))
	alice := testutil.CreateUser(t, db, "alice@byui.edu", "0", false)
	bob := testutil.CreateUser(t, db, "bob@byui.edu", "0", false)
	chips := testutil.CreateSnack(t, db, "Chips", "1.50", 4, true)

	_, err := ledger.AdjustBalance(admin, &AdjustBalanceInput{UserID: alice.ID, Amount: decimal.RequireFromString("3.00")})
	require.NoError(t, err)
	_, err = checkout.Checkout(identityOf(alice), &CheckoutInput{SnackIDs: []uuid.UUID{chips.ID}})
	require.NoError(t, err)
	_, err = ledger.AddSelfBalance(identityOf(bob), &AddBalanceInput{Amount: decimal.RequireFromString("2.00")})
	require.NoError(t, err)

	mine, err := transactions.ListMine(identityOf(alice))
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.NotNil(t, mine[0].SnackName)
	assert.Equal(t, "Chips", *mine[0].SnackName)
	testutil.RequireDecimal(t, "-1.50", mine[0].Amount)

	_, err = transactions.ListByUser(identityOf(alice), bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	own, err := transactions.ListByUser(identityOf(alice), alice.ID)
	require.NoError(t, err)
	assert.Len(t, own, 2)

	_, err = transactions.ListByUser(admin, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = transactions.ListAll(identityOf(bob))
	assert.ErrorIs(t, err, ErrForbidden)

	all, err := transactions.ListAll(admin)
	require.NoError(t, err)
	require.Len(t, all, 3)

	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsXLSX(&buf, all))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Date", "User", "Email", "Type", "Snack", "Unit Price", "Amount"}, rows[0])
}
