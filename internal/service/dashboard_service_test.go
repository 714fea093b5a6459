package service

import (
	"testing"

	"github.com/EnmaSantos/office-snack-app/internal/repository"
	"github.com/EnmaSantos/office-snack-app/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService(t *testing.T) {
	db := testutil.NewDB(t)
	userRepo := repository.NewUserRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	checkout := NewCheckoutService(userRepo, repository.NewSnackRepo(db), txRepo, db, nil)
	dashboard := NewDashboardService(txRepo)

	admin := identityOf(testutil.CreateUser(t, db, "admin@byui.edu", "0", true))
	buyer := testutil.CreateUser(t, db, "buyer@byui.edu", "10.00", false)
	chips := testutil.CreateSnack(t, db, "Chips", "1.00", 5, true)

	_, err := checkout.Checkout(identityOf(buyer), &CheckoutInput{SnackIDs: []uuid.UUID{chips.ID, chips.ID, chips.ID}})
	require.NoError(t, err)

	stats, err := dashboard.GetDashboardStats(admin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalSnacks)
	assert.Equal(t, int64(1), stats.LowStockCount)
	testutil.RequireDecimal(t, "2.00", stats.StockValuation)

	sales, err := dashboard.GetDailySales(admin, 0)
	require.NoError(t, err)
	units := 0
	for _, day := range sales {
		units += day.Units
	}
	assert.Equal(t, 3, units)

	_, err = dashboard.GetDashboardStats(identityOf(buyer))
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = dashboard.GetDailySales(identityOf(buyer), 7)
	assert.ErrorIs(t, err, ErrForbidden)
}
