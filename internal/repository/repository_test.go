package repository_test

import (
	"testing"
	"time"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/repository"
	"github.com/EnmaSantos/office-snack-app/internal/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSnackRepository_ListAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewSnackRepo(db)

	chips := testutil.CreateSnack(t, db, "Chips", "1.00", 5, true)
	testutil.CreateSnack(t, db, "Apple", "0.50", 0, true)
	testutil.CreateSnack(t, db, "Retired Bar", "0.75", 4, false)

	available, err := repo.FindAvailable()
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "Apple", available[0].Name)
	assert.Equal(t, "Chips", available[1].Name)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.Delete(chips.ID, "admin"))
	_, err = repo.FindByID(chips.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(chips.ID, "admin"), gorm.ErrRecordNotFound)
}

func TestSnackRepository_DecrementStockGuard(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewSnackRepo(db)
	snack := testutil.CreateSnack(t, db, "Soda", "1.50", 2, true)

	require.NoError(t, repo.DecrementStock(db, snack.ID, 2, "u"))
	assert.ErrorIs(t, repo.DecrementStock(db, snack.ID, 1, "u"), repository.ErrStockChanged)

	got, err := repo.FindByID(snack.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)
}

func TestUserRepository_BalanceAndAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUserRepo(db)
	user := testutil.CreateUser(t, db, "b@byui.edu", "5.00", false)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		locked, err := repo.FindByIDForUpdate(tx, user.ID)
		if err != nil {
			return err
		}
		if err := repo.UpdateBalance(tx, locked.ID, locked.Balance.Sub(decimal.RequireFromString("1.25")), "admin"); err != nil {
			return err
		}
		return repo.UpdateAdmin(tx, locked.ID, true, "admin")
	}))

	got, err := repo.FindByEmail("b@byui.edu")
	require.NoError(t, err)
	testutil.RequireDecimal(t, "3.75", got.Balance)
	assert.True(t, got.IsAdmin)

	_, err = repo.FindByID(uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTransactionRepository_Views(t *testing.T) {
	db := testutil.NewDB(t)
	txRepo := repository.NewTransactionRepo(db)
	snackRepo := repository.NewSnackRepo(db)

	alice := testutil.CreateUser(t, db, "alice@byui.edu", "0", false)
	bob := testutil.CreateUser(t, db, "bob@byui.edu", "0", false)
	chips := testutil.CreateSnack(t, db, "Chips", "1.00", 5, true)

	base := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, txRepo.Create(db,
		&model.Transaction{UserID: alice.ID, Amount: decimal.RequireFromString("5.00"), Kind: model.TxAdjustment, CreatedAt: base},
		&model.Transaction{UserID: alice.ID, SnackID: &chips.ID, Amount: decimal.RequireFromString("-1.00"), Kind: model.TxPurchase, CreatedAt: base.Add(time.Minute)},
		&model.Transaction{UserID: bob.ID, Amount: decimal.RequireFromString("2.00"), Kind: model.TxDeposit, CreatedAt: base.Add(2 * time.Minute)},
	))

	views, err := txRepo.FindViewsByUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	purchase := views[0]
	assert.Equal(t, model.TxPurchase, purchase.Kind)
	require.NotNil(t, purchase.SnackName)
	assert.Equal(t, "Chips", *purchase.SnackName)
	assert.True(t, purchase.SnackPrice.Valid)
	assert.Equal(t, "alice@byui.edu", purchase.UserEmail)

	adjustment := views[1]
	assert.Nil(t, adjustment.SnackID)
	assert.Nil(t, adjustment.SnackName)
	assert.False(t, adjustment.SnackPrice.Valid)

	// renamed and then deleted snacks still resolve at read time
	require.NoError(t, db.Model(&model.Snack{}).Where("id = ?", chips.ID).Update("name", "Kettle Chips").Error)
	require.NoError(t, snackRepo.Delete(chips.ID, "admin"))
	views, err = txRepo.FindViewsByUser(alice.ID)
	require.NoError(t, err)
	require.NotNil(t, views[0].SnackName)
	assert.Equal(t, "Kettle Chips", *views[0].SnackName)

	all, err := txRepo.FindAllViews()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, bob.ID, all[0].UserID)

	sum, err := txRepo.SumByUser(alice.ID)
	require.NoError(t, err)
	testutil.RequireDecimal(t, "4.00", sum)

	sum, err = txRepo.SumByUser(uuid.New())
	require.NoError(t, err)
	testutil.RequireDecimal(t, "0", sum)
}

func TestTransactionRepository_DashboardStats(t *testing.T) {
	db := testutil.NewDB(t)
	txRepo := repository.NewTransactionRepo(db)
	requests := repository.NewSnackRequestRepo(db)

	user := testutil.CreateUser(t, db, "a@byui.edu", "-1.50", false)
	testutil.CreateUser(t, db, "b@byui.edu", "4.00", true)
	testutil.CreateSnack(t, db, "Chips", "1.00", 10, true)
	testutil.CreateSnack(t, db, "Gum", "0.50", 1, true)
	testutil.CreateSnack(t, db, "Old", "2.00", 0, false)
	require.NoError(t, requests.Create(&model.SnackRequest{SnackName: "Pretzels", Status: model.RequestPending, RequestedByUserID: user.ID}))

	stats, err := txRepo.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalSnacks)
	assert.Equal(t, int64(2), stats.AvailableSnacks)
	assert.Equal(t, int64(1), stats.LowStockCount)
	testutil.RequireDecimal(t, "10.50", stats.StockValuation)
	assert.Equal(t, int64(2), stats.TotalUsers)
	testutil.RequireDecimal(t, "2.50", stats.TotalBalance)
	testutil.RequireDecimal(t, "1.50", stats.OutstandingBalance)
	assert.Equal(t, int64(1), stats.PendingRequests)
}

func TestSnackRequestRepository(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewSnackRequestRepo(db)
	user := testutil.CreateUser(t, db, "r@byui.edu", "0", false)

	first := &model.SnackRequest{SnackName: "Pretzels", Status: model.RequestPending, RequestedByUserID: user.ID}
	require.NoError(t, repo.Create(first))
	second := &model.SnackRequest{SnackName: "Jerky", Status: model.RequestPending, RequestedByUserID: user.ID}
	require.NoError(t, repo.Create(second))

	require.NoError(t, repo.UpdateStatus(first.ID, model.RequestApproved, "admin"))
	assert.ErrorIs(t, repo.UpdateStatus(uuid.New(), model.RequestApproved, "admin"), gorm.ErrRecordNotFound)

	pending := model.RequestPending
	list, err := repo.FindAll(&pending)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Jerky", list[0].SnackName)
	require.NotNil(t, list[0].RequestedByUser)
	assert.Equal(t, "r@byui.edu", list[0].RequestedByUser.Email)

	got, err := repo.FindByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestApproved, got.Status)

	require.NoError(t, repo.Delete(first.ID, "admin"))
	all, err := repo.FindAll(nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
