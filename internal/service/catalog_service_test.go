package service

import (
	"testing"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/repository"
	"github.com/EnmaSantos/office-snack-app/internal/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestCatalog_CRUD(t *testing.T) {
	db := testutil.NewDB(t)
	events := &recordingBroadcaster{}
	catalog := NewCatalogService(repository.NewSnackRepo(db), db, events)
	admin := identityOf(testutil.CreateUser(t, db, "admin@byui.edu", "0", true))

	created, err := catalog.CreateSnack(admin, &SnackInput{Name: "  Pretzels ", Price: decimal.RequireFromString("0.75"), Stock: 0})
	require.NoError(t, err)
	assert.Equal(t, "Pretzels", created.Name)
	assert.True(t, created.IsAvailable)

	available, err := catalog.ListAvailable()
	require.NoError(t, err)
	require.Len(t, available, 1, "zero stock snacks stay listed")

	image := "https://example.com/pretzels.png"
	updated, err := catalog.UpdateSnack(admin, created.ID, &SnackInput{Name: "Pretzel Rods", Price: decimal.RequireFromString("1.00"), Stock: 12, ImageURL: &image})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Stock)
	assert.True(t, updated.IsAvailable, "nil availability keeps the current value")
	require.NotNil(t, updated.ImageURL)

	updated, err = catalog.UpdateSnack(admin, created.ID, &SnackInput{Name: "Pretzel Rods", Price: decimal.RequireFromString("1.00"), Stock: 12, IsAvailable: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
	assert.Nil(t, updated.ImageURL)

	available, err = catalog.ListAvailable()
	require.NoError(t, err)
	assert.Empty(t, available)

	all, err := catalog.ListAll(admin)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	got, err := catalog.GetSnack(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pretzel Rods", got.Name)
	testutil.RequireDecimal(t, "1.00", got.Price)

	require.NoError(t, catalog.DeleteSnack(admin, created.ID))
	_, err = catalog.GetSnack(created.ID)
	assert.ErrorIs(t, err, ErrSnackNotFound)
	assert.ErrorIs(t, catalog.DeleteSnack(admin, created.ID), ErrSnackNotFound)

	assert.Equal(t, []string{"snack_created", "snack_updated", "snack_updated", "snack_deleted"}, events.actions())
}

func TestCatalog_Validation(t *testing.T) {
	db := testutil.NewDB(t)
	catalog := NewCatalogService(repository.NewSnackRepo(db), db, nil)
	admin := identityOf(testutil.CreateUser(t, db, "admin@byui.edu", "0", true))
	user := identityOf(testutil.CreateUser(t, db, "user@byui.edu", "0", false))

	cases := map[string]*SnackInput{
		"blank name":     {Name: "   ", Price: decimal.RequireFromString("1")},
		"negative price": {Name: "Chips", Price: decimal.RequireFromString("-0.01")},
		"sub-cent price": {Name: "Chips", Price: decimal.RequireFromString("0.015")},
		"beyond float":   {Name: "Chips", Price: decimal.RequireFromString("1.000000000000000001")},
		"negative stock": {Name: "Chips", Price: decimal.RequireFromString("1"), Stock: -1},
	}
	for name, input := range cases {
		_, err := catalog.CreateSnack(admin, input)
		assert.ErrorIs(t, err, ErrValidation, name)
	}

	_, err := catalog.CreateSnack(user, &SnackInput{Name: "Chips", Price: decimal.RequireFromString("1")})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = catalog.UpdateSnack(admin, uuid.New(), &SnackInput{Name: "Chips", Price: decimal.RequireFromString("1")})
	assert.ErrorIs(t, err, ErrSnackNotFound)

	existing := testutil.CreateSnack(t, db, "Gum", "1.00", 2, true)
	_, err = catalog.UpdateSnack(admin, existing.ID, &SnackInput{Name: "Gum", Price: decimal.RequireFromString("1.000000000000000001"), Stock: 2})
	assert.ErrorIs(t, err, ErrValidation)
	var stored model.Snack
	require.NoError(t, db.First(&stored, "id = ?", existing.ID).Error)
	testutil.RequireDecimal(t, "1.00", stored.Price)

	_, err = catalog.ListAll(user)
	assert.ErrorIs(t, err, ErrForbidden)
}
