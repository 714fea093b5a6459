// Package testutil provides SQLite-backed fixtures for package tests.
package testutil

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/pkg/database"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewDB opens a migrated SQLite database in a temp dir.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snacks.db") + "?_busy_timeout=5000"
	db, err := database.Connect(database.Config{
		Driver:   database.DriverSQLite,
		URL:      path,
		LogLevel: "silent",
	}, DiscardLogger())
	require.NoError(t, err)
	require.NoError(t, model.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func CreateUser(t testing.TB, db *gorm.DB, email, balance string, isAdmin bool) *model.User {
	t.Helper()
	user := &model.User{
		Email:       email,
		DisplayName: email,
		Balance:     decimal.RequireFromString(balance),
		IsAdmin:     isAdmin,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateSnack(t testing.TB, db *gorm.DB, name, price string, stock int, available bool) *model.Snack {
	t.Helper()
	snack := &model.Snack{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
		IsAvailable: available,
	}
	require.NoError(t, db.Create(snack).Error)
	return snack
}

// RequireDecimal compares decimals by value.
func RequireDecimal(t testing.TB, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}
