package database

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{Driver: DriverPostgres, Host: "db", User: "u", Password: "p", Name: "snacks", Port: "5432"}
	assert.Equal(t, "host=db user=u password=p dbname=snacks port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())

	cfg.URL = "postgres://u:p@db/snacks"
	assert.Equal(t, "postgres://u:p@db/snacks", cfg.DSN())

	assert.Equal(t, "snacks.db", Config{Driver: DriverSQLite}.DSN())
}

func TestConnect_SQLite(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := Connect(Config{Driver: DriverSQLite, URL: filepath.Join(t.TempDir(), "test.db"), LogLevel: "silent"}, log)
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := Connect(Config{Driver: "oracle"}, log)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestIsConflict(t *testing.T) {
	assert.False(t, IsConflict(nil))
	assert.False(t, IsConflict(errors.New("boom")))
	assert.True(t, IsConflict(&pgconn.PgError{Code: "40001"}))
	assert.True(t, IsConflict(fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40P01"})))
	assert.False(t, IsConflict(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsConflict(errors.New("database is locked")))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseLogLevel("silent"))
	assert.Equal(t, logger.Info, parseLogLevel("INFO"))
	assert.Equal(t, logger.Warn, parseLogLevel(""))
}
