package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestUserRepository_FindByIDForUpdate(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := userRepo{db: db}
	userID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "email", "balance", "is_admin"}).
		AddRow(userID.String(), "student@byui.edu", "5.00", false)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 AND "users"\."deleted_at" IS NULL ORDER BY "users"\."id" LIMIT \$2 FOR UPDATE`).
		WithArgs(userID, 1).
		WillReturnRows(rows)

	user, err := repo.FindByIDForUpdate(db, userID)
	require.NoError(err)
	require.Equal(userID, user.ID)
	require.True(decimal.RequireFromString("5").Equal(user.Balance))
	require.NoError(mock.ExpectationsWereMet())
}

func TestSnackRepository_FindByIDsForUpdate(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := snackRepo{db: db}
	a, b := uuid.New(), uuid.New()

	rows := sqlmock.NewRows([]string{"id", "name", "price", "stock", "is_available"}).
		AddRow(a.String(), "Chips", "1.00", 2, true).
		AddRow(b.String(), "Soda", "1.50", 1, true)
	mock.ExpectQuery(`SELECT \* FROM "snacks" WHERE id IN \(\$1,\$2\) AND "snacks"\."deleted_at" IS NULL ORDER BY id ASC FOR UPDATE`).
		WithArgs(a, b).
		WillReturnRows(rows)

	snacks, err := repo.FindByIDsForUpdate(db, []uuid.UUID{a, b})
	require.NoError(err)
	require.Len(snacks, 2)
	require.NoError(mock.ExpectationsWereMet())
}

func TestSnackRepository_DecrementStock(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := snackRepo{db: db}
	snackID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "snacks" SET (.+) WHERE \(id = \$\d+ AND stock >= \$\d+\) AND "snacks"\."deleted_at" IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	require.NoError(repo.DecrementStock(db, snackID, 2, "admin"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "snacks" SET (.+) WHERE \(id = \$\d+ AND stock >= \$\d+\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	require.ErrorIs(repo.DecrementStock(db, snackID, 2, "admin"), ErrStockChanged)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "snacks" SET (.+)`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()
	err := repo.DecrementStock(db, snackID, 1, "admin")
	require.Error(err)
	require.NotErrorIs(err, ErrStockChanged)

	require.NoError(mock.ExpectationsWereMet())
}
