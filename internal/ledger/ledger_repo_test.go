package ledger_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"faculty-portal/internal/ledger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// The availability and underflow checks live inside the UPDATE
// predicates, so the tests pin the exact statements the repository
// issues.
var (
	reserveSQL = regexp.QuoteMeta(
		`UPDATE leave_balances SET reserved = reserved + $4, updated_at = NOW() ` +
			`WHERE employee_id = $1 AND leave_type = $2 AND year = $3 ` +
			`AND entitled - reserved - consumed >= $4`,
	)
	commitSQL = regexp.QuoteMeta(
		`UPDATE leave_balances SET reserved = reserved - $4, consumed = consumed + $4, updated_at = NOW() ` +
			`WHERE employee_id = $1 AND leave_type = $2 AND year = $3 AND reserved >= $4`,
	)
	releaseSQL = regexp.QuoteMeta(
		`UPDATE leave_balances SET reserved = reserved - $4, updated_at = NOW() ` +
			`WHERE employee_id = $1 AND leave_type = $2 AND year = $3 AND reserved >= $4`,
	)
)

func setupLedgerRepoTest(t *testing.T) (ledger.Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	repo, err := ledger.NewRepository(gormDB)
	assert.NoError(t, err)

	return repo, mock, db
}

func TestLedgerRepository_Reserve(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	days := decimal.NewFromInt(3)

	t.Run("success holds days when balance suffices", func(t *testing.T) {
		repo, mock, db := setupLedgerRepoTest(t)
		defer db.Close()

		mock.ExpectExec(reserveSQL).
			WithArgs(employeeID, ledger.TypeCasual, 2026, days).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Reserve(ctx, employeeID, ledger.TypeCasual, 2026, days)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative insufficient balance matches zero rows", func(t *testing.T) {
		repo, mock, db := setupLedgerRepoTest(t)
		defer db.Close()

		mock.ExpectExec(reserveSQL).
			WithArgs(employeeID, ledger.TypeCasual, 2026, days).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Reserve(ctx, employeeID, ledger.TypeCasual, 2026, days)

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success routes through the caller's transaction", func(t *testing.T) {
		repo, mock, db := setupLedgerRepoTest(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(reserveSQL).
			WithArgs(employeeID, ledger.TypeEarned, 2026, days).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		assert.NoError(t, err)

		ok, err := repo.WithTx(tx).Reserve(ctx, employeeID, ledger.TypeEarned, 2026, days)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_CommitDays(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	days := decimal.NewFromFloat(0.5)

	t.Run("success moves reserved to consumed", func(t *testing.T) {
		repo, mock, db := setupLedgerRepoTest(t)
		defer db.Close()

		mock.ExpectExec(commitSQL).
			WithArgs(employeeID, ledger.TypeSick, 2026, days).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.CommitDays(ctx, employeeID, ledger.TypeSick, 2026, days)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative reservation underflow matches zero rows", func(t *testing.T) {
		repo, mock, db := setupLedgerRepoTest(t)
		defer db.Close()

		mock.ExpectExec(commitSQL).
			WithArgs(employeeID, ledger.TypeSick, 2026, days).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.CommitDays(ctx, employeeID, ledger.TypeSick, 2026, days)

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_ReleaseDays(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	days := decimal.NewFromInt(2)

	t.Run("success returns reserved days to the pool", func(t *testing.T) {
		repo, mock, db := setupLedgerRepoTest(t)
		defer db.Close()

		mock.ExpectExec(releaseSQL).
			WithArgs(employeeID, ledger.TypeRestrictedHoliday, 2026, days).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.ReleaseDays(ctx, employeeID, ledger.TypeRestrictedHoliday, 2026, days)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative nothing reserved matches zero rows", func(t *testing.T) {
		repo, mock, db := setupLedgerRepoTest(t)
		defer db.Close()

		mock.ExpectExec(releaseSQL).
			WithArgs(employeeID, ledger.TypeRestrictedHoliday, 2026, days).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.ReleaseDays(ctx, employeeID, ledger.TypeRestrictedHoliday, 2026, days)

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
