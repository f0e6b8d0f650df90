package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=ledger_repo.go -destination=mock/ledger_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Find(ctx context.Context, employeeID, leaveType string, year int) (*LeaveBalance, error)
	FindAllByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	Exists(ctx context.Context, employeeID, leaveType string, year int) (bool, error)
	Create(ctx context.Context, b *LeaveBalance) error
	Reserve(ctx context.Context, employeeID, leaveType string, year int, days decimal.Decimal) (bool, error)
	CommitDays(ctx context.Context, employeeID, leaveType string, year int, days decimal.Decimal) (bool, error)
	ReleaseDays(ctx context.Context, employeeID, leaveType string, year int, days decimal.Decimal) (bool, error)
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(db *gorm.DB) (Repository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("ledger repository: %w", err)
	}
	return &repository{db: db, sqlDB: sqlDB}, nil
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, sqlDB: r.sqlDB, tx: tx}
}

func (r *repository) Find(ctx context.Context, employeeID, leaveType string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("leave_type = ?", leaveType).
		Where("year = ?", year).
		First(&b).Error
	return &b, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Order("leave_type ASC").
		Find(&balances).Error
	return balances, err
}

func (r *repository) Exists(ctx context.Context, employeeID, leaveType string, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveBalance{}).
		Where("employee_id = ?", employeeID).
		Where("leave_type = ?", leaveType).
		Where("year = ?", year).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// Reserve holds days against the row iff enough balance remains. The
// availability check and the increment are one statement so two
// concurrent reservations can never both pass the check and overdraw.
func (r *repository) Reserve(ctx context.Context, employeeID, leaveType string, year int, days decimal.Decimal) (bool, error) {
	query := `
UPDATE leave_balances
SET reserved = reserved + $4, updated_at = NOW()
WHERE employee_id = $1
	AND leave_type = $2
	AND year = $3
	AND entitled - reserved - consumed >= $4
`
	res, err := r.execer().ExecContext(ctx, query, employeeID, leaveType, year, days)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// CommitDays settles an approval: moves days from reserved to consumed.
func (r *repository) CommitDays(ctx context.Context, employeeID, leaveType string, year int, days decimal.Decimal) (bool, error) {
	query := `
UPDATE leave_balances
SET reserved = reserved - $4, consumed = consumed + $4, updated_at = NOW()
WHERE employee_id = $1
	AND leave_type = $2
	AND year = $3
	AND reserved >= $4
`
	res, err := r.execer().ExecContext(ctx, query, employeeID, leaveType, year, days)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// ReleaseDays returns reserved days to the available pool on
// reject, return and cancel.
func (r *repository) ReleaseDays(ctx context.Context, employeeID, leaveType string, year int, days decimal.Decimal) (bool, error) {
	query := `
UPDATE leave_balances
SET reserved = reserved - $4, updated_at = NOW()
WHERE employee_id = $1
	AND leave_type = $2
	AND year = $3
	AND reserved >= $4
`
	res, err := r.execer().ExecContext(ctx, query, employeeID, leaveType, year, days)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}
