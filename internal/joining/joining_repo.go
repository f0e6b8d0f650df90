package joining

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=joining_repo.go -destination=mock/joining_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateOnApproval(ctx context.Context, tx *sql.Tx, leaveRequestID string) error
	FindByLeaveRequestID(ctx context.Context, leaveRequestID string) (*JoiningReport, error)
	SubmitGuarded(ctx context.Context, leaveRequestID string, joiningDate time.Time, reportRef *string) (bool, error)
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(db *gorm.DB) (Repository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("joining repository: %w", err)
	}
	return &repository{db: db, sqlDB: sqlDB}, nil
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, sqlDB: r.sqlDB, tx: tx}
}

// CreateOnApproval opens the pending obligation inside the approval
// transaction. The tx comes from the caller because approval and the
// obligation must commit or roll back together.
func (r *repository) CreateOnApproval(ctx context.Context, tx *sql.Tx, leaveRequestID string) error {
	query := `
INSERT INTO joining_reports (id, leave_request_id, status, created_at, updated_at)
VALUES ($1, $2, $3, NOW(), NOW())
`
	_, err := tx.ExecContext(ctx, query, uuid.New(), leaveRequestID, StatusPending)
	return err
}

func (r *repository) FindByLeaveRequestID(ctx context.Context, leaveRequestID string) (*JoiningReport, error) {
	var report JoiningReport
	err := r.db.WithContext(ctx).First(&report, "leave_request_id = ?", leaveRequestID).Error
	return &report, err
}

// SubmitGuarded flips the report to SUBMITTED only while it is still
// pending, so a duplicate submission matches zero rows.
func (r *repository) SubmitGuarded(ctx context.Context, leaveRequestID string, joiningDate time.Time, reportRef *string) (bool, error) {
	query := `
UPDATE joining_reports
SET status = $3, joining_date = $4, report_ref = $5, submitted_at = NOW(), updated_at = NOW()
WHERE leave_request_id = $1 AND status = $2
`
	res, err := r.execer().ExecContext(ctx, query,
		leaveRequestID, StatusPending, StatusSubmitted, joiningDate, reportRef,
	)
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
