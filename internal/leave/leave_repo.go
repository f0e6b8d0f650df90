package leave

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	FindIncomingForRecommender(ctx context.Context, recommenderID string) ([]LeaveRequest, error)
	FindIncomingForApprover(ctx context.Context, approverID string) ([]LeaveRequest, error)
	UpdateStatusGuarded(ctx context.Context, l *LeaveRequest, expectedStatus string) (bool, error)
	ResubmitGuarded(ctx context.Context, l *LeaveRequest) (bool, error)
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(db *gorm.DB) (Repository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("leave repository: %w", err)
	}
	return &repository{db: db, sqlDB: sqlDB}, nil
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, sqlDB: r.sqlDB, tx: tx}
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	query := `
INSERT INTO leave_requests (
	id, application_no, employee_id, leave_type, start_date, end_date,
	session, total_days, reason, attachment_ref,
	recommender_id, approver_id, substitute_id, status,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
`
	_, err := r.execer().ExecContext(ctx, query,
		l.ID, l.ApplicationNo, l.EmployeeID, l.LeaveType, l.StartDate, l.EndDate,
		l.Session, l.TotalDays, l.Reason, l.AttachmentRef,
		l.RecommenderID, l.ApproverID, l.SubstituteID, l.Status,
	)
	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// FindIncomingForRecommender is a role-column equality lookup, indexable
// on (recommender_id, status).
func (r *repository) FindIncomingForRecommender(ctx context.Context, recommenderID string) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("recommender_id = ?", recommenderID).
		Where("status = ?", StatusPendingRecommendation).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

// FindIncomingForApprover returns recommended requests plus requests that
// skipped recommendation because none was assigned.
func (r *repository) FindIncomingForApprover(ctx context.Context, approverID string) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("approver_id = ?", approverID).
		Where(
			r.db.Where("status = ?", StatusRecommended).
				Or("status = ? AND recommender_id IS NULL", StatusPendingRecommendation),
		).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

// UpdateStatusGuarded applies the optimistic-concurrency check: the write
// lands only if the row still holds expectedStatus. Zero rows affected
// means a concurrent transition won.
func (r *repository) UpdateStatusGuarded(ctx context.Context, l *LeaveRequest, expectedStatus string) (bool, error) {
	query := `
UPDATE leave_requests
SET status = $3, remarks = $4, decided_by = $5, decided_at = $6, updated_at = NOW()
WHERE id = $1 AND status = $2
`
	res, err := r.execer().ExecContext(ctx, query,
		l.ID, expectedStatus, l.Status, l.Remarks, l.DecidedBy, l.DecidedAt,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// ResubmitGuarded rewrites the request facts and routing in one shot,
// guarded on RETURNED so a concurrent decision cannot be overwritten.
func (r *repository) ResubmitGuarded(ctx context.Context, l *LeaveRequest) (bool, error) {
	query := `
UPDATE leave_requests
SET leave_type = $2, start_date = $3, end_date = $4, session = $5,
	total_days = $6, reason = $7, attachment_ref = $8,
	recommender_id = $9, approver_id = $10, substitute_id = $11,
	status = $12, remarks = NULL, decided_by = NULL, decided_at = NULL,
	updated_at = NOW()
WHERE id = $1 AND status = $13
`
	res, err := r.execer().ExecContext(ctx, query,
		l.ID, l.LeaveType, l.StartDate, l.EndDate, l.Session,
		l.TotalDays, l.Reason, l.AttachmentRef,
		l.RecommenderID, l.ApproverID, l.SubstituteID,
		StatusPendingRecommendation, StatusReturned,
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
