package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"faculty-portal/internal/directory"
	"faculty-portal/internal/leave"
	leaveerrors "faculty-portal/internal/leave/errors"
	"faculty-portal/internal/ledger"
	ledgererrors "faculty-portal/internal/ledger/errors"
	"faculty-portal/internal/notification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveRepository struct {
	withTxFn                     func(tx *sql.Tx) leave.Repository
	createFn                     func(ctx context.Context, l *leave.LeaveRequest) error
	findByIDFn                   func(ctx context.Context, id string) (*leave.LeaveRequest, error)
	findAllByEmployeeFn          func(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error)
	findIncomingForRecommenderFn func(ctx context.Context, recommenderID string) ([]leave.LeaveRequest, error)
	findIncomingForApproverFn    func(ctx context.Context, approverID string) ([]leave.LeaveRequest, error)
	updateStatusGuardedFn        func(ctx context.Context, l *leave.LeaveRequest, expectedStatus string) (bool, error)
	resubmitGuardedFn            func(ctx context.Context, l *leave.LeaveRequest) (bool, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.LeaveRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, sql.ErrNoRows
}

func (f *fakeLeaveRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindIncomingForRecommender(ctx context.Context, recommenderID string) ([]leave.LeaveRequest, error) {
	if f.findIncomingForRecommenderFn != nil {
		return f.findIncomingForRecommenderFn(ctx, recommenderID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindIncomingForApprover(ctx context.Context, approverID string) ([]leave.LeaveRequest, error) {
	if f.findIncomingForApproverFn != nil {
		return f.findIncomingForApproverFn(ctx, approverID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) UpdateStatusGuarded(ctx context.Context, l *leave.LeaveRequest, expectedStatus string) (bool, error) {
	if f.updateStatusGuardedFn != nil {
		return f.updateStatusGuardedFn(ctx, l, expectedStatus)
	}
	return true, nil
}

func (f *fakeLeaveRepository) ResubmitGuarded(ctx context.Context, l *leave.LeaveRequest) (bool, error) {
	if f.resubmitGuardedFn != nil {
		return f.resubmitGuardedFn(ctx, l)
	}
	return true, nil
}

type fakeLedgerRepository struct {
	reserveFn     func(ctx context.Context, employeeID, leaveType string, year int, days decimal.Decimal) (bool, error)
	commitDaysFn  func(ctx context.Context, employeeID, leaveType string, year int, days decimal.Decimal) (bool, error)
	releaseDaysFn func(ctx context.Context, employeeID, leaveType string, year int, days decimal.Decimal) (bool, error)
	existsFn      func(ctx context.Context, employeeID, leaveType string, year int) (bool, error)
}

func (f *fakeLedgerRepository) WithTx(tx *sql.Tx) ledger.Repository { return f }

func (f *fakeLedgerRepository) Find(ctx context.Context, employeeID, leaveType string, year int) (*ledger.LeaveBalance, error) {
	return nil, sql.ErrNoRows
}

func (f *fakeLedgerRepository) FindAllByEmployee(ctx context.Context, employeeID string, year int) ([]ledger.LeaveBalance, error) {
	return nil, nil
}

func (f *fakeLedgerRepository) Exists(ctx context.Context, employeeID, leaveType string, year int) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(ctx, employeeID, leaveType, year)
	}
	return true, nil
}

func (f *fakeLedgerRepository) Create(ctx context.Context, b *ledger.LeaveBalance) error { return nil }

func (f *fakeLedgerRepository) Reserve(ctx context.Context, employeeID, leaveType string, year int, days decimal.Decimal) (bool, error) {
	if f.reserveFn != nil {
		return f.reserveFn(ctx, employeeID, leaveType, year, days)
	}
	return true, nil
}

func (f *fakeLedgerRepository) CommitDays(ctx context.Context, employeeID, leaveType string, year int, days decimal.Decimal) (bool, error) {
	if f.commitDaysFn != nil {
		return f.commitDaysFn(ctx, employeeID, leaveType, year, days)
	}
	return true, nil
}

func (f *fakeLedgerRepository) ReleaseDays(ctx context.Context, employeeID, leaveType string, year int, days decimal.Decimal) (bool, error) {
	if f.releaseDaysFn != nil {
		return f.releaseDaysFn(ctx, employeeID, leaveType, year, days)
	}
	return true, nil
}

type fakeCounterRepository struct {
	getNextValueFn func(ctx context.Context, scope, counterType string) (int64, error)
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, scope, counterType string) (int64, error) {
	if f.getNextValueFn != nil {
		return f.getNextValueFn(ctx, scope, counterType)
	}
	return 1, nil
}

type fakeDirectoryService struct {
	getRoleFn func(ctx context.Context, employeeID string) (string, error)
}

func (f *fakeDirectoryService) GetRole(ctx context.Context, employeeID string) (string, error) {
	if f.getRoleFn != nil {
		return f.getRoleFn(ctx, employeeID)
	}
	return directory.RoleFaculty, nil
}

func (f *fakeDirectoryService) RoutingOptions(ctx context.Context, employeeID string) (directory.RoutingOptionsResponse, error) {
	return directory.RoutingOptionsResponse{}, nil
}

type fakeJoiningObligation struct {
	createOnApprovalFn func(ctx context.Context, tx *sql.Tx, leaveRequestID string) error
	calls              int
}

func (f *fakeJoiningObligation) CreateOnApproval(ctx context.Context, tx *sql.Tx, leaveRequestID string) error {
	f.calls++
	if f.createOnApprovalFn != nil {
		return f.createOnApprovalFn(ctx, tx, leaveRequestID)
	}
	return nil
}

type recordingTrigger struct {
	events    []string
	snapshots []notification.Snapshot
}

func (r *recordingTrigger) record(event string, snap notification.Snapshot) {
	r.events = append(r.events, event)
	r.snapshots = append(r.snapshots, snap)
}

func (r *recordingTrigger) OnSubmitted(ctx context.Context, snap notification.Snapshot) {
	r.record("submitted", snap)
}
func (r *recordingTrigger) OnRecommended(ctx context.Context, snap notification.Snapshot) {
	r.record("recommended", snap)
}
func (r *recordingTrigger) OnApproved(ctx context.Context, snap notification.Snapshot) {
	r.record("approved", snap)
}
func (r *recordingTrigger) OnRejected(ctx context.Context, snap notification.Snapshot) {
	r.record("rejected", snap)
}
func (r *recordingTrigger) OnReturned(ctx context.Context, snap notification.Snapshot) {
	r.record("returned", snap)
}
func (r *recordingTrigger) OnCancelled(ctx context.Context, snap notification.Snapshot) {
	r.record("cancelled", snap)
}
func (r *recordingTrigger) OnResubmitted(ctx context.Context, snap notification.Snapshot) {
	r.record("resubmitted", snap)
}
func (r *recordingTrigger) OnJoined(ctx context.Context, snap notification.Snapshot) {
	r.record("joined", snap)
}

type leaveServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   leave.Service
	repo      *fakeLeaveRepository
	ledger    *fakeLedgerRepository
	counter   *fakeCounterRepository
	directory *fakeDirectoryService
	joining   *fakeJoiningObligation
	trigger   *recordingTrigger
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	deps := &leaveServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      &fakeLeaveRepository{},
		ledger:    &fakeLedgerRepository{},
		counter:   &fakeCounterRepository{},
		directory: &fakeDirectoryService{},
		joining:   &fakeJoiningObligation{},
		trigger:   &recordingTrigger{},
	}
	deps.service = leave.NewService(
		db, deps.repo, deps.ledger, deps.joining, deps.counter, deps.directory, deps.trigger,
	)
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func pendingRequest(employeeID, recommenderID, approverID uuid.UUID) *leave.LeaveRequest {
	return &leave.LeaveRequest{
		ID:            uuid.New(),
		ApplicationNo: "LV-2026-000007",
		EmployeeID:    employeeID,
		LeaveType:     ledger.TypeCasual,
		StartDate:     time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		Session:       leave.SessionFullDay,
		TotalDays:     decimal.NewFromInt(3),
		RecommenderID: &recommenderID,
		ApproverID:    &approverID,
		Status:        leave.StatusPendingRecommendation,
	}
}

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	recommenderID := uuid.New().String()
	approverID := uuid.New().String()

	req := leave.SubmitLeaveRequest{
		LeaveType:     "CL",
		StartDate:     "2026-09-14",
		EndDate:       "2026-09-16",
		Session:       leave.SessionFullDay,
		Reason:        "Family function",
		RecommenderID: &recommenderID,
		ApproverID:    &approverID,
	}

	t.Run("success full day", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.ledger.reserveFn = func(ctx context.Context, eid, lt string, year int, days decimal.Decimal) (bool, error) {
			assert.Equal(t, employeeID, eid)
			assert.Equal(t, "CL", lt)
			assert.Equal(t, 2026, year)
			assert.True(t, days.Equal(decimal.NewFromInt(3)))
			return true, nil
		}
		deps.counter.getNextValueFn = func(ctx context.Context, scope, counterType string) (int64, error) {
			assert.Equal(t, "2026", scope)
			return 42, nil
		}
		deps.repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			assert.Equal(t, "LV-2026-000042", l.ApplicationNo)
			assert.Equal(t, leave.StatusPendingRecommendation, l.Status)
			assert.True(t, l.TotalDays.Equal(decimal.NewFromInt(3)))
			return nil
		}

		resp, err := deps.service.Submit(ctx, employeeID, req)

		assert.NoError(t, err)
		assert.Equal(t, "LV-2026-000042", resp.ApplicationNo)
		assert.Equal(t, leave.StatusPendingRecommendation, resp.Status)
		assert.Equal(t, "3", resp.TotalDays)
		assert.Equal(t, []string{"submitted"}, deps.trigger.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success half day reserves half", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		halfReq := req
		halfReq.StartDate = "2026-09-14"
		halfReq.EndDate = "2026-09-14"
		halfReq.Session = leave.SessionHalfDayMorning

		deps.ledger.reserveFn = func(ctx context.Context, eid, lt string, year int, days decimal.Decimal) (bool, error) {
			assert.True(t, days.Equal(decimal.NewFromFloat(0.5)))
			return true, nil
		}

		resp, err := deps.service.Submit(ctx, employeeID, halfReq)

		assert.NoError(t, err)
		assert.Equal(t, "0.5", resp.TotalDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative half day spanning days", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		badReq := req
		badReq.Session = leave.SessionHalfDayAfternoon

		_, err := deps.service.Submit(ctx, employeeID, badReq)

		assert.ErrorIs(t, err, leaveerrors.ErrHalfDaySpansDays)
		assert.Empty(t, deps.trigger.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative start after end", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		badReq := req
		badReq.StartDate = "2026-09-20"

		_, err := deps.service.Submit(ctx, employeeID, badReq)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("negative insufficient balance", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.ledger.reserveFn = func(ctx context.Context, eid, lt string, year int, days decimal.Decimal) (bool, error) {
			return false, nil
		}
		deps.ledger.existsFn = func(ctx context.Context, eid, lt string, year int) (bool, error) {
			return true, nil
		}

		_, err := deps.service.Submit(ctx, employeeID, req)

		assert.ErrorIs(t, err, ledgererrors.ErrInsufficientBalance)
		assert.Empty(t, deps.trigger.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative missing ledger row", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.ledger.reserveFn = func(ctx context.Context, eid, lt string, year int, days decimal.Decimal) (bool, error) {
			return false, nil
		}
		deps.ledger.existsFn = func(ctx context.Context, eid, lt string, year int) (bool, error) {
			return false, nil
		}

		_, err := deps.service.Submit(ctx, employeeID, req)

		assert.ErrorIs(t, err, ledgererrors.ErrLedgerNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative persist failure rolls back", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			return errors.New("db error")
		}

		_, err := deps.service.Submit(ctx, employeeID, req)

		assert.Error(t, err)
		assert.Empty(t, deps.trigger.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveService_Recommend(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	recommenderID := uuid.New()
	approverID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		l := pendingRequest(employeeID, recommenderID, approverID)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}
		deps.repo.updateStatusGuardedFn = func(ctx context.Context, got *leave.LeaveRequest, expected string) (bool, error) {
			assert.Equal(t, leave.StatusPendingRecommendation, expected)
			assert.Equal(t, leave.StatusRecommended, got.Status)
			return true, nil
		}

		resp, err := deps.service.Recommend(ctx, recommenderID.String(), l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRecommended, resp.Status)
		assert.Equal(t, []string{"recommended"}, deps.trigger.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative wrong actor", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		l := pendingRequest(employeeID, recommenderID, approverID)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		_, err := deps.service.Recommend(ctx, uuid.New().String(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrForbiddenActor)
	})

	t.Run("negative already recommended", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		l := pendingRequest(employeeID, recommenderID, approverID)
		l.Status = leave.StatusRecommended
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		_, err := deps.service.Recommend(ctx, recommenderID.String(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	recommenderID := uuid.New()
	approverID := uuid.New()

	t.Run("success commits days and opens joining obligation", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		l := pendingRequest(employeeID, recommenderID, approverID)
		l.Status = leave.StatusRecommended
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		var committed decimal.Decimal
		deps.ledger.commitDaysFn = func(ctx context.Context, eid, lt string, year int, days decimal.Decimal) (bool, error) {
			assert.Equal(t, employeeID.String(), eid)
			assert.Equal(t, 2026, year)
			committed = days
			return true, nil
		}

		resp, err := deps.service.Approve(ctx, approverID.String(), l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.True(t, committed.Equal(decimal.NewFromInt(3)))
		assert.Equal(t, 1, deps.joining.calls)
		assert.NotNil(t, resp.DecidedBy)
		assert.Equal(t, approverID.String(), *resp.DecidedBy)
		assert.Equal(t, []string{"approved"}, deps.trigger.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success skip recommendation when none assigned", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		l := pendingRequest(employeeID, recommenderID, approverID)
		l.RecommenderID = nil
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}
		deps.repo.updateStatusGuardedFn = func(ctx context.Context, got *leave.LeaveRequest, expected string) (bool, error) {
			assert.Equal(t, leave.StatusPendingRecommendation, expected)
			return true, nil
		}

		resp, err := deps.service.Approve(ctx, approverID.String(), l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative approver before recommendation", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		l := pendingRequest(employeeID, recommenderID, approverID)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		_, err := deps.service.Approve(ctx, approverID.String(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("negative lost optimistic check", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		l := pendingRequest(employeeID, recommenderID, approverID)
		l.Status = leave.StatusRecommended
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}
		deps.repo.updateStatusGuardedFn = func(ctx context.Context, got *leave.LeaveRequest, expected string) (bool, error) {
			return false, nil
		}

		_, err := deps.service.Approve(ctx, approverID.String(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrStaleState)
		assert.Equal(t, 0, deps.joining.calls)
		assert.Empty(t, deps.trigger.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveService_AdminApprove(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	recommenderID := uuid.New()
	approverID := uuid.New()
	adminID := uuid.New()

	t.Run("success admin overrides routing", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		l := pendingRequest(employeeID, recommenderID, approverID)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}
		deps.directory.getRoleFn = func(ctx context.Context, eid string) (string, error) {
			assert.Equal(t, adminID.String(), eid)
			return directory.RoleAdmin, nil
		}

		resp, err := deps.service.AdminApprove(ctx, adminID.String(), l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.Equal(t, 1, deps.joining.calls)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative non admin actor", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.directory.getRoleFn = func(ctx context.Context, eid string) (string, error) {
			return directory.RoleFaculty, nil
		}

		_, err := deps.service.AdminApprove(ctx, uuid.New().String(), uuid.New().String())

		assert.ErrorIs(t, err, leaveerrors.ErrForbiddenActor)
	})

	t.Run("negative terminal state", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		l := pendingRequest(employeeID, recommenderID, approverID)
		l.Status = leave.StatusRejected
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}
		deps.directory.getRoleFn = func(ctx context.Context, eid string) (string, error) {
			return directory.RoleAdmin, nil
		}

		_, err := deps.service.AdminApprove(ctx, adminID.String(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})
}

func TestLeaveService_Reject(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	recommenderID := uuid.New()
	approverID := uuid.New()

	t.Run("success approver rejects and releases reservation", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		l := pendingRequest(employeeID, recommenderID, approverID)
		l.Status = leave.StatusRecommended
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		var released decimal.Decimal
		deps.ledger.releaseDaysFn = func(ctx context.Context, eid, lt string, year int, days decimal.Decimal) (bool, error) {
			released = days
			return true, nil
		}

		resp, err := deps.service.Reject(ctx, approverID.String(), l.ID.String(), "quota needed elsewhere")

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.True(t, released.Equal(decimal.NewFromInt(3)))
		assert.NotNil(t, resp.Remarks)
		assert.Equal(t, "quota needed elsewhere", *resp.Remarks)
		assert.Equal(t, []string{"rejected"}, deps.trigger.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success recommender declines before approval", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		l := pendingRequest(employeeID, recommenderID, approverID)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		resp, err := deps.service.Reject(ctx, recommenderID.String(), l.ID.String(), "dates clash with exams")

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative remarks required", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Reject(ctx, approverID.String(), uuid.New().String(), "")

		assert.ErrorIs(t, err, leaveerrors.ErrRemarksRequired)
	})

	t.Run("negative employee cannot reject", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		l := pendingRequest(employeeID, recommenderID, approverID)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		_, err := deps.service.Reject(ctx, employeeID.String(), l.ID.String(), "changed my mind")

		assert.ErrorIs(t, err, leaveerrors.ErrForbiddenActor)
	})
}

func TestLeaveService_Return(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	recommenderID := uuid.New()
	approverID := uuid.New()

	t.Run("success returned is not terminal", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		l := pendingRequest(employeeID, recommenderID, approverID)
		l.Status = leave.StatusRecommended
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		releaseCalled := false
		deps.ledger.releaseDaysFn = func(ctx context.Context, eid, lt string, year int, days decimal.Decimal) (bool, error) {
			releaseCalled = true
			return true, nil
		}

		resp, err := deps.service.Return(ctx, approverID.String(), l.ID.String(), "attach medical certificate")

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusReturned, resp.Status)
		assert.True(t, releaseCalled)
		assert.Equal(t, []string{"returned"}, deps.trigger.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative only approver can return", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		l := pendingRequest(employeeID, recommenderID, approverID)
		l.Status = leave.StatusRecommended
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		_, err := deps.service.Return(ctx, recommenderID.String(), l.ID.String(), "fix dates")

		assert.ErrorIs(t, err, leaveerrors.ErrForbiddenActor)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	recommenderID := uuid.New()
	approverID := uuid.New()

	t.Run("success cancel pending releases reservation", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		l := pendingRequest(employeeID, recommenderID, approverID)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		releaseCalled := false
		deps.ledger.releaseDaysFn = func(ctx context.Context, eid, lt string, year int, days decimal.Decimal) (bool, error) {
			releaseCalled = true
			return true, nil
		}

		resp, err := deps.service.Cancel(ctx, employeeID.String(), l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.True(t, releaseCalled)
		assert.Equal(t, []string{"cancelled"}, deps.trigger.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative cancel after approval", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		l := pendingRequest(employeeID, recommenderID, approverID)
		l.Status = leave.StatusApproved
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		_, err := deps.service.Cancel(ctx, employeeID.String(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrNotCancellable)
	})

	t.Run("negative only applicant can cancel", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		l := pendingRequest(employeeID, recommenderID, approverID)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		_, err := deps.service.Cancel(ctx, approverID.String(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrForbiddenActor)
	})
}

func TestLeaveService_Resubmit(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	recommenderID := uuid.New()
	approverID := uuid.New()

	recommenderStr := recommenderID.String()
	approverStr := approverID.String()
	req := leave.SubmitLeaveRequest{
		LeaveType:     "CL",
		StartDate:     "2026-10-05",
		EndDate:       "2026-10-06",
		Session:       leave.SessionFullDay,
		Reason:        "Amended dates",
		RecommenderID: &recommenderStr,
		ApproverID:    &approverStr,
	}

	t.Run("success re-reserves and routes from the start", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		l := pendingRequest(employeeID, recommenderID, approverID)
		l.Status = leave.StatusReturned
		remarks := "attach medical certificate"
		l.Remarks = &remarks
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		deps.ledger.reserveFn = func(ctx context.Context, eid, lt string, year int, days decimal.Decimal) (bool, error) {
			assert.True(t, days.Equal(decimal.NewFromInt(2)))
			return true, nil
		}
		deps.repo.resubmitGuardedFn = func(ctx context.Context, got *leave.LeaveRequest) (bool, error) {
			assert.Equal(t, leave.StatusPendingRecommendation, got.Status)
			assert.Nil(t, got.Remarks)
			assert.Nil(t, got.DecidedBy)
			return true, nil
		}

		resp, err := deps.service.Resubmit(ctx, employeeID.String(), l.ID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPendingRecommendation, resp.Status)
		assert.Equal(t, "2026-10-05", resp.StartDate)
		assert.Equal(t, []string{"resubmitted"}, deps.trigger.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative not returned", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		l := pendingRequest(employeeID, recommenderID, approverID)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		_, err := deps.service.Resubmit(ctx, employeeID.String(), l.ID.String(), req)

		assert.ErrorIs(t, err, leaveerrors.ErrNotResubmittable)
	})

	t.Run("negative wrong actor", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		l := pendingRequest(employeeID, recommenderID, approverID)
		l.Status = leave.StatusReturned
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		}

		_, err := deps.service.Resubmit(ctx, approverID.String(), l.ID.String(), req)

		assert.ErrorIs(t, err, leaveerrors.ErrForbiddenActor)
	})
}

func TestLeaveService_ListIncoming(t *testing.T) {
	ctx := context.Background()
	reviewerID := uuid.New()

	t.Run("success splits queues by role", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		toRecommend := pendingRequest(uuid.New(), reviewerID, uuid.New())
		toApprove := pendingRequest(uuid.New(), uuid.New(), reviewerID)
		toApprove.Status = leave.StatusRecommended

		deps.repo.findIncomingForRecommenderFn = func(ctx context.Context, rid string) ([]leave.LeaveRequest, error) {
			assert.Equal(t, reviewerID.String(), rid)
			return []leave.LeaveRequest{*toRecommend}, nil
		}
		deps.repo.findIncomingForApproverFn = func(ctx context.Context, aid string) ([]leave.LeaveRequest, error) {
			return []leave.LeaveRequest{*toApprove}, nil
		}

		resp, err := deps.service.ListIncoming(ctx, reviewerID.String())

		assert.NoError(t, err)
		assert.Len(t, resp.ToRecommend, 1)
		assert.Len(t, resp.ToApprove, 1)
		assert.Equal(t, leave.StatusRecommended, resp.ToApprove[0].Status)
	})

	t.Run("negative repo error", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.repo.findIncomingForRecommenderFn = func(ctx context.Context, rid string) ([]leave.LeaveRequest, error) {
			return nil, errors.New("db error")
		}

		_, err := deps.service.ListIncoming(ctx, reviewerID.String())

		assert.Error(t, err)
	})
}
