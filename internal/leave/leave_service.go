package leave

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"faculty-portal/internal/directory"
	"faculty-portal/internal/ledger"
	ledgererrors "faculty-portal/internal/ledger/errors"
	leaveerrors "faculty-portal/internal/leave/errors"
	"faculty-portal/internal/notification"
	"faculty-portal/internal/shared/contextutil"
	"faculty-portal/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const applicationCounterType = "leave_application"

// JoiningObligation is the post-approval hook. Satisfied by the joining
// repository; kept as a local interface so the dependency points one way.
type JoiningObligation interface {
	CreateOnApproval(ctx context.Context, tx *sql.Tx, leaveRequestID string) error
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveResponse, error)
	Resubmit(ctx context.Context, actorID, id string, req SubmitLeaveRequest) (LeaveResponse, error)
	Recommend(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Approve(ctx context.Context, actorID, id string) (LeaveResponse, error)
	AdminApprove(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actorID, id, remarks string) (LeaveResponse, error)
	Return(ctx context.Context, actorID, id, remarks string) (LeaveResponse, error)
	Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error)
	GetByID(ctx context.Context, actorID, id string) (LeaveResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListIncoming(ctx context.Context, actorID string) (IncomingResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	ledger    ledger.Repository
	joining   JoiningObligation
	counter   counter.Repository
	directory directory.Service
	trigger   notification.Trigger
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	ledgerRepo ledger.Repository,
	joining JoiningObligation,
	counterRepo counter.Repository,
	directoryService directory.Service,
	trigger notification.Trigger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if trigger == nil {
		trigger = notification.NoopTrigger{}
	}
	return &service{
		db:        db,
		repo:      repo,
		ledger:    ledgerRepo,
		joining:   joining,
		counter:   counterRepo,
		directory: directoryService,
		trigger:   trigger,
		logger:    l,
	}
}

type validatedSubmission struct {
	leaveType     string
	startDate     time.Time
	endDate       time.Time
	session       string
	totalDays     decimal.Decimal
	recommenderID *uuid.UUID
	approverID    *uuid.UUID
	substituteID  *uuid.UUID
}

// Submit validates the application, reserves balance and persists the
// request in one transaction. Nothing is created when any step fails.
func (s *service) Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	v, err := validateSubmission(req)
	if err != nil {
		s.logger.Warn("submit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	year := v.startDate.Year()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	lqtx := s.ledger.WithTx(tx)

	reserved, err := lqtx.Reserve(ctx, employeeID, v.leaveType, year, v.totalDays)
	if err != nil {
		s.logger.Error("submit leave reserve failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !reserved {
		return LeaveResponse{}, s.classifyReserveFailure(ctx, employeeID, v.leaveType, year)
	}

	seq, err := s.counter.GetNextValue(ctx, strconv.Itoa(year), applicationCounterType)
	if err != nil {
		s.logger.Error("submit leave application number failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	l := &LeaveRequest{
		ID:            uuid.New(),
		ApplicationNo: fmt.Sprintf("LV-%d-%06d", year, seq),
		EmployeeID:    employeeUUID,
		LeaveType:     v.leaveType,
		StartDate:     v.startDate,
		EndDate:       v.endDate,
		Session:       v.session,
		TotalDays:     v.totalDays,
		Reason:        req.Reason,
		AttachmentRef: req.AttachmentRef,
		RecommenderID: v.recommenderID,
		ApproverID:    v.approverID,
		SubstituteID:  v.substituteID,
		Status:        StatusPendingRecommendation,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave submitted",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("application_no", l.ApplicationNo),
		zap.String("total_days", l.TotalDays.String()),
	)
	s.trigger.OnSubmitted(ctx, snapshot(*l, employeeID))

	return mapToResponse(*l), nil
}

// Resubmit amends a returned request and routes it again from the start,
// re-reserving balance against current availability.
func (s *service) Resubmit(ctx context.Context, actorID, id string, req SubmitLeaveRequest) (LeaveResponse, error) {
	l, err := s.findForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if actorID != l.EmployeeID.String() {
		return LeaveResponse{}, leaveerrors.ErrForbiddenActor
	}
	if l.Status != StatusReturned {
		return LeaveResponse{}, leaveerrors.ErrNotResubmittable
	}

	v, err := validateSubmission(req)
	if err != nil {
		s.logger.Warn("resubmit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	year := v.startDate.Year()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	lqtx := s.ledger.WithTx(tx)

	reserved, err := lqtx.Reserve(ctx, actorID, v.leaveType, year, v.totalDays)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !reserved {
		return LeaveResponse{}, s.classifyReserveFailure(ctx, actorID, v.leaveType, year)
	}

	l.LeaveType = v.leaveType
	l.StartDate = v.startDate
	l.EndDate = v.endDate
	l.Session = v.session
	l.TotalDays = v.totalDays
	l.Reason = req.Reason
	l.AttachmentRef = req.AttachmentRef
	l.RecommenderID = v.recommenderID
	l.ApproverID = v.approverID
	l.SubstituteID = v.substituteID
	l.Status = StatusPendingRecommendation
	l.Remarks = nil
	l.DecidedBy = nil
	l.DecidedAt = nil

	applied, err := qtx.ResubmitGuarded(ctx, l)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !applied {
		return LeaveResponse{}, leaveerrors.ErrStaleState
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave resubmitted",
		zap.String("leave_id", l.ID.String()),
		zap.String("application_no", l.ApplicationNo),
	)
	s.trigger.OnResubmitted(ctx, snapshot(*l, actorID))

	return mapToResponse(*l), nil
}

func (s *service) Recommend(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	l, err := s.findForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.RecommenderID == nil || actorID != l.RecommenderID.String() {
		return LeaveResponse{}, leaveerrors.ErrForbiddenActor
	}
	if l.Status != StatusPendingRecommendation {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	l.Status = StatusRecommended
	if err := s.applyTransition(ctx, l, StatusPendingRecommendation, ledgerNone, actorID); err != nil {
		return LeaveResponse{}, err
	}

	s.trigger.OnRecommended(ctx, snapshot(*l, actorID))
	return mapToResponse(*l), nil
}

func (s *service) Approve(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	l, err := s.findForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.ApproverID == nil || actorID != l.ApproverID.String() {
		return LeaveResponse{}, leaveerrors.ErrForbiddenActor
	}
	if !approverActionable(l) {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	return s.finalizeApproval(ctx, l, actorID)
}

// AdminApprove is the explicit admin-override transition: an admin-role
// actor may approve regardless of the assigned routing.
func (s *service) AdminApprove(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	role, err := s.directory.GetRole(ctx, actorID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if role != directory.RoleAdmin {
		return LeaveResponse{}, leaveerrors.ErrForbiddenActor
	}

	l, err := s.findForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.Status != StatusPendingRecommendation && l.Status != StatusRecommended {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	s.logger.Info("admin override approval",
		zap.String("leave_id", l.ID.String()),
		zap.String("admin_id", actorID),
	)
	return s.finalizeApproval(ctx, l, actorID)
}

func (s *service) finalizeApproval(ctx context.Context, l *LeaveRequest, actorID string) (LeaveResponse, error) {
	expected := l.Status
	now := time.Now().UTC()
	decidedBy := uuid.MustParse(actorID)
	l.Status = StatusApproved
	l.DecidedBy = &decidedBy
	l.DecidedAt = &now

	if err := s.applyTransition(ctx, l, expected, ledgerCommit, actorID); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave approved",
		zap.String("leave_id", l.ID.String()),
		zap.String("application_no", l.ApplicationNo),
		zap.String("decided_by", actorID),
	)
	s.trigger.OnApproved(ctx, snapshot(*l, actorID))
	return mapToResponse(*l), nil
}

func (s *service) Reject(ctx context.Context, actorID, id, remarks string) (LeaveResponse, error) {
	if remarks == "" {
		return LeaveResponse{}, leaveerrors.ErrRemarksRequired
	}

	l, err := s.findForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	switch {
	case l.Status == StatusPendingRecommendation && l.RecommenderID != nil && actorID == l.RecommenderID.String():
		// recommender declines before it ever reaches the approver
	case approverActionable(l) && l.ApproverID != nil && actorID == l.ApproverID.String():
		// approver declines
	case l.RecommenderID != nil && actorID == l.RecommenderID.String(),
		l.ApproverID != nil && actorID == l.ApproverID.String():
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	default:
		return LeaveResponse{}, leaveerrors.ErrForbiddenActor
	}

	expected := l.Status
	now := time.Now().UTC()
	decidedBy := uuid.MustParse(actorID)
	l.Status = StatusRejected
	l.Remarks = &remarks
	l.DecidedBy = &decidedBy
	l.DecidedAt = &now

	if err := s.applyTransition(ctx, l, expected, ledgerRelease, actorID); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave rejected",
		zap.String("leave_id", l.ID.String()),
		zap.String("decided_by", actorID),
	)
	s.trigger.OnRejected(ctx, snapshot(*l, actorID))
	return mapToResponse(*l), nil
}

// Return sends the request back to the employee; the reservation is
// released and taken again on resubmission.
func (s *service) Return(ctx context.Context, actorID, id, remarks string) (LeaveResponse, error) {
	if remarks == "" {
		return LeaveResponse{}, leaveerrors.ErrRemarksRequired
	}

	l, err := s.findForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.ApproverID == nil || actorID != l.ApproverID.String() {
		return LeaveResponse{}, leaveerrors.ErrForbiddenActor
	}
	if !approverActionable(l) {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	expected := l.Status
	now := time.Now().UTC()
	decidedBy := uuid.MustParse(actorID)
	l.Status = StatusReturned
	l.Remarks = &remarks
	l.DecidedBy = &decidedBy
	l.DecidedAt = &now

	if err := s.applyTransition(ctx, l, expected, ledgerRelease, actorID); err != nil {
		return LeaveResponse{}, err
	}

	s.trigger.OnReturned(ctx, snapshot(*l, actorID))
	return mapToResponse(*l), nil
}

// Cancel lets the employee withdraw a request that has not been decided.
// Recorded as a rejection decided by the employee, releasing the hold.
func (s *service) Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	l, err := s.findForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if actorID != l.EmployeeID.String() {
		return LeaveResponse{}, leaveerrors.ErrForbiddenActor
	}
	if l.Status != StatusPendingRecommendation && l.Status != StatusRecommended {
		return LeaveResponse{}, leaveerrors.ErrNotCancellable
	}

	expected := l.Status
	now := time.Now().UTC()
	decidedBy := l.EmployeeID
	remarks := "cancelled by applicant"
	l.Status = StatusRejected
	l.Remarks = &remarks
	l.DecidedBy = &decidedBy
	l.DecidedAt = &now

	if err := s.applyTransition(ctx, l, expected, ledgerRelease, actorID); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave cancelled",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", actorID),
	)
	s.trigger.OnCancelled(ctx, snapshot(*l, actorID))
	return mapToResponse(*l), nil
}

func (s *service) GetByID(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	l, err := s.findForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !isParty(l, actorID) {
		role, err := s.directory.GetRole(ctx, actorID)
		if err != nil || role != directory.RoleAdmin {
			return LeaveResponse{}, leaveerrors.ErrForbiddenActor
		}
	}
	return mapToResponse(*l), nil
}

func (s *service) ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	requests, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

// ListIncoming returns the actor's review queues via the role-column
// lookups, one per role the actor may hold.
func (s *service) ListIncoming(ctx context.Context, actorID string) (IncomingResponse, error) {
	toRecommend, err := s.repo.FindIncomingForRecommender(ctx, actorID)
	if err != nil {
		return IncomingResponse{}, err
	}
	toApprove, err := s.repo.FindIncomingForApprover(ctx, actorID)
	if err != nil {
		return IncomingResponse{}, err
	}
	return IncomingResponse{
		ToRecommend: mapToListResponse(toRecommend),
		ToApprove:   mapToListResponse(toApprove),
	}, nil
}

type ledgerAction int

const (
	ledgerNone ledgerAction = iota
	ledgerCommit
	ledgerRelease
)

// applyTransition writes the status change and its ledger side effect in
// one transaction. The guarded update is the optimistic-concurrency check;
// losing it surfaces StaleState with nothing applied.
func (s *service) applyTransition(ctx context.Context, l *LeaveRequest, expectedStatus string, action ledgerAction, actorID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	applied, err := qtx.UpdateStatusGuarded(ctx, l, expectedStatus)
	if err != nil {
		s.logger.Error("transition persist failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
		return err
	}
	if !applied {
		s.logger.Warn("transition lost optimistic check",
			zap.String("leave_id", l.ID.String()),
			zap.String("expected_status", expectedStatus),
			zap.String("target_status", l.Status),
			zap.String("actor_id", actorID),
		)
		return leaveerrors.ErrStaleState
	}

	if action != ledgerNone {
		lqtx := s.ledger.WithTx(tx)
		employeeID := l.EmployeeID.String()

		var settled bool
		switch action {
		case ledgerCommit:
			settled, err = lqtx.CommitDays(ctx, employeeID, l.LeaveType, l.Year(), l.TotalDays)
		case ledgerRelease:
			settled, err = lqtx.ReleaseDays(ctx, employeeID, l.LeaveType, l.Year(), l.TotalDays)
		}
		if err != nil {
			s.logger.Error("transition ledger side effect failed",
				zap.String("leave_id", l.ID.String()),
				zap.Error(err),
			)
			return err
		}
		if !settled {
			s.logger.Error("transition ledger reservation underflow",
				zap.String("leave_id", l.ID.String()),
				zap.String("total_days", l.TotalDays.String()),
			)
			return ledgererrors.ErrReservationUnderflow
		}
	}

	if l.Status == StatusApproved {
		if err := s.joining.CreateOnApproval(ctx, tx, l.ID.String()); err != nil {
			s.logger.Error("create joining obligation failed",
				zap.String("leave_id", l.ID.String()),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("transition commit failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) findForUpdate(ctx context.Context, id string) (*LeaveRequest, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	return l, nil
}

// classifyReserveFailure tells a missing ledger row apart from an
// exhausted one after a guarded reserve matched nothing.
func (s *service) classifyReserveFailure(ctx context.Context, employeeID, leaveType string, year int) error {
	exists, err := s.ledger.Exists(ctx, employeeID, leaveType, year)
	if err != nil {
		return err
	}
	if !exists {
		return ledgererrors.ErrLedgerNotFound
	}
	return ledgererrors.ErrInsufficientBalance
}

// approverActionable covers both the recommended state and the
// skip-recommendation case where no recommender was assigned.
func approverActionable(l *LeaveRequest) bool {
	if l.Status == StatusRecommended {
		return true
	}
	return l.Status == StatusPendingRecommendation && l.RecommenderID == nil
}

func isParty(l *LeaveRequest, actorID string) bool {
	if actorID == l.EmployeeID.String() {
		return true
	}
	if l.RecommenderID != nil && actorID == l.RecommenderID.String() {
		return true
	}
	if l.ApproverID != nil && actorID == l.ApproverID.String() {
		return true
	}
	return false
}

func validateSubmission(req SubmitLeaveRequest) (validatedSubmission, error) {
	var v validatedSubmission

	if !ledger.KnownType(req.LeaveType) {
		return v, leaveerrors.ErrUnknownLeaveType
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return v, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return v, err
	}
	if startDate.After(endDate) {
		return v, leaveerrors.ErrInvalidDateRange
	}

	var totalDays decimal.Decimal
	switch {
	case req.Session == SessionFullDay:
		totalDays = decimal.NewFromInt(int64(endDate.Sub(startDate).Hours()/24) + 1)
	case IsHalfDay(req.Session):
		if !startDate.Equal(endDate) {
			return v, leaveerrors.ErrHalfDaySpansDays
		}
		totalDays = decimal.NewFromFloat(0.5)
	default:
		return v, leaveerrors.ErrInvalidSession
	}

	recommenderID, err := parseOptionalID(req.RecommenderID)
	if err != nil {
		return v, err
	}
	approverID, err := parseOptionalID(req.ApproverID)
	if err != nil {
		return v, err
	}
	substituteID, err := parseOptionalID(req.SubstituteID)
	if err != nil {
		return v, err
	}

	v.leaveType = req.LeaveType
	v.startDate = startDate
	v.endDate = endDate
	v.session = req.Session
	v.totalDays = totalDays
	v.recommenderID = recommenderID
	v.approverID = approverID
	v.substituteID = substituteID
	return v, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func parseOptionalID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, leaveerrors.ErrInvalidRoutingID
	}
	return &id, nil
}

func snapshot(l LeaveRequest, actorID string) notification.Snapshot {
	snap := notification.Snapshot{
		LeaveRequestID: l.ID.String(),
		ApplicationNo:  l.ApplicationNo,
		EmployeeID:     l.EmployeeID.String(),
		ActorID:        actorID,
		LeaveType:      l.LeaveType,
		Status:         l.Status,
		StartDate:      l.StartDate.Format("2006-01-02"),
		EndDate:        l.EndDate.Format("2006-01-02"),
		TotalDays:      l.TotalDays.String(),
	}
	if l.Remarks != nil {
		snap.Remarks = *l.Remarks
	}
	return snap
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:            l.ID.String(),
		ApplicationNo: l.ApplicationNo,
		EmployeeID:    l.EmployeeID.String(),
		LeaveType:     l.LeaveType,
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		Session:       l.Session,
		TotalDays:     l.TotalDays.String(),
		Reason:        l.Reason,
		AttachmentRef: l.AttachmentRef,
		Status:        l.Status,
		Remarks:       l.Remarks,
	}
	if l.RecommenderID != nil {
		v := l.RecommenderID.String()
		resp.RecommenderID = &v
	}
	if l.ApproverID != nil {
		v := l.ApproverID.String()
		resp.ApproverID = &v
	}
	if l.SubstituteID != nil {
		v := l.SubstituteID.String()
		resp.SubstituteID = &v
	}
	if l.DecidedBy != nil {
		v := l.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(requests []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(requests))
	for i, l := range requests {
		resp[i] = mapToResponse(l)
	}
	return resp
}
