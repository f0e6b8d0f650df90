package joining

import (
	"context"
	"database/sql"
	"errors"
	"time"

	joiningerrors "faculty-portal/internal/joining/errors"
	"faculty-portal/internal/leave"
	leaveerrors "faculty-portal/internal/leave/errors"
	"faculty-portal/internal/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=joining_service.go -destination=mock/joining_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actorID, leaveRequestID string, req SubmitJoiningRequest) (JoiningResponse, error)
	GetByLeaveRequest(ctx context.Context, actorID, leaveRequestID string) (JoiningResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	leaveRepo leave.Repository
	trigger   notification.Trigger
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	leaveRepo leave.Repository,
	trigger notification.Trigger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("joining.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("joining.service")
	}
	if trigger == nil {
		trigger = notification.NoopTrigger{}
	}
	return &service{db: db, repo: repo, leaveRepo: leaveRepo, trigger: trigger, logger: l}
}

// Submit closes the joining obligation and moves the parent request from
// APPROVED to JOINED. Both writes share one transaction.
func (s *service) Submit(ctx context.Context, actorID, leaveRequestID string, req SubmitJoiningRequest) (JoiningResponse, error) {
	l, err := s.findLeave(ctx, leaveRequestID)
	if err != nil {
		return JoiningResponse{}, err
	}
	if actorID != l.EmployeeID.String() {
		return JoiningResponse{}, joiningerrors.ErrForbiddenActor
	}

	switch l.Status {
	case leave.StatusApproved:
	case leave.StatusJoined:
		return JoiningResponse{}, joiningerrors.ErrAlreadySubmitted
	default:
		return JoiningResponse{}, joiningerrors.ErrReportNotFound
	}

	// joining before the scheduled end date is legitimate (early return),
	// so only the date format is validated here
	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return JoiningResponse{}, joiningerrors.ErrInvalidJoiningDate
	}

	var reportRef *string
	if req.ReportRef != "" {
		reportRef = &req.ReportRef
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit joining begin tx failed", zap.Error(err))
		return JoiningResponse{}, err
	}
	defer tx.Rollback()

	jqtx := s.repo.WithTx(tx)
	lqtx := s.leaveRepo.WithTx(tx)

	submitted, err := jqtx.SubmitGuarded(ctx, leaveRequestID, joiningDate, reportRef)
	if err != nil {
		s.logger.Error("submit joining persist failed", zap.Error(err))
		return JoiningResponse{}, err
	}
	if !submitted {
		return JoiningResponse{}, joiningerrors.ErrAlreadySubmitted
	}

	// only the status moves; decided_by/decided_at keep recording the
	// approval outcome on the retained row
	l.Status = leave.StatusJoined

	applied, err := lqtx.UpdateStatusGuarded(ctx, l, leave.StatusApproved)
	if err != nil {
		s.logger.Error("submit joining close leave failed", zap.Error(err))
		return JoiningResponse{}, err
	}
	if !applied {
		return JoiningResponse{}, leaveerrors.ErrStaleState
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit joining commit failed", zap.Error(err))
		return JoiningResponse{}, err
	}

	s.logger.Info("joining report submitted",
		zap.String("leave_id", leaveRequestID),
		zap.String("application_no", l.ApplicationNo),
		zap.String("joining_date", req.JoiningDate),
	)
	s.trigger.OnJoined(ctx, notification.Snapshot{
		LeaveRequestID: l.ID.String(),
		ApplicationNo:  l.ApplicationNo,
		EmployeeID:     l.EmployeeID.String(),
		ActorID:        actorID,
		LeaveType:      l.LeaveType,
		Status:         l.Status,
		StartDate:      l.StartDate.Format("2006-01-02"),
		EndDate:        l.EndDate.Format("2006-01-02"),
		TotalDays:      l.TotalDays.String(),
	})

	report, err := s.repo.FindByLeaveRequestID(ctx, leaveRequestID)
	if err != nil {
		// the write committed, so serve the response from what we know
		return JoiningResponse{
			LeaveRequestID: leaveRequestID,
			Status:         StatusSubmitted,
			JoiningDate:    &req.JoiningDate,
			ReportRef:      reportRef,
		}, nil
	}
	return mapToResponse(*report), nil
}

func (s *service) GetByLeaveRequest(ctx context.Context, actorID, leaveRequestID string) (JoiningResponse, error) {
	l, err := s.findLeave(ctx, leaveRequestID)
	if err != nil {
		return JoiningResponse{}, err
	}
	if !isParty(l, actorID) {
		return JoiningResponse{}, joiningerrors.ErrForbiddenActor
	}

	report, err := s.repo.FindByLeaveRequestID(ctx, leaveRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JoiningResponse{}, joiningerrors.ErrReportNotFound
		}
		return JoiningResponse{}, err
	}
	return mapToResponse(*report), nil
}

func (s *service) findLeave(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	l, err := s.leaveRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	return l, nil
}

func isParty(l *leave.LeaveRequest, actorID string) bool {
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

func mapToResponse(report JoiningReport) JoiningResponse {
	resp := JoiningResponse{
		ID:             report.ID.String(),
		LeaveRequestID: report.LeaveRequestID.String(),
		Status:         report.Status,
		ReportRef:      report.ReportRef,
	}
	if report.JoiningDate != nil {
		v := report.JoiningDate.Format("2006-01-02")
		resp.JoiningDate = &v
	}
	if report.SubmittedAt != nil {
		v := report.SubmittedAt.Format(time.RFC3339)
		resp.SubmittedAt = &v
	}
	return resp
}
