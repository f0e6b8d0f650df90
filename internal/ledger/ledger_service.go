package ledger

import (
	"context"
	"errors"
	"strings"

	ledgererrors "faculty-portal/internal/ledger/errors"
	"faculty-portal/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var halfDayStep = decimal.NewFromFloat(0.5)

// ValidDayStep reports whether d is a positive amount on the half-day grid.
func ValidDayStep(d decimal.Decimal) bool {
	return d.IsPositive() && d.Mod(halfDayStep).IsZero()
}

//go:generate mockgen -source=ledger_service.go -destination=mock/ledger_service_mock.go -package=mock
type Service interface {
	GetAvailable(ctx context.Context, employeeID, leaveType string, year int) (decimal.Decimal, error)
	GetBalances(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error)
	Provision(ctx context.Context, req ProvisionBalanceRequest) (BalanceResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("ledger.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAvailable(ctx context.Context, employeeID, leaveType string, year int) (decimal.Decimal, error) {
	b, err := s.repo.Find(ctx, employeeID, leaveType, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, ledgererrors.ErrLedgerNotFound
		}
		return decimal.Zero, err
	}
	return b.Available(), nil
}

func (s *service) GetBalances(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error) {
	balances, err := s.repo.FindAllByEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	resp := make([]BalanceResponse, len(balances))
	for i, b := range balances {
		resp[i] = mapToBalanceResponse(b)
	}
	return resp, nil
}

// Provision seeds one ledger row. It is the entry point for the external
// fiscal-year rollover job; the workflow engine never creates rows itself.
func (s *service) Provision(ctx context.Context, req ProvisionBalanceRequest) (BalanceResponse, error) {
	entitled, err := decimal.NewFromString(req.Entitled)
	if err != nil {
		return BalanceResponse{}, ledgererrors.ErrInvalidEntitlement
	}
	if entitled.IsNegative() || !entitled.Mod(halfDayStep).IsZero() {
		return BalanceResponse{}, ledgererrors.ErrInvalidEntitlement
	}
	if !KnownType(req.LeaveType) {
		return BalanceResponse{}, ledgererrors.ErrInvalidEntitlement
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return BalanceResponse{}, apperror.InvalidField("Employee Id")
	}

	b := &LeaveBalance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		Year:       req.Year,
		Entitled:   entitled,
		Reserved:   decimal.Zero,
		Consumed:   decimal.Zero,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		s.logger.Error("provision balance persist failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("leave_type", req.LeaveType),
			zap.Int("year", req.Year),
			zap.Error(err),
		)
		return BalanceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("leave balance provisioned",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.Int("year", req.Year),
		zap.String("entitled", entitled.String()),
	)
	return mapToBalanceResponse(*b), nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_balance_employee_type_year" {
			return ledgererrors.ErrBalanceAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_balance_employee_type_year") {
		return ledgererrors.ErrBalanceAlreadyExists
	}

	return err
}

func mapToBalanceResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		EmployeeID: b.EmployeeID.String(),
		LeaveType:  b.LeaveType,
		Year:       b.Year,
		Entitled:   b.Entitled.String(),
		Reserved:   b.Reserved.String(),
		Consumed:   b.Consumed.String(),
		Available:  b.Available().String(),
	}
}
