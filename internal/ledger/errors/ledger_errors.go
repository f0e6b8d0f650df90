package ledgererrors

import (
	"net/http"

	"faculty-portal/internal/shared/apperror"
)

var (
	ErrLedgerNotFound = apperror.New(
		apperror.CodeNotFound,
		"no leave balance provisioned for this employee, leave type and year",
		http.StatusNotFound,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeConflict,
		"insufficient leave balance for the requested days",
		http.StatusConflict,
	)
	ErrInvalidDays = apperror.New(
		apperror.CodeInvalidInput,
		"days must be positive in steps of 0.5",
		http.StatusBadRequest,
	)
	ErrReservationUnderflow = apperror.New(
		apperror.CodeInvalidState,
		"ledger reservation is smaller than the days being settled",
		http.StatusConflict,
	)
	ErrBalanceAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"leave balance already provisioned for this employee, leave type and year",
		http.StatusConflict,
	)
	ErrInvalidEntitlement = apperror.New(
		apperror.CodeInvalidInput,
		"entitled days must be non-negative in steps of 0.5",
		http.StatusBadRequest,
	)
)
