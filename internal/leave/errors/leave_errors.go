package leaveerrors

import (
	"net/http"

	"faculty-portal/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidRoutingID = apperror.New(
		apperror.CodeInvalidInput,
		"recommender, approver and substitute ids must be valid employee ids",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrUnknownLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"unknown leave type, expected one of CL, SL, EL, RH",
		http.StatusBadRequest,
	)
	ErrInvalidSession = apperror.New(
		apperror.CodeInvalidInput,
		"invalid session, expected FULL_DAY, HALF_DAY_MORNING or HALF_DAY_AFTERNOON",
		http.StatusBadRequest,
	)
	ErrHalfDaySpansDays = apperror.New(
		apperror.CodeInvalidInput,
		"a half-day leave must start and end on the same date",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrForbiddenActor = apperror.New(
		apperror.CodeForbidden,
		"you are not authorized to act on this leave request",
		http.StatusForbidden,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"the leave request is not in a state that allows this action",
		http.StatusBadRequest,
	)
	ErrNotCancellable = apperror.New(
		apperror.CodeInvalidState,
		"only requests pending recommendation or approval can be cancelled",
		http.StatusBadRequest,
	)
	ErrNotResubmittable = apperror.New(
		apperror.CodeInvalidState,
		"only returned requests can be resubmitted",
		http.StatusBadRequest,
	)
	ErrRemarksRequired = apperror.New(
		apperror.CodeInvalidInput,
		"remarks are required when rejecting or returning a request",
		http.StatusBadRequest,
	)
	ErrStaleState = apperror.New(
		apperror.CodeConflict,
		"the leave request changed concurrently, refetch and retry",
		http.StatusConflict,
	)
)
