package joiningerrors

import (
	"net/http"

	"faculty-portal/internal/shared/apperror"
)

var (
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"no joining report exists for this leave request",
		http.StatusNotFound,
	)
	ErrAlreadySubmitted = apperror.New(
		apperror.CodeInvalidState,
		"the joining report has already been submitted",
		http.StatusConflict,
	)
	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid joining date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrForbiddenActor = apperror.New(
		apperror.CodeForbidden,
		"only the applicant can submit the joining report",
		http.StatusForbidden,
	)
)
