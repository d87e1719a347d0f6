package attendanceerrors

import (
	"net/http"

	"go-hrdesk/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)
	ErrAlreadyRecorded = apperror.New(
		apperror.CodeConflict,
		"attendance already recorded for this employee and date",
		http.StatusConflict,
	)
	ErrLeaveWhilePresent = apperror.New(
		apperror.CodeInvalidInput,
		"Leave Type must be None when the employee is present",
		http.StatusBadRequest,
	)
)
