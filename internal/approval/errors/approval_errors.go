package approvalerrors

import (
	"net/http"

	"go-hrdesk/internal/shared/apperror"
)

var (
	ErrApprovalNotFound = apperror.New(
		apperror.CodeNotFound,
		"approval request not found",
		http.StatusNotFound,
	)
	// A decided request names who decided it.
	ErrApproverRequired = apperror.New(
		apperror.CodeValidationError,
		"Approved By is required once a request is approved or rejected",
		http.StatusBadRequest,
	)
)
