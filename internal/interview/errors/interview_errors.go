package interviewerrors

import (
	"net/http"

	"go-hrdesk/internal/shared/apperror"
)

var (
	ErrInterviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"interview not found",
		http.StatusNotFound,
	)
	ErrCandidateNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"candidate does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidCandidateID = apperror.New(
		apperror.CodeInvalidInput,
		"candidate_id must be a positive integer",
		http.StatusBadRequest,
	)
)
