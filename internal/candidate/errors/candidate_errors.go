package candidateerrors

import (
	"net/http"

	"go-hrdesk/internal/shared/apperror"
)

var ErrCandidateNotFound = apperror.New(
	apperror.CodeNotFound,
	"candidate not found",
	http.StatusNotFound,
)
