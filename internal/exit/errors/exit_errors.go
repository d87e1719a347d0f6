package exiterrors

import (
	"net/http"

	"go-hrdesk/internal/shared/apperror"
)

var ErrExitNotFound = apperror.New(
	apperror.CodeNotFound,
	"exit record not found",
	http.StatusNotFound,
)
