package exporterrors

import (
	"net/http"

	"go-hrdesk/internal/shared/apperror"
)

var ErrUnknownTable = apperror.New(
	apperror.CodeInvalidInput,
	"table must be one of: payroll, attendance, exits",
	http.StatusBadRequest,
)
