package offererrors

import (
	"net/http"

	"go-hrdesk/internal/shared/apperror"
)

var ErrOfferNotFound = apperror.New(
	apperror.CodeNotFound,
	"offer not found",
	http.StatusNotFound,
)
