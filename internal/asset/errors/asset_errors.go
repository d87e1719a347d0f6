package asseterrors

import (
	"net/http"

	"go-hrdesk/internal/shared/apperror"
)

var ErrAssetNotFound = apperror.New(
	apperror.CodeNotFound,
	"asset request not found",
	http.StatusNotFound,
)
