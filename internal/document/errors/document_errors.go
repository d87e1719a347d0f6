package documenterrors

import (
	"net/http"

	"go-hrdesk/internal/shared/apperror"
)

var (
	ErrDocumentNotFound = apperror.New(
		apperror.CodeNotFound,
		"document not found",
		http.StatusNotFound,
	)

	ErrFileRequired = apperror.New(
		apperror.CodeValidationError,
		"File is required",
		http.StatusBadRequest,
	)

	ErrInvalidFileName = apperror.New(
		apperror.CodeInvalidInput,
		"file name is invalid",
		http.StatusBadRequest,
	)

	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"file exceeds the 32MB upload limit",
		http.StatusRequestEntityTooLarge,
	)
)
