package autherrors

import (
	"net/http"

	"go-hrdesk/internal/shared/apperror"
)

var (
	// Unknown email, inactive account and wrong password all look the same.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"invalid email or password",
		http.StatusUnauthorized,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)

	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"email is already registered",
		http.StatusConflict,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"role must be one of: ADMIN, HR, VIEWER",
		http.StatusBadRequest,
	)

	ErrPasswordTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"password must be at least 8 characters",
		http.StatusBadRequest,
	)
)
