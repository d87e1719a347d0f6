package dberror

import (
	"errors"
	"net/http"
	"strings"

	"go-hrdesk/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var (
	ErrDuplicate = apperror.New(
		apperror.CodeConflict,
		"record already exists",
		http.StatusConflict,
	)
	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"referenced record does not exist",
		http.StatusBadRequest,
	)
)

// Map converts a repository error into an AppError. notFound is returned for
// gorm.ErrRecordNotFound; AppErrors pass through untouched; anything else the
// store reports is surfaced as a wrapped internal error.
func Map(err error, notFound error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if notFound != nil {
			return notFound
		}
		return apperror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.Wrap(err, ErrDuplicate.Code, ErrDuplicate.Message, ErrDuplicate.HTTPStatus)
		case pgForeignKeyViolation:
			return apperror.Wrap(err, ErrInvalidReference.Code, ErrInvalidReference.Message, ErrInvalidReference.HTTPStatus)
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") {
		return apperror.Wrap(err, ErrDuplicate.Code, ErrDuplicate.Message, ErrDuplicate.HTTPStatus)
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "failed to access the data store", http.StatusInternalServerError)
}

// IsUniqueViolation reports whether err is a unique constraint failure,
// optionally restricted to a constraint name.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") && strings.Contains(msg, strings.ToLower(constraint))
}
