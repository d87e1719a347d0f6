// Package formfield holds the checks every HR form applies to its inputs.
package formfield

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-hrdesk/internal/shared/apperror"
)

const DateLayout = "2006-01-02"

const (
	MinRating = 1
	MaxRating = 5
)

// Required trims v and rejects an empty result.
func Required(label, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", apperror.RequiredField(label)
	}
	return v, nil
}

func Date(label, v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("%s must be a date in YYYY-MM-DD format", label),
			http.StatusBadRequest,
		)
	}
	return t, nil
}

// OneOf requires v to match one of allowed exactly.
func OneOf(label, v string, allowed []string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("%s must be one of: %s", label, strings.Join(allowed, ", ")),
		http.StatusBadRequest,
	)
}

func Rating(label string, v int) error {
	if v < MinRating || v > MaxRating {
		return apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("%s must be between %d and %d", label, MinRating, MaxRating),
			http.StatusBadRequest,
		)
	}
	return nil
}
