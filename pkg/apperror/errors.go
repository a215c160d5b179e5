package apperror

import (
	"errors"
	"net/http"

	"github.com/pressroom/pressroom/internal/domain"
)

type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	ErrBadRequest     = &AppError{Code: "BAD_REQUEST", Message: "Bad request", Status: http.StatusBadRequest}
	ErrUnauthorized   = &AppError{Code: "UNAUTHORIZED", Message: "Unauthorized", Status: http.StatusUnauthorized}
	ErrForbidden      = &AppError{Code: "FORBIDDEN", Message: "Forbidden", Status: http.StatusForbidden}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Not found", Status: http.StatusNotFound}
	ErrConflict       = &AppError{Code: "CONFLICT", Message: "Conflict", Status: http.StatusConflict}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "Internal server error", Status: http.StatusInternalServerError}
)

func NewValidation(message string) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: message, Status: http.StatusUnprocessableEntity}
}

func NewInvalidTransition(message string) *AppError {
	return &AppError{Code: "INVALID_TRANSITION", Message: message, Status: http.StatusConflict}
}

func NewForbidden(message string) *AppError {
	return &AppError{Code: "FORBIDDEN", Message: message, Status: http.StatusForbidden}
}

func NewNotFound(message string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: message, Status: http.StatusNotFound}
}

func NewConflict(message string) *AppError {
	return &AppError{Code: "CONFLICT", Message: message, Status: http.StatusConflict}
}

func NewUpstream(message string) *AppError {
	return &AppError{Code: "UPSTREAM_FAILURE", Message: message, Status: http.StatusBadGateway}
}

// MapError translates domain sentinels into the HTTP-facing taxonomy.
// Anything unrecognized is reported as an internal error without leaking
// detail to the client.
func MapError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrArticleNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		return NewNotFound(err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		return NewInvalidTransition(err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return NewForbidden(err.Error())
	case errors.Is(err, domain.ErrStaleArticle):
		return NewConflict(err.Error())
	case errors.Is(err, domain.ErrDuplicateCategory),
		errors.Is(err, domain.ErrDuplicateEmail):
		return NewConflict(err.Error())
	default:
		return ErrInternalServer
	}
}
