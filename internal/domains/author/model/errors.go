package model

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAuthorNotFound     = errors.New("author not found")
	ErrInvalidBody        = errors.New("invalid request body")
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs), errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch ToHTTPStatus(err) {
	case http.StatusBadRequest:
		return "VALIDATION_ERROR"
	case http.StatusUnauthorized:
		return "INVALID_CREDENTIALS"
	case http.StatusNotFound:
		return "AUTHOR_NOT_FOUND"
	case http.StatusConflict:
		return "EMAIL_EXISTS"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
