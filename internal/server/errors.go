package server

import (
	"errors"
	"net/http"
)

// Sentinel errors for request handling. HTTPStatus maps them to response
// codes so handlers can return errors without picking status codes inline.
var (
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUserNotFound           = errors.New("user not found")
	ErrResumeNotAnalyzed      = errors.New("resume has not been analyzed yet")
	ErrValidation             = errors.New("validation failed")
)

// HTTPStatus returns the HTTP status code for a known error, or 500 for
// anything unrecognized.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmailAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrResumeNotAnalyzed):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
