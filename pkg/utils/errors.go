package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an AppError for the HTTP layer.
type ErrorCode string

const (
	CodeValidation ErrorCode = "VALIDATION"
	CodeNotFound   ErrorCode = "NOT_FOUND"
	CodeConflict   ErrorCode = "CONFLICT"
	CodeUpstream   ErrorCode = "UPSTREAM"
	CodeInternal   ErrorCode = "INTERNAL"
)

// HTTPStatus returns the status code sent to clients for the code.
// Upstream failures are reported as a plain 500, the provider status is never forwarded.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeValidation, CodeConflict:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AppError is the error type services return to handlers.
type AppError struct {
	Code    ErrorCode
	Message string
	Details any
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is matches any *AppError with the same code.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func (e *AppError) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// Sentinels for errors.Is checks.
var (
	ErrValidation = &AppError{Code: CodeValidation}
	ErrNotFound   = &AppError{Code: CodeNotFound}
	ErrConflict   = &AppError{Code: CodeConflict}
	ErrUpstream   = &AppError{Code: CodeUpstream}
	ErrInternal   = &AppError{Code: CodeInternal}
)

func ValidationError(message string, details any) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Details: details}
}

func NotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

func ConflictError(message string, cause error) *AppError {
	return &AppError{Code: CodeConflict, Message: message, cause: cause}
}

func UpstreamError(message string, cause error) *AppError {
	return &AppError{Code: CodeUpstream, Message: message, cause: cause}
}

func InternalError(message string, cause error) *AppError {
	return &AppError{Code: CodeInternal, Message: message, cause: cause}
}
