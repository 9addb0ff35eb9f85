package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

const (
	ErrCodeInvalidCredentials ErrorCode = iota + 1000
	ErrCodeDuplicateEmail
	ErrCodeInvalidToken
	ErrCodeExpiredToken
	ErrCodeNotAssigned
	ErrCodeNotFound
	ErrCodeValidation
	ErrCodeInternal
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error code to its client-facing HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case ErrCodeInvalidCredentials, ErrCodeInvalidToken, ErrCodeExpiredToken:
		return http.StatusUnauthorized
	case ErrCodeNotAssigned:
		return http.StatusForbidden
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeDuplicateEmail:
		return http.StatusConflict
	case ErrCodeValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Is lets errors.Is match two AppErrors by code, so services can wrap
// sentinel values and handlers still recognize them.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for the authorization core
var (
	ErrInvalidCredentials = &AppError{Code: ErrCodeInvalidCredentials, Message: "invalid credentials"}
	ErrDuplicateEmail     = &AppError{Code: ErrCodeDuplicateEmail, Message: "email already registered"}
	ErrInvalidToken       = &AppError{Code: ErrCodeInvalidToken, Message: "invalid token"}
	ErrExpiredToken       = &AppError{Code: ErrCodeExpiredToken, Message: "token expired"}
	ErrNotAssigned        = &AppError{Code: ErrCodeNotAssigned, Message: "doctor is not assigned to this patient"}
)

// Error constructors
func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Err:     err,
	}
}
