package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors used by the repository layer. Services wrap these into
// AppError values carrying the HTTP mapping.
var (
	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")

	// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
	ErrDuplicate = errors.New("resource already exists")

	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates a valid identity with insufficient ownership.
	ErrForbidden = errors.New("forbidden")
)

// AppError is the single error type that crosses the service boundary.
// Code is the HTTP status the API surface maps this failure to; handlers
// never invent their own status logic beyond this mapping.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
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

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates a 400 error for bad input shape or content.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewUnauthorizedError creates a 401 error for missing/invalid/expired tokens.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}

// NewForbiddenError creates a 403 error for ownership violations.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

// NewNotFoundError creates a 404 error for absent resources.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError creates a 409 error, e.g. duplicate email on signup.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// NewUnsupportedMediaError creates a 415 error for disallowed upload types.
func NewUnsupportedMediaError(message string) *AppError {
	return &AppError{Code: http.StatusUnsupportedMediaType, Message: message, Err: ErrValidation}
}

// NewPayloadTooLargeError creates a 413 error for oversize uploads.
func NewPayloadTooLargeError(message string) *AppError {
	return &AppError{Code: http.StatusRequestEntityTooLarge, Message: message, Err: ErrValidation}
}

// NewUploadFailedError creates a 502 error for blob storage transport failures.
func NewUploadFailedError(message string, err error) *AppError {
	return &AppError{Code: http.StatusBadGateway, Message: message, Err: err}
}

// NewInternalServerError creates a 500 error for unclassified failures.
func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}
