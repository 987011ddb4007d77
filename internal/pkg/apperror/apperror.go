package apperror

import "net/http"

// Kind classifies an error so callers can branch on the failure class
// without parsing messages.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindInvalidState Kind = "invalid_state"
	KindInvalidInput Kind = "invalid_input"
	KindConflict     Kind = "conflict"
)

// AppError is a custom error type that carries an error kind, the HTTP
// status code it maps to, and a user-facing message.
type AppError struct {
	Kind    Kind
	Code    int    // HTTP Status Code (e.g., 400, 404)
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with an explicit kind and status code.
func New(kind Kind, code int, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, kind Kind, code int, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound reports that a referenced entity does not exist.
func NotFound(message string) *AppError {
	return New(KindNotFound, http.StatusNotFound, message)
}

// Unauthorized reports that the acting user may not perform the operation.
func Unauthorized(message string) *AppError {
	return New(KindUnauthorized, http.StatusForbidden, message)
}

// InvalidState reports a forbidden lifecycle transition or an unknown
// state-filter token.
func InvalidState(message string) *AppError {
	return New(KindInvalidState, http.StatusBadRequest, message)
}

// InvalidInput reports a validation failure detected before any write.
func InvalidInput(message string) *AppError {
	return New(KindInvalidInput, http.StatusBadRequest, message)
}

// Conflict reports a uniqueness or referential-integrity violation.
func Conflict(message string) *AppError {
	return New(KindConflict, http.StatusConflict, message)
}
