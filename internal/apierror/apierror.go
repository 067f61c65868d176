// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import "net/http"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Validatiefout", Fields: fields}
}

// Error is the typed error services return so handlers can translate it to a
// status code without string matching. Detail is the user-visible Dutch message.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func NewError(status int, detail string) *Error {
	return &Error{Status: status, Detail: detail}
}

func BadRequest(detail string) *Error   { return NewError(http.StatusBadRequest, detail) }
func Unauthorized(detail string) *Error { return NewError(http.StatusUnauthorized, detail) }
func Forbidden(detail string) *Error    { return NewError(http.StatusForbidden, detail) }
func NotFound(detail string) *Error     { return NewError(http.StatusNotFound, detail) }
func Conflict(detail string) *Error     { return NewError(http.StatusConflict, detail) }

// ErrInternal is the generic fallback for unexpected failures; the real cause
// is logged server-side, never returned to the client.
var ErrInternal = NewError(http.StatusInternalServerError,
	"Er is een onverwachte fout opgetreden, neem contact op met de beheerder")
