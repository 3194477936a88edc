package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the authenticated user is not allowed to perform the action.
var ErrForbidden = errors.New("action forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrVersionConflict indicates an optimistic-concurrency failure: the row was
// modified since it was read and the version-checked write affected no rows.
// Callers must reload and retry; it is never retried internally.
var ErrVersionConflict = errors.New("document was modified concurrently")

// ErrInvalidTransition indicates a document status transition that is not in
// the legal transition table.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// InvalidTransitionError carries the offending (from, to) pair of a rejected
// status transition. It unwraps to ErrInvalidTransition so handlers can map it
// with errors.Is.
type InvalidTransitionError struct {
	From   string
	To     string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// NewInvalidTransitionError builds the error for a (from, to) pair rejected by
// the transition table.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionReason builds the error for transitions rejected by a
// guard with its own message, such as cancelling a non-cancellable document.
func NewInvalidTransitionReason(reason string) *InvalidTransitionError {
	return &InvalidTransitionError{Reason: reason}
}

// UnauthorizedActionError carries the reason an approve/reject/submit action
// was denied. It unwraps to ErrForbidden.
type UnauthorizedActionError struct {
	Reason string
}

func (e *UnauthorizedActionError) Error() string {
	return e.Reason
}

func (e *UnauthorizedActionError) Unwrap() error {
	return ErrForbidden
}

// NewUnauthorizedActionError builds an authorization failure with a
// human-readable reason.
func NewUnauthorizedActionError(reason string) *UnauthorizedActionError {
	return &UnauthorizedActionError{Reason: reason}
}

// AppError wraps a lower-level failure with an HTTP-ish status code and a
// message, mirroring how repository errors are surfaced to handlers.
type AppError struct {
	Code    int
	Message string
	Err     error
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

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that also matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
