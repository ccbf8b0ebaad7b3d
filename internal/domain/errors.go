package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrNotAuthorized is returned when a caller is not in the admin set.
	ErrNotAuthorized = errors.New("not authorized")
)

// ValidationError reports malformed or missing input. It is raised before any
// collaborator call, so a failed validation has no side effects.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AuthError wraps a rejection from the identity provider, e.g. a duplicate
// email at sign-up. The message is surfaced to the user verbatim.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return e.Err.Error() }
func (e *AuthError) Unwrap() error { return e.Err }

// AuthorizationError reports a non-admin caller invoking an admin operation.
type AuthorizationError struct {
	CallerID string
}

func (e *AuthorizationError) Error() string { return "not authorized" }
func (e *AuthorizationError) Unwrap() error { return ErrNotAuthorized }

// UploadError wraps an object-store failure. An upload failure aborts the
// whole submission; nothing is recorded.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return fmt.Sprintf("upload failed: %v", e.Err) }
func (e *UploadError) Unwrap() error { return e.Err }

// PersistenceError wraps a rejected record write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }

// NotificationError wraps an email dispatch failure. It is logged and
// swallowed by callers: it must never undo a completed state transition.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string { return fmt.Sprintf("notification failed: %v", e.Err) }
func (e *NotificationError) Unwrap() error { return e.Err }
