package errors

import (
	"errors"
	"fmt"
)

// Error is a request-local rejection with a machine-readable reason.
// None of them are fatal; they map onto a rejected operation.
type Error struct {
	Reason  string
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(reason, msg string) *Error {
	return &Error{Reason: reason, Message: msg}
}

var (
	ErrSelfLike          = newError("SELF_LIKE", "cannot like yourself")
	ErrDuplicateLike     = newError("DUPLICATE_LIKE", "already liked")
	ErrNotMatched        = newError("NOT_MATCHED", "users are not matched")
	ErrEmptyMessage      = newError("EMPTY_MESSAGE", "message cannot be empty")
	ErrMessageTooLong    = newError("MESSAGE_TOO_LONG", "message exceeds 1000 characters")
	ErrProfileIncomplete = newError("PROFILE_INCOMPLETE", "complete your profile first")
	ErrNotFound          = newError("NOT_FOUND", "user not found")

	ErrInvalidArgument    = newError("INVALID_ARGUMENT", "invalid argument")
	ErrEmailTaken         = newError("EMAIL_TAKEN", "email already exists")
	ErrInvalidCredentials = newError("INVALID_CREDENTIALS", "invalid credentials")
	ErrUnauthenticated    = newError("UNAUTHENTICATED", "authentication required")
	ErrConflict           = newError("CONFLICT", "concurrent update, try again")
)

// Invalid wraps ErrInvalidArgument with a field-specific message while
// keeping errors.Is(err, ErrInvalidArgument) true.
func Invalid(format string, args ...any) error {
	return &detailed{base: ErrInvalidArgument, msg: fmt.Sprintf(format, args...)}
}

type detailed struct {
	base *Error
	msg  string
}

func (d *detailed) Error() string { return d.msg }
func (d *detailed) Unwrap() error { return d.base }

// Reason extracts the machine-readable reason of err, or "" for infra errors.
func Reason(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}
