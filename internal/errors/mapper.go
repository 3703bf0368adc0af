// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

// ErrorDomain tags ErrorInfo details attached to gRPC statuses.
const ErrorDomain = "dating.muzz"

// Map converts domain/repo/infra errors into gRPC-friendly status errors.
// Keeps service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, ErrSelfLike),
		errors.Is(err, ErrEmptyMessage),
		errors.Is(err, ErrMessageTooLong),
		errors.Is(err, ErrInvalidArgument):
		return withReason(codes.InvalidArgument, err)

	case errors.Is(err, ErrDuplicateLike), errors.Is(err, ErrEmailTaken):
		return withReason(codes.AlreadyExists, err)

	case errors.Is(err, ErrNotMatched):
		return withReason(codes.PermissionDenied, err)

	case errors.Is(err, ErrProfileIncomplete):
		return withReason(codes.FailedPrecondition, err)

	case errors.Is(err, ErrNotFound):
		return withReason(codes.NotFound, err)

	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthenticated):
		return withReason(codes.Unauthenticated, err)

	case errors.Is(err, ErrConflict):
		return withReason(codes.Aborted, err)

	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "record not found")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	default:
		// fallback → bubble up error message for debugging
		return status.Error(codes.Internal, err.Error())
	}
}

// HTTPStatus picks the HTTP status code for err, following the same
// taxonomy as Map.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrSelfLike),
		errors.Is(err, ErrDuplicateLike),
		errors.Is(err, ErrEmptyMessage),
		errors.Is(err, ErrMessageTooLong),
		errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrNotMatched):
		return http.StatusForbidden
	case errors.Is(err, ErrProfileIncomplete):
		return http.StatusPreconditionFailed
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// ReasonFromStatus returns the ErrorInfo reason attached by Map, if any.
func ReasonFromStatus(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info.GetReason()
		}
	}
	return ""
}

func withReason(code codes.Code, err error) error {
	st := status.New(code, err.Error())
	if detailed, dErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: Reason(err),
		Domain: ErrorDomain,
	}); dErr == nil {
		st = detailed
	}
	return st.Err()
}
