package errors_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	svcErr "github.com/oggyb/muzz-dating/internal/errors"
)

func TestMapDomainErrors(t *testing.T) {
	cases := []struct {
		err    error
		code   codes.Code
		http   int
		reason string
	}{
		{svcErr.ErrSelfLike, codes.InvalidArgument, http.StatusBadRequest, "SELF_LIKE"},
		{svcErr.ErrDuplicateLike, codes.AlreadyExists, http.StatusBadRequest, "DUPLICATE_LIKE"},
		{svcErr.ErrNotMatched, codes.PermissionDenied, http.StatusForbidden, "NOT_MATCHED"},
		{svcErr.ErrEmptyMessage, codes.InvalidArgument, http.StatusBadRequest, "EMPTY_MESSAGE"},
		{svcErr.ErrMessageTooLong, codes.InvalidArgument, http.StatusBadRequest, "MESSAGE_TOO_LONG"},
		{svcErr.ErrProfileIncomplete, codes.FailedPrecondition, http.StatusPreconditionFailed, "PROFILE_INCOMPLETE"},
		{svcErr.ErrNotFound, codes.NotFound, http.StatusNotFound, "NOT_FOUND"},
		{svcErr.ErrConflict, codes.Aborted, http.StatusConflict, "CONFLICT"},
		{fmt.Errorf("register like: %w", svcErr.ErrSelfLike), codes.InvalidArgument, http.StatusBadRequest, "SELF_LIKE"},
		{svcErr.Invalid("age must be at least %d", 18), codes.InvalidArgument, http.StatusBadRequest, "INVALID_ARGUMENT"},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			mapped := svcErr.Map(tc.err)
			st, ok := status.FromError(mapped)
			assert.True(t, ok)
			assert.Equal(t, tc.code, st.Code())
			assert.Equal(t, tc.err.Error(), st.Message())
			assert.Equal(t, tc.reason, svcErr.ReasonFromStatus(mapped))
			assert.Equal(t, tc.http, svcErr.HTTPStatus(tc.err))
		})
	}
}

func TestMapInfraErrors(t *testing.T) {
	assert.Nil(t, svcErr.Map(nil))
	assert.Equal(t, codes.NotFound, status.Code(svcErr.Map(gorm.ErrRecordNotFound)))
	assert.Equal(t, codes.DeadlineExceeded, status.Code(svcErr.Map(context.DeadlineExceeded)))
	assert.Equal(t, codes.Canceled, status.Code(svcErr.Map(context.Canceled)))
	assert.Equal(t, codes.Internal, status.Code(svcErr.Map(fmt.Errorf("boom"))))
	assert.Equal(t, http.StatusInternalServerError, svcErr.HTTPStatus(fmt.Errorf("boom")))

	// already a status: passed through untouched
	st := status.Error(codes.Unavailable, "down")
	assert.Equal(t, st, svcErr.Map(st))
}

func TestInvalidKeepsSentinel(t *testing.T) {
	err := svcErr.Invalid("bad email %q", "x")
	assert.ErrorIs(t, err, svcErr.ErrInvalidArgument)
	assert.Equal(t, `bad email "x"`, err.Error())
	assert.Equal(t, "INVALID_ARGUMENT", svcErr.Reason(err))
}
