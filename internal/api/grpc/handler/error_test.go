package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/fostr-server/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "status passthrough",
			in:       status.Error(codes.InvalidArgument, "bad"),
			wantCode: codes.InvalidArgument,
			wantMsg:  "bad",
		},
		{
			name:     "forbidden -> PermissionDenied",
			in:       &model.ForbiddenError{Action: "view", ActorRole: model.RoleChild, Reason: "Child can only see themselves!"},
			wantCode: codes.PermissionDenied,
			wantMsg:  "Child can only see themselves!",
		},
		{
			name:     "not found -> NotFound",
			in:       fmt.Errorf("failed to get user: %w", model.ErrNotFound),
			wantCode: codes.NotFound,
			wantMsg:  "user not found",
		},
		{
			name:     "duplicate key -> AlreadyExists",
			in:       fmt.Errorf("failed to create user: %w", model.ErrDuplicateKey),
			wantCode: codes.AlreadyExists,
			wantMsg:  "user already exists",
		},
		{
			name:     "auth failure -> Unauthenticated",
			in:       model.ErrAuthFailure,
			wantCode: codes.Unauthenticated,
			wantMsg:  "Invalid login credentials!",
		},
		{
			name:     "revoked token -> Unauthenticated",
			in:       model.ErrTokenRevoked,
			wantCode: codes.Unauthenticated,
			wantMsg:  "invalid refresh token",
		},
		{
			name:     "other -> Internal",
			in:       errors.New("boom"),
			wantCode: codes.Internal,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := handleError(tt.in)
			st, ok := status.FromError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}

func TestHandleError_Validation(t *testing.T) {
	t.Parallel()

	verrs := model.ValidationErrors{
		{Kind: model.ErrOutOfRange, Field: "age", Index: -1, Message: "Age is less than 0!"},
		{Kind: model.ErrTrailingDelimiter, Field: "interests", Index: -1, Message: "Remove last semicolon"},
	}

	st, ok := status.FromError(handleError(verrs))
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "age: Age is less than 0!; interests: Remove last semicolon", st.Message())

	require.Len(t, st.Details(), 1)
	br, ok := st.Details()[0].(*errdetails.BadRequest)
	require.True(t, ok)
	require.Len(t, br.FieldViolations, 2)
	assert.Equal(t, "age", br.FieldViolations[0].Field)
	assert.Equal(t, "Remove last semicolon", br.FieldViolations[1].Description)
}

func TestHandleError_UsernameTaken(t *testing.T) {
	t.Parallel()

	verrs := model.ValidationErrors{
		{Kind: model.ErrUsernameTaken, Field: "username", Index: -1, Message: "Username cuser is taken."},
	}

	st, ok := status.FromError(handleError(verrs))
	require.True(t, ok)
	assert.Equal(t, codes.AlreadyExists, st.Code())
}
