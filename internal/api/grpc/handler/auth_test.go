package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/fostr-server/internal/api/grpc/fostrpb"
	"github.com/dtroode/fostr-server/internal/mocks"
	"github.com/dtroode/fostr-server/internal/model"
	"github.com/dtroode/fostr-server/internal/testutil"
)

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok, "expected status error, got %v", err)
	assert.Equal(t, code, st.Code())
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	h := NewAuth(svc, tokens, testutil.MakeNoopLogger())

	svc.On("Login", mock.Anything, "admin", "nimda").Return(model.Session{
		User:         model.User{ID: 4, Username: "admin", Role: model.RoleAdmin},
		AccessToken:  "acc",
		RefreshToken: "ref",
	}, nil).Once()

	out, err := h.Login(context.Background(), &fostrpb.LoginRequest{Username: "admin", Password: "nimda"})
	require.NoError(t, err)
	assert.Equal(t, "acc", out.AccessToken)
	assert.Equal(t, "ref", out.RefreshToken)
	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, "Admin", out.User.Role)
}

func TestAuth_Login_Errors(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	h := NewAuth(svc, tokens, testutil.MakeNoopLogger())

	_, err := h.Login(context.Background(), &fostrpb.LoginRequest{Username: "admin"})
	requireCode(t, err, codes.InvalidArgument)

	svc.On("Login", mock.Anything, "admin", "bad").Return(model.Session{}, model.ErrAuthFailure).Once()
	_, err = h.Login(context.Background(), &fostrpb.LoginRequest{Username: "admin", Password: "bad"})
	requireCode(t, err, codes.Unauthenticated)
}

func TestAuth_Refresh(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	h := NewAuth(svc, tokens, testutil.MakeNoopLogger())

	tokens.On("Refresh", mock.Anything, "ref").Return("acc2", "ref2", nil).Once()
	tokens.On("Refresh", mock.Anything, "old").Return("", "", model.ErrTokenRevoked).Once()

	out, err := h.Refresh(context.Background(), &fostrpb.RefreshRequest{RefreshToken: "ref"})
	require.NoError(t, err)
	assert.Equal(t, "acc2", out.AccessToken)
	assert.Equal(t, "ref2", out.RefreshToken)

	_, err = h.Refresh(context.Background(), &fostrpb.RefreshRequest{RefreshToken: "old"})
	requireCode(t, err, codes.Unauthenticated)

	_, err = h.Refresh(context.Background(), &fostrpb.RefreshRequest{})
	requireCode(t, err, codes.InvalidArgument)
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := mocks.NewTokenService(t)
	h := NewAuth(svc, tokens, testutil.MakeNoopLogger())

	tokens.On("RevokeByToken", mock.Anything, "ref").Return(nil).Once()
	tokens.On("RevokeByToken", mock.Anything, "bad").Return(assert.AnError).Once()

	_, err := h.Logout(context.Background(), &fostrpb.LogoutRequest{RefreshToken: "ref"})
	require.NoError(t, err)

	_, err = h.Logout(context.Background(), &fostrpb.LogoutRequest{RefreshToken: "bad"})
	requireCode(t, err, codes.Internal)

	_, err = h.Logout(context.Background(), &fostrpb.LogoutRequest{})
	requireCode(t, err, codes.InvalidArgument)
}
