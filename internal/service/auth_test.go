package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/fostr-server/internal/mocks"
	"github.com/dtroode/fostr-server/internal/model"
	"github.com/dtroode/fostr-server/internal/testutil"
)

type authDeps struct {
	users   *mocks.UserStore
	hasher  *mocks.PasswordHasher
	manager *mocks.TokenManager
	tokens  *mocks.RefreshTokenStore
}

func newAuth(t *testing.T) (*Auth, authDeps) {
	t.Helper()
	d := authDeps{
		users:   mocks.NewUserStore(t),
		hasher:  mocks.NewPasswordHasher(t),
		manager: mocks.NewTokenManager(t),
		tokens:  mocks.NewRefreshTokenStore(t),
	}
	log := testutil.MakeNoopLogger()
	ts := NewTokenService(d.manager, d.tokens, time.Hour, log)
	return NewAuth(d.users, d.hasher, ts, log), d
}

func TestAuth_Login(t *testing.T) {
	ctx := context.Background()
	a, d := newAuth(t)

	user := model.User{ID: 4, Username: "admin", PasswordHash: "hash", Role: model.RoleAdmin}
	d.users.On("GetByUsername", ctx, "admin").Return(user, nil).Once()
	d.hasher.On("Verify", "hash", "nimda").Return(true).Once()
	d.manager.On("GenerateAccessToken", int64(4)).Return("access", nil).Once()
	d.manager.On("GenerateRefreshToken", int64(4)).Return("refresh", "jti", nil).Once()
	d.tokens.On("Create", ctx, mock.Anything).Return(nil).Once()

	sess, err := a.Login(ctx, "admin", "nimda")
	require.NoError(t, err)
	assert.Equal(t, user, sess.User)
	assert.Equal(t, "access", sess.AccessToken)
	assert.Equal(t, "refresh", sess.RefreshToken)
}

func TestAuth_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	a, d := newAuth(t)

	d.users.On("GetByUsername", ctx, "ghost").Return(model.User{}, model.ErrNotFound).Once()

	_, err := a.Login(ctx, "ghost", "pw")
	require.ErrorIs(t, err, model.ErrAuthFailure)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	a, d := newAuth(t)

	d.users.On("GetByUsername", ctx, "cuser").Return(model.User{ID: 1, Username: "cuser", PasswordHash: "hash"}, nil).Once()
	d.hasher.On("Verify", "hash", "wrong").Return(false).Once()

	_, err := a.Login(ctx, "cuser", "wrong")
	require.ErrorIs(t, err, model.ErrAuthFailure)
}

func TestAuth_Login_StoreError(t *testing.T) {
	ctx := context.Background()
	a, d := newAuth(t)

	d.users.On("GetByUsername", ctx, "cuser").Return(model.User{}, assert.AnError).Once()

	_, err := a.Login(ctx, "cuser", "pw")
	require.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, model.ErrAuthFailure)
}

func TestAuth_Login_TokenError(t *testing.T) {
	ctx := context.Background()
	a, d := newAuth(t)

	d.users.On("GetByUsername", ctx, "cuser").Return(model.User{ID: 1, Username: "cuser", PasswordHash: "hash"}, nil).Once()
	d.hasher.On("Verify", "hash", "cuser").Return(true).Once()
	d.manager.On("GenerateAccessToken", int64(1)).Return("", assert.AnError).Once()

	_, err := a.Login(ctx, "cuser", "cuser")
	require.ErrorIs(t, err, assert.AnError)
}

func TestAuth_Identify(t *testing.T) {
	ctx := context.Background()
	a, d := newAuth(t)

	d.users.On("GetByID", ctx, int64(3)).Return(model.User{ID: 3, Username: "puser"}, nil).Once()
	d.users.On("GetByID", ctx, int64(9)).Return(model.User{}, model.ErrNotFound).Once()

	u, err := a.Identify(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "puser", u.Username)

	_, err = a.Identify(ctx, 9)
	require.ErrorIs(t, err, model.ErrAuthFailure)
}
