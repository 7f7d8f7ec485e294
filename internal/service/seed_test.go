package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/fostr-server/internal/mocks"
	"github.com/dtroode/fostr-server/internal/model"
	"github.com/dtroode/fostr-server/internal/testutil"
)

func TestDevUsers(t *testing.T) {
	users := DevUsers()
	require.Len(t, users, 4)

	names := make([]string, 0, len(users))
	for _, du := range users {
		names = append(names, du.User.Username)
		assert.True(t, du.User.Role.Valid(), du.User.Username)
		assert.True(t, du.User.Gender.Valid(), du.User.Username)
		assert.Contains(t, SeedPictures, du.User.ProfilePicture)
		assert.NotEmpty(t, du.Password)
	}
	assert.Equal(t, []string{"cuser", "cuser2", "puser", "admin"}, names)
	assert.Equal(t, "nimda", users[3].Password)
	assert.Equal(t, model.RoleAdmin, users[3].User.Role)
}

func TestSeeder_Seed(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)

	hasher.On("Hash", mock.Anything).Return(func(p string) string { return "h:" + p }, nil).Times(4)
	expectTx(store).Once()
	store.On("DeleteAll", ctx).Return(nil).Once()
	var id int64
	store.On("Create", ctx, mock.Anything).Return(func(_ context.Context, u model.User) model.User {
		id++
		u.ID = id
		return u
	}, nil).Times(4)

	created, err := NewSeeder(store, hasher, testutil.MakeNoopLogger()).Seed(ctx)
	require.NoError(t, err)
	require.Len(t, created, 4)
	assert.Equal(t, "h:cuser", created[0].PasswordHash)
	assert.Equal(t, "admin", created[3].Username)
	assert.Equal(t, "h:nimda", created[3].PasswordHash)
	assert.Equal(t, int64(4), created[3].ID)
}

func TestSeeder_Seed_Failure(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)

	hasher.On("Hash", mock.Anything).Return("h", nil).Times(4)
	expectTx(store).Once()
	store.On("DeleteAll", ctx).Return(assert.AnError).Once()

	_, err := NewSeeder(store, hasher, testutil.MakeNoopLogger()).Seed(ctx)
	require.ErrorIs(t, err, assert.AnError)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
