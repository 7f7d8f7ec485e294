package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/fostr-server/internal/logger"
	"github.com/dtroode/fostr-server/internal/model"
)

// Auth verifies credentials and opens token sessions.
type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Authenticate returns the user named username when password matches its
// stored hash, and model.ErrAuthFailure otherwise.
func (a *Auth) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	a.logger.Debug("Auth service: authenticating user",
		"username", username)

	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: unknown username",
			"username", username)
		return model.User{}, model.ErrAuthFailure
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !a.hasher.Verify(user.PasswordHash, password) {
		a.logger.Info("Auth service: password mismatch",
			"username", username)
		return model.User{}, model.ErrAuthFailure
	}

	return user, nil
}

// Login authenticates the user and issues an access/refresh token pair.
func (a *Auth) Login(ctx context.Context, username, password string) (model.Session, error) {
	user, err := a.Authenticate(ctx, username, password)
	if err != nil {
		return model.Session{}, err
	}

	accessToken, refreshToken, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue tokens",
			"username", username,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"username", username,
		"role", user.Role)

	return model.Session{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Identify loads the actor behind an authenticated user ID.
func (a *Auth) Identify(ctx context.Context, userID int64) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrAuthFailure
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}
