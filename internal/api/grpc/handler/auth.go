package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dtroode/fostr-server/internal/api/grpc/fostrpb"
	"github.com/dtroode/fostr-server/internal/logger"
	"github.com/dtroode/fostr-server/internal/model"
)

// AuthService defines login and actor lookup operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (model.Session, error)
	Identify(ctx context.Context, userID int64) (model.User, error)
}

// TokenService defines token refresh and revoke operations.
type TokenService interface {
	Refresh(ctx context.Context, refreshToken string) (accessToken string, newRefreshToken string, err error)
	RevokeByToken(ctx context.Context, refreshToken string) error
}

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	fostrpb.UnimplementedAuthServer
	authService  AuthService
	tokenService TokenService
	logger       *logger.Logger
}

var _ fostrpb.AuthServer = (*Auth)(nil)

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, tokenService TokenService, logger *logger.Logger) *Auth {
	return &Auth{
		authService:  authService,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Login checks credentials and returns the user with a token pair.
func (h *Auth) Login(ctx context.Context, req *fostrpb.LoginRequest) (*fostrpb.LoginResponse, error) {
	h.logger.Debug("Auth handler: processing login request",
		"username", req.Username)

	if req.Username == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password are required")
	}

	sess, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"username", req.Username,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: login completed",
		"username", req.Username)

	return &fostrpb.LoginResponse{
		User:         toProtoUser(sess.User),
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
	}, nil
}

// Refresh exchanges a refresh token for a new token pair.
func (h *Auth) Refresh(ctx context.Context, req *fostrpb.RefreshRequest) (*fostrpb.RefreshResponse, error) {
	h.logger.Debug("Auth handler: processing token refresh request")

	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token is required")
	}

	accessToken, refreshToken, err := h.tokenService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		h.logger.Error("Auth handler: token refresh failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: token refresh successful")

	return &fostrpb.RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout revokes a refresh token.
func (h *Auth) Logout(ctx context.Context, req *fostrpb.LogoutRequest) (*emptypb.Empty, error) {
	h.logger.Debug("Auth handler: processing logout request")

	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token is required")
	}

	if err := h.tokenService.RevokeByToken(ctx, req.RefreshToken); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: logout successful")

	return &emptypb.Empty{}, nil
}
