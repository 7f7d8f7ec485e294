package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dtroode/fostr-server/internal/api/grpc/fostrpb"
	"github.com/dtroode/fostr-server/internal/logger"
	"github.com/dtroode/fostr-server/internal/model"
)

// UserService defines role-scoped user management.
type UserService interface {
	ListVisible(ctx context.Context, actor model.User) ([]model.User, error)
	GetVisible(ctx context.Context, actor model.User, role model.Role, username string) (model.User, error)
	CreateUser(ctx context.Context, actor model.User, form model.UserForm) (model.User, error)
	UpdateUser(ctx context.Context, actor model.User, target string, form model.UserForm) (model.User, error)
	DeleteUser(ctx context.Context, actor model.User, target string) error
	Picture(ctx context.Context, ref string) ([]byte, error)
}

// Identifier resolves the authenticated user ID to its record.
type Identifier interface {
	Identify(ctx context.Context, userID int64) (model.User, error)
}

// Users handles gRPC endpoints for user records.
type Users struct {
	fostrpb.UnimplementedUsersServer
	userService    UserService
	identifier     Identifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

var _ fostrpb.UsersServer = (*Users)(nil)

// NewUsers creates a new Users handler.
func NewUsers(userService UserService, identifier Identifier, contextManager model.ContextManager, logger *logger.Logger) *Users {
	return &Users{
		userService:    userService,
		identifier:     identifier,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Users) actor(ctx context.Context) (model.User, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return model.User{}, status.Error(codes.Unauthenticated, "user is not authenticated")
	}

	actor, err := h.identifier.Identify(ctx, userID)
	if err != nil {
		h.logger.Info("Users handler: failed to identify actor",
			"user_id", userID,
			"error", err.Error())
		return model.User{}, handleError(err)
	}
	return actor, nil
}

// List returns the users visible to the caller.
func (h *Users) List(ctx context.Context, _ *emptypb.Empty) (*fostrpb.ListUsersResponse, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}

	users, err := h.userService.ListVisible(ctx, actor)
	if err != nil {
		return nil, handleError(err)
	}

	return &fostrpb.ListUsersResponse{Users: toProtoUsers(users)}, nil
}

// Get returns one user if the caller may view it. Role is the role the
// caller expects the user to have.
func (h *Users) Get(ctx context.Context, req *fostrpb.GetUserRequest) (*fostrpb.User, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}

	// The role segment only feeds the access decision. A value outside the
	// known roles never matches Child.
	user, err := h.userService.GetVisible(ctx, actor, model.Role(req.Role), req.Username)
	if err != nil {
		return nil, handleError(err)
	}

	return toProtoUser(user), nil
}

func (h *Users) Create(ctx context.Context, req *fostrpb.CreateUserRequest) (*fostrpb.User, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}
	if req.Form == nil {
		return nil, status.Error(codes.InvalidArgument, "form is required")
	}

	user, err := h.userService.CreateUser(ctx, actor, fromProtoForm(req.Form))
	if err != nil {
		h.logger.Info("Users handler: create failed",
			"actor", actor.Username,
			"username", req.Form.Username,
			"error", err.Error())
		return nil, handleError(err)
	}

	return toProtoUser(user), nil
}

func (h *Users) Update(ctx context.Context, req *fostrpb.UpdateUserRequest) (*fostrpb.User, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}
	if req.Form == nil || req.Username == "" {
		return nil, status.Error(codes.InvalidArgument, "username and form are required")
	}

	user, err := h.userService.UpdateUser(ctx, actor, req.Username, fromProtoForm(req.Form))
	if err != nil {
		h.logger.Info("Users handler: update failed",
			"actor", actor.Username,
			"username", req.Username,
			"error", err.Error())
		return nil, handleError(err)
	}

	return toProtoUser(user), nil
}

func (h *Users) Delete(ctx context.Context, req *fostrpb.DeleteUserRequest) (*emptypb.Empty, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}
	if req.Username == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}

	if err := h.userService.DeleteUser(ctx, actor, req.Username); err != nil {
		h.logger.Info("Users handler: delete failed",
			"actor", actor.Username,
			"username", req.Username,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &emptypb.Empty{}, nil
}

// Me returns the caller's own record.
func (h *Users) Me(ctx context.Context, _ *emptypb.Empty) (*fostrpb.User, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}
	return toProtoUser(actor), nil
}

func (h *Users) GetPicture(ctx context.Context, req *fostrpb.GetPictureRequest) (*fostrpb.GetPictureResponse, error) {
	if _, err := h.actor(ctx); err != nil {
		return nil, err
	}

	data, err := h.userService.Picture(ctx, req.Ref)
	if errors.Is(err, model.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "picture not found")
	}
	if err != nil {
		h.logger.Error("Users handler: failed to read picture",
			"ref", req.Ref,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &fostrpb.GetPictureResponse{Ref: req.Ref, Data: data}, nil
}
