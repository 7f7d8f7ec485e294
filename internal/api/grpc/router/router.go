package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"

	"github.com/dtroode/fostr-server/internal/api/grpc/fostrpb"
	"github.com/dtroode/fostr-server/internal/api/grpc/handler"
	"github.com/dtroode/fostr-server/internal/api/grpc/middleware"
	"github.com/dtroode/fostr-server/internal/logger"
	"github.com/dtroode/fostr-server/internal/model"
)

// TokenService refreshes and revokes token pairs and resolves access tokens.
type TokenService interface {
	handler.TokenService
	middleware.IdentityResolver
}

// Router builds the gRPC server for the fostr services.
type Router struct {
	authService    handler.AuthService
	userService    handler.UserService
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func New(
	authService handler.AuthService,
	userService handler.UserService,
	tokenService TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		userService:    userService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
	}
}

const (
	defaultMessageLimit = 4 << 20
	formOverhead        = 1 << 20
)

// MessageLimit returns the receive size that fits a picture upload of
// uploadBytes together with the rest of the user form. It never drops
// below the gRPC default.
func MessageLimit(uploadBytes int) int {
	limit := uploadBytes + formOverhead
	if limit < defaultMessageLimit {
		return defaultMessageLimit
	}
	return limit
}

// authSkip reports whether a call needs a bearer token. Only the Auth
// service is reachable without one.
func authSkip(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), "/"+fostrpb.Auth_ServiceDesc.ServiceName+"/")
}

// Register creates the server with logging and authentication interceptors
// and registers every service on it. Extra options are appended.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authSkip),
			),
		),
		grpc.ChainStreamInterceptor(
			logging.HandleGRPCStream,
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authSkip),
			),
		),
	}, opts...)

	s := grpc.NewServer(opts...)
	fostrpb.RegisterAuthServer(s, handler.NewAuth(r.authService, r.tokenService, r.logger))
	fostrpb.RegisterUsersServer(s, handler.NewUsers(r.userService, r.authService, r.contextManager, r.logger))

	return s
}
