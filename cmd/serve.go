package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/fostr-server/internal/api/grpc/context"
	"github.com/dtroode/fostr-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/fostr-server/internal/api/grpc/server"
	"github.com/dtroode/fostr-server/internal/hash"
	"github.com/dtroode/fostr-server/internal/logger"
	"github.com/dtroode/fostr-server/internal/model"
	"github.com/dtroode/fostr-server/internal/repository/postgres"
	"github.com/dtroode/fostr-server/internal/server"
	"github.com/dtroode/fostr-server/internal/service"
	"github.com/dtroode/fostr-server/internal/token"
	"github.com/dtroode/fostr-server/internal/validation"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the fostr gRPC server",
	Long: `Starts the fostr gRPC server. Pending migrations are applied on
startup and reserved pictures are written when missing. Usage:

	fostr serve --env-file .env
`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		return err
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	hasher := hash.NewBcrypt(cfg.Password.BcryptCost)

	pictures, err := newPictures(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize picture storage", "error", err)
		return err
	}

	if cfg.SeedDevUsers {
		if _, err := service.NewSeeder(userRepo, hasher, logger).Seed(ctx); err != nil {
			logger.Error("failed to seed development users", "error", err)
			return err
		}
	}

	policy, err := service.ParsePasswordPolicy(cfg.Password.UpdatePolicy)
	if err != nil {
		return err
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	tokenService := service.NewTokenService(tokenManager, refreshTokenRepo, cfg.JWT.RefreshTTL, logger)
	authService := service.NewAuth(userRepo, hasher, tokenService, logger)
	validator := validation.New(cfg.Picture.AllowedExtensions, cfg.Picture.MaxUploadBytes)
	userService := service.NewUsers(userRepo, hasher, pictures, validator, policy, logger)

	grpcServer := registerGRPCServer(logger, authService, userService, tokenService, grpcctx.NewManager(),
		fmt.Sprintf(":%s", cfg.GRPC.Port), router.MessageLimit(cfg.Picture.MaxUploadBytes))
	sl := server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)

	serveErr := make(chan error, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			serveErr <- err
		}
	}(grpcServer)

	logAppVersion(logger)

	select {
	case <-ctx.Done():
		logger.Info("received interruption signal, shutting down")
	case err = <-serveErr:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if stopErr := grpcServer.Stop(shutdownCtx); stopErr != nil {
		logger.Error("error during server shutdown", "error", stopErr, "address", grpcServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
	return err
}

func logAppVersion(logger *logger.Logger) {
	logger.Info("build info",
		"version", buildVersion,
		"date", buildDate,
		"commit", buildCommit)
}

func registerGRPCServer(
	logger *logger.Logger,
	authService *service.Auth,
	userService *service.Users,
	tokenService *service.TokenService,
	ctxMgr model.ContextManager,
	addr string,
	maxRecvBytes int,
) *grpcServer.GRPCServer {
	r := router.New(authService, userService, tokenService, ctxMgr, logger)
	s := r.Register(grpc.MaxRecvMsgSize(maxRecvBytes))

	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, addr)
}
