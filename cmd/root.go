package main

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"

	"github.com/dtroode/fostr-server/internal/config"
	"github.com/dtroode/fostr-server/internal/logger"
	"github.com/dtroode/fostr-server/internal/model"
	"github.com/dtroode/fostr-server/internal/service"
	miniostorage "github.com/dtroode/fostr-server/internal/storage/minio"
	s3storage "github.com/dtroode/fostr-server/internal/storage/s3"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:          "fostr",
	Short:        "Family account server",
	Long:         "Family account server. Without a subcommand it behaves like serve.",
	SilenceUsage: true,
	Version:      buildVersion,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files loaded before reading the environment")
	rootCmd.SetVersionTemplate(fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit))
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.NewConfig(envFiles...)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cfg.LogLevel), nil
}

// newStorage builds the picture storage backend selected by the config.
func newStorage(ctx context.Context, cfg *config.Config) (model.Storage, error) {
	switch cfg.Storage.Backend {
	case config.BackendS3:
		client, err := s3storage.New(ctx, s3storage.Options{
			Bucket:   cfg.S3.Bucket,
			Prefix:   cfg.S3.Prefix,
			Region:   cfg.S3.Region,
			Endpoint: cfg.S3.Endpoint,
			Profile:  cfg.S3.Profile,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 client: %w", err)
		}
		return client, nil
	default:
		minioClient, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		client, err := miniostorage.NewClient(ctx, minioClient, cfg.MinIO.Bucket, cfg.MinIO.Prefix)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage client: %w", err)
		}
		return client, nil
	}
}

// newPictures wires the picture service and makes sure every reserved
// picture resolves.
func newPictures(ctx context.Context, cfg *config.Config, logger *logger.Logger) (*service.Pictures, error) {
	storage, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pictures := service.NewPictures(storage, cfg.Picture.Default, cfg.Picture.Reserved, cfg.Picture.ThumbnailSize, logger)
	if err := pictures.EnsureReserved(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare reserved pictures: %w", err)
	}
	return pictures, nil
}
