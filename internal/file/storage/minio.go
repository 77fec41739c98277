package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/arminmzh/storeforge-backend/internal/config"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Storage hosts uploaded binaries on the media server, one bucket per
// store. Bucket names reuse the store id, which is already generated
// DNS-compatible.
type Storage struct {
	client *minio.Client
	cfg    config.Minio
	logger *zap.Logger
}

func New(client *minio.Client, cfg config.Minio, logger *zap.Logger) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *Storage) ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		s.logger.Error("error checking if bucket exists", zap.Error(err))
		return err
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			s.logger.Error("error creating bucket", zap.Error(err))
			return err
		}
	}

	return nil
}

func (s *Storage) Upload(ctx context.Context, storeID, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	if err := s.ensureBucket(ctx, storeID); err != nil {
		return "", err
	}

	ui, err := s.client.PutObject(ctx, storeID, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.Error("error uploading object", zap.Error(err))
		return "", err
	}

	s.logger.Info("uploaded object",
		zap.String("bucket", ui.Bucket),
		zap.String("key", ui.Key),
		zap.Int64("size", ui.Size),
	)

	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.cfg.PublicBaseURL, "/"), storeID, objectKey), nil
}

func (s *Storage) Remove(ctx context.Context, storeID, objectKey string) error {
	return s.client.RemoveObject(ctx, storeID, objectKey, minio.RemoveObjectOptions{})
}
