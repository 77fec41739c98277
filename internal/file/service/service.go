package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/file"
	"github.com/arminmzh/storeforge-backend/internal/file/db"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, data file.File) (*file.File, error)
	List(ctx context.Context, storeID string) ([]file.File, error)
	GetByID(ctx context.Context, storeID, id string) (*file.File, error)
	Delete(ctx context.Context, storeID, id string) error
}

type MediaStorage interface {
	Upload(ctx context.Context, storeID, objectKey string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, storeID, objectKey string) error
}

type service struct {
	repository Repository
	storage    MediaStorage
	logger     *zap.Logger
}

func New(repository Repository, storage MediaStorage, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		storage:    storage,
		logger:     logger,
	}
}

func (s *service) mapErr(err error, op string) error {
	switch {
	case errors.Is(err, db.ErrFileNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, db.ErrInvalidID):
		return apperror.ErrInvalidID
	default:
		s.logger.Error("unexpected error when "+op, zap.Error(err))
		return err
	}
}

// Upload pushes the binary to the media host first and records the
// metadata only after the object exists, so a record never points at
// nothing.
func (s *service) Upload(ctx context.Context, storeID, name, contentType string, size int64, reader io.Reader) (*file.File, error) {
	objectKey := uuid.NewString() + filepath.Ext(name)

	url, err := s.storage.Upload(ctx, storeID, objectKey, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	created, err := s.repository.Create(ctx, file.File{
		StoreID:   storeID,
		Name:      name,
		URL:       url,
		MIMEType:  contentType,
		Size:      size,
		ObjectKey: objectKey,
	})
	if err != nil {
		s.logger.Error("unexpected error when recording uploaded file", zap.Error(err))

		if removeErr := s.storage.Remove(ctx, storeID, objectKey); removeErr != nil {
			s.logger.Error("error removing orphaned object", zap.Error(removeErr))
		}

		return nil, err
	}

	return created, nil
}

func (s *service) List(ctx context.Context, storeID string) ([]file.File, error) {
	files, err := s.repository.List(ctx, storeID)
	if err != nil {
		return nil, s.mapErr(err, "listing files")
	}

	return files, nil
}

// Delete removes the remote object before the record; if the remote
// delete fails the record stays so the object remains reachable for a
// retry.
func (s *service) Delete(ctx context.Context, storeID, id string) error {
	existing, err := s.repository.GetByID(ctx, storeID, id)
	if err != nil {
		return s.mapErr(err, "fetching file")
	}

	if err := s.storage.Remove(ctx, storeID, existing.ObjectKey); err != nil {
		s.logger.Error("error removing object from media host", zap.Error(err))
		return err
	}

	if err := s.repository.Delete(ctx, storeID, id); err != nil {
		return s.mapErr(err, "deleting file record")
	}

	return nil
}
