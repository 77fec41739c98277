package service

import (
	"context"
	"errors"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/story"
	"github.com/arminmzh/storeforge-backend/internal/story/db"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, data story.Story) (*story.Story, error)
	List(ctx context.Context, storeID string) ([]story.Story, error)
	Update(ctx context.Context, storeID, id string, patch story.Patch) (*story.Story, error)
	Delete(ctx context.Context, storeID, id string) error
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

func New(repository Repository, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

func (s *service) mapErr(err error, op string) error {
	switch {
	case errors.Is(err, db.ErrStoryNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, db.ErrInvalidID):
		return apperror.ErrInvalidID
	default:
		s.logger.Error("unexpected error when "+op, zap.Error(err))
		return err
	}
}

func (s *service) Create(ctx context.Context, data story.Story) (*story.Story, error) {
	created, err := s.repository.Create(ctx, data)
	if err != nil {
		s.logger.Error("unexpected error when creating story", zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (s *service) List(ctx context.Context, storeID string) ([]story.Story, error) {
	stories, err := s.repository.List(ctx, storeID)
	if err != nil {
		return nil, s.mapErr(err, "listing stories")
	}

	return stories, nil
}

func (s *service) Update(ctx context.Context, storeID, id string, patch story.Patch) (*story.Story, error) {
	updated, err := s.repository.Update(ctx, storeID, id, patch)
	if err != nil {
		return nil, s.mapErr(err, "updating story")
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, storeID, id string) error {
	if err := s.repository.Delete(ctx, storeID, id); err != nil {
		return s.mapErr(err, "deleting story")
	}

	return nil
}
