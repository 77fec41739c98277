package service

import (
	"context"
	"errors"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/blogpost"
	"github.com/arminmzh/storeforge-backend/internal/blogpost/db"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, data blogpost.BlogPost) (*blogpost.BlogPost, error)
	List(ctx context.Context, storeID string) ([]blogpost.BlogPost, error)
	GetByID(ctx context.Context, storeID, id string) (*blogpost.BlogPost, error)
	Update(ctx context.Context, storeID, id string, patch blogpost.Patch) (*blogpost.BlogPost, error)
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
	case errors.Is(err, db.ErrBlogPostNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, db.ErrInvalidID):
		return apperror.ErrInvalidID
	default:
		s.logger.Error("unexpected error when "+op, zap.Error(err))
		return err
	}
}

func (s *service) Create(ctx context.Context, data blogpost.BlogPost) (*blogpost.BlogPost, error) {
	created, err := s.repository.Create(ctx, data)
	if err != nil {
		s.logger.Error("unexpected error when creating blog post", zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (s *service) List(ctx context.Context, storeID string) ([]blogpost.BlogPost, error) {
	posts, err := s.repository.List(ctx, storeID)
	if err != nil {
		return nil, s.mapErr(err, "listing blog posts")
	}

	return posts, nil
}

func (s *service) GetByID(ctx context.Context, storeID, id string) (*blogpost.BlogPost, error) {
	existing, err := s.repository.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, s.mapErr(err, "fetching blog post")
	}

	return existing, nil
}

func (s *service) Update(ctx context.Context, storeID, id string, patch blogpost.Patch) (*blogpost.BlogPost, error) {
	updated, err := s.repository.Update(ctx, storeID, id, patch)
	if err != nil {
		return nil, s.mapErr(err, "updating blog post")
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, storeID, id string) error {
	if err := s.repository.Delete(ctx, storeID, id); err != nil {
		return s.mapErr(err, "deleting blog post")
	}

	return nil
}
