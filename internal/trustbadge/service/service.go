package service

import (
	"context"
	"errors"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/trustbadge"
	"github.com/arminmzh/storeforge-backend/internal/trustbadge/db"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, data trustbadge.TrustBadge) (*trustbadge.TrustBadge, error)
	List(ctx context.Context, storeID string) ([]trustbadge.TrustBadge, error)
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

func (s *service) Create(ctx context.Context, data trustbadge.TrustBadge) (*trustbadge.TrustBadge, error) {
	created, err := s.repository.Create(ctx, data)
	if err != nil {
		s.logger.Error("unexpected error when creating trust badge", zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (s *service) List(ctx context.Context, storeID string) ([]trustbadge.TrustBadge, error) {
	badges, err := s.repository.List(ctx, storeID)
	if err != nil {
		s.logger.Error("unexpected error when listing trust badges", zap.Error(err))
		return nil, err
	}

	return badges, nil
}

func (s *service) Delete(ctx context.Context, storeID, id string) error {
	if err := s.repository.Delete(ctx, storeID, id); err != nil {
		switch {
		case errors.Is(err, db.ErrTrustBadgeNotFound):
			return apperror.ErrNotFound
		case errors.Is(err, db.ErrInvalidID):
			return apperror.ErrInvalidID
		default:
			s.logger.Error("unexpected error when deleting trust badge", zap.Error(err))
			return err
		}
	}

	return nil
}
