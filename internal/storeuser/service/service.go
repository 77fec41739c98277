package service

import (
	"context"
	"errors"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/storeuser"
	"github.com/arminmzh/storeforge-backend/internal/storeuser/db"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, storeID string) ([]storeuser.StoreUser, error)
	GetByID(ctx context.Context, storeID, id string) (*storeuser.StoreUser, error)
	Update(ctx context.Context, storeID, id string, patch storeuser.Patch) (*storeuser.StoreUser, error)
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
	case errors.Is(err, db.ErrStoreUserNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, db.ErrInvalidID):
		return apperror.ErrInvalidID
	default:
		s.logger.Error("unexpected error when "+op, zap.Error(err))
		return err
	}
}

func (s *service) List(ctx context.Context, storeID string) ([]storeuser.StoreUser, error) {
	users, err := s.repository.List(ctx, storeID)
	if err != nil {
		return nil, s.mapErr(err, "listing store users")
	}

	return users, nil
}

func (s *service) GetByID(ctx context.Context, storeID, id string) (*storeuser.StoreUser, error) {
	existing, err := s.repository.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, s.mapErr(err, "fetching store user")
	}

	return existing, nil
}

func (s *service) Update(ctx context.Context, storeID, id string, patch storeuser.Patch) (*storeuser.StoreUser, error) {
	updated, err := s.repository.Update(ctx, storeID, id, patch)
	if err != nil {
		return nil, s.mapErr(err, "updating store user")
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, storeID, id string) error {
	if err := s.repository.Delete(ctx, storeID, id); err != nil {
		return s.mapErr(err, "deleting store user")
	}

	return nil
}
