package service

import (
	"context"
	"errors"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/store"
	"github.com/arminmzh/storeforge-backend/internal/store/db"
	"go.uber.org/zap"
)

var ErrPhoneNumberTaken = apperror.NewAppError("the store with this phone number already exists")

type Repository interface {
	Create(ctx context.Context, data store.Store) (*store.Store, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*store.Store, error)
	GetByID(ctx context.Context, id string) (*store.Store, error)
	Update(ctx context.Context, id string, patch store.Patch) (*store.Store, error)
	Delete(ctx context.Context, id string) error
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
	case errors.Is(err, db.ErrStoreNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, db.ErrInvalidID):
		return apperror.ErrInvalidID
	default:
		s.logger.Error("unexpected error when "+op, zap.Error(err))
		return err
	}
}

func (s *service) Create(ctx context.Context, data store.Store) (*store.Store, error) {
	_, err := s.repository.GetByPhoneNumber(ctx, data.PhoneNumber)
	if err == nil {
		return nil, ErrPhoneNumberTaken
	}
	if !errors.Is(err, db.ErrStoreNotFound) {
		s.logger.Error("unexpected error when checking phone number availability", zap.Error(err))
		return nil, err
	}

	created, err := s.repository.Create(ctx, data)
	if err != nil {
		s.logger.Error("unexpected error when creating store", zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (s *service) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*store.Store, error) {
	existing, err := s.repository.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, s.mapErr(err, "fetching store by phone number")
	}

	return existing, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*store.Store, error) {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapErr(err, "fetching store by id")
	}

	return existing, nil
}

func (s *service) Update(ctx context.Context, id string, patch store.Patch) (*store.Store, error) {
	if patch.PhoneNumber != nil {
		existing, err := s.repository.GetByPhoneNumber(ctx, *patch.PhoneNumber)
		if err != nil && !errors.Is(err, db.ErrStoreNotFound) {
			s.logger.Error("unexpected error when checking phone number availability", zap.Error(err))
			return nil, err
		}
		if err == nil && existing.ID != id {
			return nil, ErrPhoneNumberTaken
		}
	}

	updated, err := s.repository.Update(ctx, id, patch)
	if err != nil {
		return nil, s.mapErr(err, "updating store")
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return s.mapErr(err, "deleting store")
	}

	return nil
}
