package service

import (
	"context"
	"errors"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/collection"
	"github.com/arminmzh/storeforge-backend/internal/collection/db"
	"github.com/arminmzh/storeforge-backend/internal/product"
	"go.uber.org/zap"
)

var ErrProductRefNotFound = apperror.NewAppError("referenced product does not exist in this store")

type Repository interface {
	Create(ctx context.Context, data collection.Collection) (*collection.Collection, error)
	List(ctx context.Context, storeID string) ([]collection.Collection, error)
	GetByID(ctx context.Context, storeID, id string) (*collection.Collection, error)
	Update(ctx context.Context, storeID, id string, patch collection.Patch) (*collection.Collection, error)
	Delete(ctx context.Context, storeID, id string) error
}

type ProductService interface {
	GetByID(ctx context.Context, storeID, id string) (*product.View, error)
}

type service struct {
	repository     Repository
	productService ProductService
	logger         *zap.Logger
}

func New(repository Repository, productService ProductService, logger *zap.Logger) *service {
	return &service{
		repository:     repository,
		productService: productService,
		logger:         logger,
	}
}

func (s *service) mapErr(err error, op string) error {
	switch {
	case errors.Is(err, db.ErrCollectionNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, db.ErrInvalidID):
		return apperror.ErrInvalidID
	default:
		s.logger.Error("unexpected error when "+op, zap.Error(err))
		return err
	}
}

func (s *service) validateProductRefs(ctx context.Context, storeID string, productIDs []string) error {
	for _, id := range productIDs {
		if _, err := s.productService.GetByID(ctx, storeID, id); err != nil {
			if errors.Is(err, apperror.ErrNotFound) || errors.Is(err, apperror.ErrInvalidID) {
				return ErrProductRefNotFound
			}

			return err
		}
	}

	return nil
}

func (s *service) Create(ctx context.Context, data collection.Collection) (*collection.Collection, error) {
	if err := s.validateProductRefs(ctx, data.StoreID, data.ProductIDs); err != nil {
		return nil, err
	}

	created, err := s.repository.Create(ctx, data)
	if err != nil {
		s.logger.Error("unexpected error when creating collection", zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (s *service) List(ctx context.Context, storeID string) ([]collection.Collection, error) {
	collections, err := s.repository.List(ctx, storeID)
	if err != nil {
		return nil, s.mapErr(err, "listing collections")
	}

	return collections, nil
}

// GetByID resolves the referenced products inline; references that no
// longer resolve are skipped rather than failing the read.
func (s *service) GetByID(ctx context.Context, storeID, id string) (*collection.View, error) {
	existing, err := s.repository.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, s.mapErr(err, "fetching collection")
	}

	products := make([]product.View, 0, len(existing.ProductIDs))
	for _, productID := range existing.ProductIDs {
		resolved, err := s.productService.GetByID(ctx, storeID, productID)
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) || errors.Is(err, apperror.ErrInvalidID) {
				continue
			}

			return nil, err
		}

		products = append(products, *resolved)
	}

	return &collection.View{Collection: *existing, Products: products}, nil
}

func (s *service) Update(ctx context.Context, storeID, id string, patch collection.Patch) (*collection.Collection, error) {
	if patch.ProductIDs != nil {
		if err := s.validateProductRefs(ctx, storeID, *patch.ProductIDs); err != nil {
			return nil, err
		}
	}

	updated, err := s.repository.Update(ctx, storeID, id, patch)
	if err != nil {
		return nil, s.mapErr(err, "updating collection")
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, storeID, id string) error {
	if err := s.repository.Delete(ctx, storeID, id); err != nil {
		return s.mapErr(err, "deleting collection")
	}

	return nil
}
