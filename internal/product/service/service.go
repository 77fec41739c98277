package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/category"
	"github.com/arminmzh/storeforge-backend/internal/product"
	"github.com/arminmzh/storeforge-backend/internal/product/db"
	"go.uber.org/zap"
)

var (
	ErrCategoryNotFound = apperror.NewAppError("category does not exist in this store")
	ErrCategoryNotLeaf  = apperror.NewAppError("products can only be assigned to a leaf category")
	ErrInvalidQuantity  = apperror.NewAppError("color variant quantity must be a whole number")
)

type Repository interface {
	Create(ctx context.Context, data product.Product) (*product.Product, error)
	List(ctx context.Context, storeID string) ([]product.Product, error)
	GetByID(ctx context.Context, storeID, id string) (*product.Product, error)
	Update(ctx context.Context, storeID, id string, patch product.Patch) (*product.Product, error)
	Delete(ctx context.Context, storeID, id string) error
}

type CategoryService interface {
	GetByID(ctx context.Context, storeID, id string) (*category.Category, error)
	List(ctx context.Context, storeID string) ([]category.Category, error)
}

type service struct {
	repository      Repository
	categoryService CategoryService
	logger          *zap.Logger
}

func New(repository Repository, categoryService CategoryService, logger *zap.Logger) *service {
	return &service{
		repository:      repository,
		categoryService: categoryService,
		logger:          logger,
	}
}

func (s *service) mapErr(err error, op string) error {
	switch {
	case errors.Is(err, db.ErrProductNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, db.ErrInvalidID):
		return apperror.ErrInvalidID
	default:
		s.logger.Error("unexpected error when "+op, zap.Error(err))
		return err
	}
}

// validateVariants rejects quantities that do not parse as integers so
// the derived inventory can never silently drop a variant.
func validateVariants(variants []product.ColorVariant) error {
	for _, variant := range variants {
		if _, err := strconv.Atoi(variant.Quantity); err != nil {
			return ErrInvalidQuantity
		}
	}

	return nil
}

// resolveLeafCategory confirms the reference resolves within the
// tenant and points at a leaf of the tree.
func (s *service) resolveLeafCategory(ctx context.Context, storeID, categoryID string) (*category.Category, error) {
	existing, err := s.categoryService.GetByID(ctx, storeID, categoryID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) || errors.Is(err, apperror.ErrInvalidID) {
			return nil, ErrCategoryNotFound
		}

		return nil, err
	}

	if !existing.IsLeaf() {
		return nil, ErrCategoryNotLeaf
	}

	return existing, nil
}

func (s *service) Create(ctx context.Context, data product.Product) (*product.View, error) {
	if err := validateVariants(data.ColorVariants); err != nil {
		return nil, err
	}

	resolved, err := s.resolveLeafCategory(ctx, data.StoreID, data.CategoryID)
	if err != nil {
		return nil, err
	}

	created, err := s.repository.Create(ctx, data)
	if err != nil {
		s.logger.Error("unexpected error when creating product", zap.Error(err))
		return nil, err
	}

	view := product.NewView(*created, resolved)

	return &view, nil
}

func (s *service) List(ctx context.Context, storeID string) ([]product.View, error) {
	products, err := s.repository.List(ctx, storeID)
	if err != nil {
		return nil, s.mapErr(err, "listing products")
	}

	categories, err := s.categoryService.List(ctx, storeID)
	if err != nil {
		return nil, err
	}

	categoriesByID := make(map[string]category.Category, len(categories))
	for _, c := range categories {
		categoriesByID[c.ID] = c
	}

	views := make([]product.View, 0, len(products))
	for _, p := range products {
		var resolved *category.Category
		if c, ok := categoriesByID[p.CategoryID]; ok {
			resolved = &c
		}
		views = append(views, product.NewView(p, resolved))
	}

	return views, nil
}

func (s *service) GetByID(ctx context.Context, storeID, id string) (*product.View, error) {
	existing, err := s.repository.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, s.mapErr(err, "fetching product")
	}

	resolved, err := s.categoryService.GetByID(ctx, storeID, existing.CategoryID)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	view := product.NewView(*existing, resolved)

	return &view, nil
}

func (s *service) Update(ctx context.Context, storeID, id string, patch product.Patch) (*product.View, error) {
	if patch.ColorVariants != nil {
		if err := validateVariants(*patch.ColorVariants); err != nil {
			return nil, err
		}
	}

	if patch.CategoryID != nil {
		if _, err := s.resolveLeafCategory(ctx, storeID, *patch.CategoryID); err != nil {
			return nil, err
		}
	}

	updated, err := s.repository.Update(ctx, storeID, id, patch)
	if err != nil {
		return nil, s.mapErr(err, "updating product")
	}

	resolved, err := s.categoryService.GetByID(ctx, storeID, updated.CategoryID)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	view := product.NewView(*updated, resolved)

	return &view, nil
}

func (s *service) Delete(ctx context.Context, storeID, id string) error {
	if err := s.repository.Delete(ctx, storeID, id); err != nil {
		return s.mapErr(err, "deleting product")
	}

	return nil
}
