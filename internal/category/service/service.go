package service

import (
	"context"
	"errors"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/category"
	"github.com/arminmzh/storeforge-backend/internal/category/db"
	"go.uber.org/zap"
)

var (
	ErrSelfChild       = apperror.NewAppError("a category cannot be its own child")
	ErrAlreadyAttached = apperror.NewAppError("the category is already attached to a parent")
	ErrCycle           = apperror.NewAppError("attaching this child would create a cycle")
	ErrHasChildren     = apperror.NewAppError("the category still has child categories")
	ErrInUse           = apperror.NewAppError("the category is still referenced by products")
)

type Repository interface {
	Create(ctx context.Context, data category.Category) (*category.Category, error)
	List(ctx context.Context, storeID string) ([]category.Category, error)
	GetByID(ctx context.Context, storeID, id string) (*category.Category, error)
	Update(ctx context.Context, storeID, id string, patch category.Patch) (*category.Category, error)
	AddChild(ctx context.Context, storeID, parentID, childID string) (*category.Category, error)
	RemoveChild(ctx context.Context, storeID, parentID, childID string) (*category.Category, error)
	HasParent(ctx context.Context, storeID, id string) (bool, error)
	Delete(ctx context.Context, storeID, id string) error
}

// ProductCounter reports how many products of the tenant reference a
// category; deletion is blocked while any do.
type ProductCounter interface {
	CountByCategory(ctx context.Context, storeID, categoryID string) (int64, error)
}

type service struct {
	repository Repository
	products   ProductCounter
	logger     *zap.Logger
}

func New(repository Repository, products ProductCounter, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		products:   products,
		logger:     logger,
	}
}

func (s *service) mapErr(err error, op string) error {
	switch {
	case errors.Is(err, db.ErrCategoryNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, db.ErrInvalidID):
		return apperror.ErrInvalidID
	default:
		s.logger.Error("unexpected error when "+op, zap.Error(err))
		return err
	}
}

func (s *service) Create(ctx context.Context, data category.Category) (*category.Category, error) {
	created, err := s.repository.Create(ctx, data)
	if err != nil {
		s.logger.Error("unexpected error when creating category", zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (s *service) List(ctx context.Context, storeID string) ([]category.Category, error) {
	categories, err := s.repository.List(ctx, storeID)
	if err != nil {
		return nil, s.mapErr(err, "listing categories")
	}

	return categories, nil
}

func (s *service) GetByID(ctx context.Context, storeID, id string) (*category.Category, error) {
	existing, err := s.repository.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, s.mapErr(err, "fetching category")
	}

	return existing, nil
}

func (s *service) Update(ctx context.Context, storeID, id string, patch category.Patch) (*category.Category, error) {
	updated, err := s.repository.Update(ctx, storeID, id, patch)
	if err != nil {
		return nil, s.mapErr(err, "updating category")
	}

	return updated, nil
}

// isDescendant walks the children graph from `from` looking for
// `target`. The per-tenant tree is small enough to load whole.
func isDescendant(categories []category.Category, from, target string) bool {
	childrenByID := make(map[string][]string, len(categories))
	for _, c := range categories {
		childrenByID[c.ID] = c.Children
	}

	queue := append([]string{}, childrenByID[from]...)
	seen := make(map[string]bool)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == target {
			return true
		}
		if seen[current] {
			continue
		}
		seen[current] = true

		queue = append(queue, childrenByID[current]...)
	}

	return false
}

// AttachChild links an existing category under a parent. The tree
// stays a forest: a child can have at most one parent and the link may
// not close a cycle.
func (s *service) AttachChild(ctx context.Context, storeID, parentID, childID string) (*category.Category, error) {
	if parentID == childID {
		return nil, ErrSelfChild
	}

	if _, err := s.repository.GetByID(ctx, storeID, parentID); err != nil {
		return nil, s.mapErr(err, "fetching parent category")
	}
	if _, err := s.repository.GetByID(ctx, storeID, childID); err != nil {
		return nil, s.mapErr(err, "fetching child category")
	}

	attached, err := s.repository.HasParent(ctx, storeID, childID)
	if err != nil {
		s.logger.Error("unexpected error when checking category parent", zap.Error(err))
		return nil, err
	}
	if attached {
		return nil, ErrAlreadyAttached
	}

	categories, err := s.repository.List(ctx, storeID)
	if err != nil {
		return nil, s.mapErr(err, "listing categories")
	}
	if isDescendant(categories, childID, parentID) {
		return nil, ErrCycle
	}

	updated, err := s.repository.AddChild(ctx, storeID, parentID, childID)
	if err != nil {
		return nil, s.mapErr(err, "attaching child category")
	}

	return updated, nil
}

func (s *service) DetachChild(ctx context.Context, storeID, parentID, childID string) (*category.Category, error) {
	updated, err := s.repository.RemoveChild(ctx, storeID, parentID, childID)
	if err != nil {
		return nil, s.mapErr(err, "detaching child category")
	}

	return updated, nil
}

// Delete removes an empty, unused category. Categories with children
// or referencing products must be emptied first.
func (s *service) Delete(ctx context.Context, storeID, id string) error {
	existing, err := s.repository.GetByID(ctx, storeID, id)
	if err != nil {
		return s.mapErr(err, "fetching category")
	}

	if !existing.IsLeaf() {
		return ErrHasChildren
	}

	count, err := s.products.CountByCategory(ctx, storeID, id)
	if err != nil {
		s.logger.Error("unexpected error when counting category products", zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrInUse
	}

	if err := s.repository.Delete(ctx, storeID, id); err != nil {
		return s.mapErr(err, "deleting category")
	}

	// detach from a parent if it had one; a failed pull leaves only a
	// dangling id that readers already tolerate
	parent, err := s.repository.HasParent(ctx, storeID, id)
	if err == nil && parent {
		if _, err := s.detachFromParent(ctx, storeID, id); err != nil {
			s.logger.Warn("deleted category left attached to its parent",
				zap.String("category_id", id),
				zap.Error(err),
			)
		}
	}

	return nil
}

func (s *service) detachFromParent(ctx context.Context, storeID, id string) (*category.Category, error) {
	categories, err := s.repository.List(ctx, storeID)
	if err != nil {
		return nil, err
	}

	for _, c := range categories {
		for _, child := range c.Children {
			if child == id {
				return s.repository.RemoveChild(ctx, storeID, c.ID, id)
			}
		}
	}

	return nil, nil
}
