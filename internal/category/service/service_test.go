package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/category"
	"github.com/arminmzh/storeforge-backend/internal/category/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRepository struct {
	categories map[string]category.Category
	nextID     int
}

func newStubRepository() *stubRepository {
	return &stubRepository{categories: make(map[string]category.Category)}
}

func (r *stubRepository) Create(ctx context.Context, data category.Category) (*category.Category, error) {
	r.nextID++
	data.ID = "cat-" + strconv.Itoa(r.nextID)
	data.Children = []string{}
	r.categories[data.ID] = data

	return &data, nil
}

func (r *stubRepository) List(ctx context.Context, storeID string) ([]category.Category, error) {
	var out []category.Category
	for _, c := range r.categories {
		if c.StoreID == storeID {
			out = append(out, c)
		}
	}

	return out, nil
}

func (r *stubRepository) GetByID(ctx context.Context, storeID, id string) (*category.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.StoreID != storeID {
		return nil, db.ErrCategoryNotFound
	}

	return &c, nil
}

func (r *stubRepository) Update(ctx context.Context, storeID, id string, patch category.Patch) (*category.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.StoreID != storeID {
		return nil, db.ErrCategoryNotFound
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	r.categories[id] = c

	return &c, nil
}

func (r *stubRepository) AddChild(ctx context.Context, storeID, parentID, childID string) (*category.Category, error) {
	c, ok := r.categories[parentID]
	if !ok || c.StoreID != storeID {
		return nil, db.ErrCategoryNotFound
	}

	c.Children = append(c.Children, childID)
	r.categories[parentID] = c

	return &c, nil
}

func (r *stubRepository) RemoveChild(ctx context.Context, storeID, parentID, childID string) (*category.Category, error) {
	c, ok := r.categories[parentID]
	if !ok || c.StoreID != storeID {
		return nil, db.ErrCategoryNotFound
	}

	var kept []string
	var found bool
	for _, child := range c.Children {
		if child == childID {
			found = true
			continue
		}
		kept = append(kept, child)
	}
	if !found {
		return nil, db.ErrCategoryNotFound
	}

	c.Children = kept
	r.categories[parentID] = c

	return &c, nil
}

func (r *stubRepository) HasParent(ctx context.Context, storeID, id string) (bool, error) {
	for _, c := range r.categories {
		if c.StoreID != storeID {
			continue
		}
		for _, child := range c.Children {
			if child == id {
				return true, nil
			}
		}
	}

	return false, nil
}

func (r *stubRepository) Delete(ctx context.Context, storeID, id string) error {
	c, ok := r.categories[id]
	if !ok || c.StoreID != storeID {
		return db.ErrCategoryNotFound
	}

	delete(r.categories, id)

	return nil
}

type stubProductCounter struct {
	count int64
}

func (s *stubProductCounter) CountByCategory(ctx context.Context, storeID, categoryID string) (int64, error) {
	return s.count, nil
}

func newService(repository *stubRepository, products *stubProductCounter) *service {
	if products == nil {
		products = &stubProductCounter{}
	}

	return New(repository, products, zap.NewNop())
}

func mustCreate(t *testing.T, s *service, storeID, name string) *category.Category {
	t.Helper()

	created, err := s.Create(context.Background(), category.Category{StoreID: storeID, Name: name})
	require.NoError(t, err)

	return created
}

func TestAttachChild(t *testing.T) {
	t.Run("links an existing category under a parent", func(t *testing.T) {
		s := newService(newStubRepository(), nil)
		parent := mustCreate(t, s, "store-1", "Clothing")
		child := mustCreate(t, s, "store-1", "Shoes")

		updated, err := s.AttachChild(context.Background(), "store-1", parent.ID, child.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{child.ID}, updated.Children)
	})

	t.Run("rejects self attachment", func(t *testing.T) {
		s := newService(newStubRepository(), nil)
		parent := mustCreate(t, s, "store-1", "Clothing")

		_, err := s.AttachChild(context.Background(), "store-1", parent.ID, parent.ID)
		assert.ErrorIs(t, err, ErrSelfChild)
	})

	t.Run("rejects a second parent", func(t *testing.T) {
		s := newService(newStubRepository(), nil)
		first := mustCreate(t, s, "store-1", "Clothing")
		second := mustCreate(t, s, "store-1", "Footwear")
		child := mustCreate(t, s, "store-1", "Shoes")

		_, err := s.AttachChild(context.Background(), "store-1", first.ID, child.ID)
		require.NoError(t, err)

		_, err = s.AttachChild(context.Background(), "store-1", second.ID, child.ID)
		assert.ErrorIs(t, err, ErrAlreadyAttached)
	})

	t.Run("rejects attaching an ancestor under its own descendant", func(t *testing.T) {
		s := newService(newStubRepository(), nil)
		root := mustCreate(t, s, "store-1", "Clothing")
		mid := mustCreate(t, s, "store-1", "Shoes")
		leaf := mustCreate(t, s, "store-1", "Sneakers")

		_, err := s.AttachChild(context.Background(), "store-1", root.ID, mid.ID)
		require.NoError(t, err)
		_, err = s.AttachChild(context.Background(), "store-1", mid.ID, leaf.ID)
		require.NoError(t, err)

		_, err = s.AttachChild(context.Background(), "store-1", leaf.ID, root.ID)
		assert.ErrorIs(t, err, ErrCycle)
	})

	t.Run("cross tenant parent is not found", func(t *testing.T) {
		s := newService(newStubRepository(), nil)
		parent := mustCreate(t, s, "store-1", "Clothing")
		child := mustCreate(t, s, "store-1", "Shoes")

		_, err := s.AttachChild(context.Background(), "store-2", parent.ID, child.ID)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestDetachChild(t *testing.T) {
	s := newService(newStubRepository(), nil)
	parent := mustCreate(t, s, "store-1", "Clothing")
	child := mustCreate(t, s, "store-1", "Shoes")

	_, err := s.AttachChild(context.Background(), "store-1", parent.ID, child.ID)
	require.NoError(t, err)

	updated, err := s.DetachChild(context.Background(), "store-1", parent.ID, child.ID)
	require.NoError(t, err)
	assert.Empty(t, updated.Children)

	_, err = s.DetachChild(context.Background(), "store-1", parent.ID, child.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteCategory(t *testing.T) {
	t.Run("refuses while it has children", func(t *testing.T) {
		s := newService(newStubRepository(), nil)
		parent := mustCreate(t, s, "store-1", "Clothing")
		child := mustCreate(t, s, "store-1", "Shoes")

		_, err := s.AttachChild(context.Background(), "store-1", parent.ID, child.ID)
		require.NoError(t, err)

		assert.ErrorIs(t, s.Delete(context.Background(), "store-1", parent.ID), ErrHasChildren)
	})

	t.Run("refuses while products reference it", func(t *testing.T) {
		s := newService(newStubRepository(), &stubProductCounter{count: 2})
		leaf := mustCreate(t, s, "store-1", "Shoes")

		assert.ErrorIs(t, s.Delete(context.Background(), "store-1", leaf.ID), ErrInUse)
	})

	t.Run("detaches from its parent on delete", func(t *testing.T) {
		repository := newStubRepository()
		s := newService(repository, nil)
		parent := mustCreate(t, s, "store-1", "Clothing")
		child := mustCreate(t, s, "store-1", "Shoes")

		_, err := s.AttachChild(context.Background(), "store-1", parent.ID, child.ID)
		require.NoError(t, err)

		require.NoError(t, s.Delete(context.Background(), "store-1", child.ID))

		remaining, err := s.GetByID(context.Background(), "store-1", parent.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining.Children)
	})
}
