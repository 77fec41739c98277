package service

import (
	"context"
	"testing"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/category"
	"github.com/arminmzh/storeforge-backend/internal/product"
	"github.com/arminmzh/storeforge-backend/internal/product/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubRepository keeps products in memory with the same tenant
// filtering contract as the mongodb repository.
type stubRepository struct {
	products map[string]product.Product
	nextID   int
}

func newStubRepository() *stubRepository {
	return &stubRepository{products: make(map[string]product.Product), nextID: 1}
}

func (r *stubRepository) Create(ctx context.Context, data product.Product) (*product.Product, error) {
	data.ID = string(rune('a' + r.nextID))
	r.nextID++
	r.products[data.ID] = data

	return &data, nil
}

func (r *stubRepository) List(ctx context.Context, storeID string) ([]product.Product, error) {
	var out []product.Product
	for _, p := range r.products {
		if p.StoreID == storeID {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *stubRepository) GetByID(ctx context.Context, storeID, id string) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok || p.StoreID != storeID {
		return nil, db.ErrProductNotFound
	}

	return &p, nil
}

func (r *stubRepository) Update(ctx context.Context, storeID, id string, patch product.Patch) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok || p.StoreID != storeID {
		return nil, db.ErrProductNotFound
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Discount != nil {
		p.Discount = *patch.Discount
	}
	if patch.ColorVariants != nil {
		p.ColorVariants = *patch.ColorVariants
	}
	r.products[id] = p

	return &p, nil
}

func (r *stubRepository) Delete(ctx context.Context, storeID, id string) error {
	p, ok := r.products[id]
	if !ok || p.StoreID != storeID {
		return db.ErrProductNotFound
	}

	delete(r.products, id)

	return nil
}

type stubCategoryService struct {
	categories map[string]category.Category
}

func (s *stubCategoryService) GetByID(ctx context.Context, storeID, id string) (*category.Category, error) {
	c, ok := s.categories[id]
	if !ok || c.StoreID != storeID {
		return nil, apperror.ErrNotFound
	}

	return &c, nil
}

func (s *stubCategoryService) List(ctx context.Context, storeID string) ([]category.Category, error) {
	var out []category.Category
	for _, c := range s.categories {
		if c.StoreID == storeID {
			out = append(out, c)
		}
	}

	return out, nil
}

func newService(repository *stubRepository, categories *stubCategoryService) *service {
	return New(repository, categories, zap.NewNop())
}

func leafCategories() *stubCategoryService {
	return &stubCategoryService{categories: map[string]category.Category{
		"shoes":    {ID: "shoes", StoreID: "store-1", Name: "Shoes"},
		"clothing": {ID: "clothing", StoreID: "store-1", Name: "Clothing", Children: []string{"shoes"}},
		"other":    {ID: "other", StoreID: "store-2", Name: "Other"},
	}}
}

func validProduct() product.Product {
	return product.Product{
		StoreID:    "store-1",
		Name:       "Sneaker",
		Price:      "1000000",
		Discount:   10,
		Status:     product.StatusAvailable,
		CategoryID: "shoes",
		ColorVariants: []product.ColorVariant{
			{Color: "red", Quantity: "3"},
			{Color: "blue", Quantity: "5"},
		},
	}
}

func TestCreate(t *testing.T) {
	t.Run("resolves category and derives inventory and price", func(t *testing.T) {
		s := newService(newStubRepository(), leafCategories())

		created, err := s.Create(context.Background(), validProduct())
		require.NoError(t, err)

		assert.Equal(t, 8, created.TotalInventory)
		assert.InDelta(t, 900000, created.DiscountedPrice, 1e-9)
		require.NotNil(t, created.Category)
		assert.Equal(t, "Shoes", created.Category.Name)
	})

	t.Run("rejects non-numeric variant quantity", func(t *testing.T) {
		s := newService(newStubRepository(), leafCategories())

		data := validProduct()
		data.ColorVariants[1].Quantity = "many"

		_, err := s.Create(context.Background(), data)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("rejects non-leaf category", func(t *testing.T) {
		s := newService(newStubRepository(), leafCategories())

		data := validProduct()
		data.CategoryID = "clothing"

		_, err := s.Create(context.Background(), data)
		assert.ErrorIs(t, err, ErrCategoryNotLeaf)
	})

	t.Run("rejects category belonging to another tenant", func(t *testing.T) {
		s := newService(newStubRepository(), leafCategories())

		data := validProduct()
		data.CategoryID = "other"

		_, err := s.Create(context.Background(), data)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestTenantIsolation(t *testing.T) {
	repository := newStubRepository()
	s := newService(repository, leafCategories())

	created, err := s.Create(context.Background(), validProduct())
	require.NoError(t, err)

	t.Run("other tenant cannot read", func(t *testing.T) {
		_, err := s.GetByID(context.Background(), "store-2", created.ID)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("other tenant cannot update", func(t *testing.T) {
		name := "hijacked"
		_, err := s.Update(context.Background(), "store-2", created.ID, product.Patch{Name: &name})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("other tenant cannot delete", func(t *testing.T) {
		err := s.Delete(context.Background(), "store-2", created.ID)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("other tenant list stays empty", func(t *testing.T) {
		views, err := s.List(context.Background(), "store-2")
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("empty patch is a no-op", func(t *testing.T) {
		repository := newStubRepository()
		s := newService(repository, leafCategories())

		created, err := s.Create(context.Background(), validProduct())
		require.NoError(t, err)

		updated, err := s.Update(context.Background(), "store-1", created.ID, product.Patch{})
		require.NoError(t, err)

		assert.Equal(t, created.Name, updated.Name)
		assert.Equal(t, created.Price, updated.Price)
		assert.Equal(t, created.TotalInventory, updated.TotalInventory)
	})

	t.Run("patched variants are validated", func(t *testing.T) {
		repository := newStubRepository()
		s := newService(repository, leafCategories())

		created, err := s.Create(context.Background(), validProduct())
		require.NoError(t, err)

		variants := []product.ColorVariant{{Color: "green", Quantity: "NaN"}}
		_, err = s.Update(context.Background(), "store-1", created.ID, product.Patch{ColorVariants: &variants})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestDelete(t *testing.T) {
	t.Run("second delete of the same id is not found", func(t *testing.T) {
		repository := newStubRepository()
		s := newService(repository, leafCategories())

		created, err := s.Create(context.Background(), validProduct())
		require.NoError(t, err)

		require.NoError(t, s.Delete(context.Background(), "store-1", created.ID))
		assert.ErrorIs(t, s.Delete(context.Background(), "store-1", created.ID), apperror.ErrNotFound)
	})
}
