package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	jwtauth "github.com/arminmzh/storeforge-backend/internal/auth/jwt"
	"github.com/arminmzh/storeforge-backend/internal/product"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubService struct {
	view        *product.View
	views       []product.View
	err         error
	lastStoreID string
	lastID      string
}

func (s *stubService) Create(ctx context.Context, data product.Product) (*product.View, error) {
	s.lastStoreID = data.StoreID
	return s.view, s.err
}

func (s *stubService) List(ctx context.Context, storeID string) ([]product.View, error) {
	s.lastStoreID = storeID
	return s.views, s.err
}

func (s *stubService) GetByID(ctx context.Context, storeID, id string) (*product.View, error) {
	s.lastStoreID, s.lastID = storeID, id
	return s.view, s.err
}

func (s *stubService) Update(ctx context.Context, storeID, id string, patch product.Patch) (*product.View, error) {
	s.lastStoreID, s.lastID = storeID, id
	return s.view, s.err
}

func (s *stubService) Delete(ctx context.Context, storeID, id string) error {
	s.lastStoreID, s.lastID = storeID, id
	return s.err
}

// fakeAuth injects verified claims the way the jwt middleware does.
func fakeAuth(storeID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), jwtauth.ClaimsContextKey{}, &jwtauth.Claims{
				UserID:  "account-1",
				StoreID: storeID,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newRouter(service *stubService) chi.Router {
	router := chi.NewRouter()
	New(service, fakeAuth("store-1"), zap.NewNop()).Register(router)

	return router
}

func TestCreateHandler(t *testing.T) {
	view := product.NewView(product.Product{
		ID:      "a",
		StoreID: "store-1",
		Name:    "Sneaker",
		Price:   "1000000",
	}, nil)

	t.Run("valid body creates under token tenant", func(t *testing.T) {
		service := &stubService{view: &view}
		router := newRouter(service)

		body := `{"name":"Sneaker","price":"1000000","discount":10,"status":"available","categoryId":"shoes"}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "store-1", service.lastStoreID)
		assert.Contains(t, rec.Body.String(), `"name":"Sneaker"`)
	})

	t.Run("invalid status is rejected before the service", func(t *testing.T) {
		service := &stubService{view: &view}
		router := newRouter(service)

		body := `{"name":"Sneaker","price":"1000000","status":"sold-out","categoryId":"shoes"}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, service.lastStoreID)
	})

	t.Run("malformed json is a decode error", func(t *testing.T) {
		router := newRouter(&stubService{view: &view})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader("{not json")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "failed to decode request body")
	})
}

func TestGetHandler(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		service := &stubService{err: apperror.ErrNotFound}
		router := newRouter(service)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/deadbeef", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "deadbeef", service.lastID)
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("absent fields stay out of the patch", func(t *testing.T) {
		view := product.NewView(product.Product{ID: "a", StoreID: "store-1", Name: "Sneaker"}, nil)
		service := &stubService{view: &view}

		router := chi.NewRouter()
		var captured product.Patch
		capturing := &patchCapturingService{stubService: service, captured: &captured}
		New(capturing, fakeAuth("store-1"), zap.NewNop()).Register(router)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/products/a", strings.NewReader(`{"name":"Boot"}`)))

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured.Name)
		assert.Equal(t, "Boot", *captured.Name)
		assert.Nil(t, captured.Price)
		assert.Nil(t, captured.ColorVariants)
	})
}

type patchCapturingService struct {
	*stubService
	captured *product.Patch
}

func (s *patchCapturingService) Update(ctx context.Context, storeID, id string, patch product.Patch) (*product.View, error) {
	*s.captured = patch
	return s.stubService.Update(ctx, storeID, id, patch)
}

func TestDeleteHandler(t *testing.T) {
	service := &stubService{}
	router := newRouter(service)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/products/a", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "store-1", service.lastStoreID)
	assert.Contains(t, rec.Body.String(), "product deleted successfully")
}
