package service

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/file"
	"github.com/arminmzh/storeforge-backend/internal/file/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRepository struct {
	files     map[string]file.File
	nextID    int
	createErr error
}

func newStubRepository() *stubRepository {
	return &stubRepository{files: make(map[string]file.File)}
}

func (r *stubRepository) Create(ctx context.Context, data file.File) (*file.File, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}

	r.nextID++
	data.ID = "file-" + strconv.Itoa(r.nextID)
	r.files[data.ID] = data

	return &data, nil
}

func (r *stubRepository) List(ctx context.Context, storeID string) ([]file.File, error) {
	var out []file.File
	for _, f := range r.files {
		if f.StoreID == storeID {
			out = append(out, f)
		}
	}

	return out, nil
}

func (r *stubRepository) GetByID(ctx context.Context, storeID, id string) (*file.File, error) {
	f, ok := r.files[id]
	if !ok || f.StoreID != storeID {
		return nil, db.ErrFileNotFound
	}

	return &f, nil
}

func (r *stubRepository) Delete(ctx context.Context, storeID, id string) error {
	f, ok := r.files[id]
	if !ok || f.StoreID != storeID {
		return db.ErrFileNotFound
	}

	delete(r.files, id)

	return nil
}

type stubStorage struct {
	objects   map[string]bool
	removeErr error
}

func newStubStorage() *stubStorage {
	return &stubStorage{objects: make(map[string]bool)}
}

func (s *stubStorage) Upload(ctx context.Context, storeID, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	s.objects[objectKey] = true
	return "https://media.example.com/" + storeID + "/" + objectKey, nil
}

func (s *stubStorage) Remove(ctx context.Context, storeID, objectKey string) error {
	if s.removeErr != nil {
		return s.removeErr
	}

	delete(s.objects, objectKey)

	return nil
}

func TestUpload(t *testing.T) {
	t.Run("records metadata pointing at the hosted object", func(t *testing.T) {
		storage := newStubStorage()
		s := New(newStubRepository(), storage, zap.NewNop())

		uploaded, err := s.Upload(context.Background(), "store-1", "logo.png", "image/png", 42, strings.NewReader("png"))
		require.NoError(t, err)

		assert.Equal(t, "logo.png", uploaded.Name)
		assert.Equal(t, int64(42), uploaded.Size)
		assert.Contains(t, uploaded.URL, "https://media.example.com/store-1/")
		assert.True(t, strings.HasSuffix(uploaded.ObjectKey, ".png"))
		assert.True(t, storage.objects[uploaded.ObjectKey])
	})

	t.Run("removes the object when the record cannot be written", func(t *testing.T) {
		storage := newStubStorage()
		repository := newStubRepository()
		repository.createErr = errors.New("write concern failure")
		s := New(repository, storage, zap.NewNop())

		_, err := s.Upload(context.Background(), "store-1", "logo.png", "image/png", 42, strings.NewReader("png"))
		require.Error(t, err)
		assert.Empty(t, storage.objects)
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes object then record", func(t *testing.T) {
		storage := newStubStorage()
		repository := newStubRepository()
		s := New(repository, storage, zap.NewNop())

		uploaded, err := s.Upload(context.Background(), "store-1", "logo.png", "image/png", 42, strings.NewReader("png"))
		require.NoError(t, err)

		require.NoError(t, s.Delete(context.Background(), "store-1", uploaded.ID))
		assert.Empty(t, storage.objects)
		assert.Empty(t, repository.files)
	})

	t.Run("keeps the record when the remote delete fails", func(t *testing.T) {
		storage := newStubStorage()
		repository := newStubRepository()
		s := New(repository, storage, zap.NewNop())

		uploaded, err := s.Upload(context.Background(), "store-1", "logo.png", "image/png", 42, strings.NewReader("png"))
		require.NoError(t, err)

		storage.removeErr = errors.New("connection refused")
		require.Error(t, s.Delete(context.Background(), "store-1", uploaded.ID))
		assert.Len(t, repository.files, 1)
	})

	t.Run("other tenant gets not found", func(t *testing.T) {
		storage := newStubStorage()
		s := New(newStubRepository(), storage, zap.NewNop())

		uploaded, err := s.Upload(context.Background(), "store-1", "logo.png", "image/png", 42, strings.NewReader("png"))
		require.NoError(t, err)

		assert.ErrorIs(t, s.Delete(context.Background(), "store-2", uploaded.ID), apperror.ErrNotFound)
	})
}
