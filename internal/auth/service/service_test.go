package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/auth"
	jwtauth "github.com/arminmzh/storeforge-backend/internal/auth/jwt"
	"github.com/arminmzh/storeforge-backend/internal/provision"
	"github.com/arminmzh/storeforge-backend/internal/store"
	storeservice "github.com/arminmzh/storeforge-backend/internal/store/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type stubStoreService struct {
	existing *store.Store
	getErr   error

	created   *store.Store
	createErr error
}

func (s *stubStoreService) Create(ctx context.Context, data store.Store) (*store.Store, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}

	data.ID = "account-1"
	s.created = &data

	return s.created, nil
}

func (s *stubStoreService) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*store.Store, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}

	return s.existing, nil
}

type stubProvisioner struct {
	result *provision.Result
	err    error
	calls  int
}

func (p *stubProvisioner) Provision(ctx context.Context, storeID, slug string) (*provision.Result, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}

	result := *p.result
	result.StoreID = storeID

	return &result, nil
}

type stubTokenManager struct {
	claims jwtauth.Claims
	err    error
}

func (m *stubTokenManager) GenerateToken(claims jwtauth.Claims) (string, error) {
	if m.err != nil {
		return "", m.err
	}

	m.claims = claims

	return "signed-token", nil
}

type realPasswordManager struct{}

func (realPasswordManager) GenerateHashFromPassword(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, bcrypt.MinCost)
}

func (realPasswordManager) CompareHashAndPassword(hashedPassword, password []byte) error {
	return bcrypt.CompareHashAndPassword(hashedPassword, password)
}

func TestSignUp(t *testing.T) {
	dto := auth.SignUpRequest{
		PhoneNumber: "+15550001111",
		Password:    "sup3rsecret",
		Title:       "Plant Shop",
		Slug:        "plant-shop",
	}

	t.Run("provisions and returns token with tenant urls", func(t *testing.T) {
		stores := &stubStoreService{getErr: apperror.ErrNotFound}
		provisioner := &stubProvisioner{result: &provision.Result{
			RepoName:  "storefront-plant-shop",
			RepoURL:   "https://git.example.com/storefronts/storefront-plant-shop",
			DeployURL: "https://plant-shop.apps.example.com",
		}}
		tokens := &stubTokenManager{}

		s := New(stores, provisioner, tokens, realPasswordManager{}, zap.NewNop())

		response, err := s.SignUp(context.Background(), dto)
		require.NoError(t, err)

		assert.Equal(t, "signed-token", response.Token)
		assert.Equal(t, provisioner.result.RepoURL, response.RepoURL)
		assert.Equal(t, provisioner.result.DeployURL, response.DeployURL)
		assert.True(t, strings.HasPrefix(response.StoreID, "store-"))

		require.NotNil(t, stores.created)
		assert.Equal(t, response.StoreID, stores.created.StoreID)
		assert.NotEqual(t, dto.Password, string(stores.created.PasswordHash))
		assert.NoError(t, bcrypt.CompareHashAndPassword(stores.created.PasswordHash, []byte(dto.Password)))

		assert.Equal(t, "account-1", tokens.claims.UserID)
		assert.Equal(t, response.StoreID, tokens.claims.StoreID)
		assert.Equal(t, response.DeployURL, tokens.claims.DeployURL)
		assert.Equal(t, response.RepoURL, tokens.claims.RepoURL)
	})

	t.Run("taken phone number fails before provisioning", func(t *testing.T) {
		stores := &stubStoreService{existing: &store.Store{ID: "account-1", PhoneNumber: dto.PhoneNumber}}
		provisioner := &stubProvisioner{result: &provision.Result{}}

		s := New(stores, provisioner, &stubTokenManager{}, realPasswordManager{}, zap.NewNop())

		_, err := s.SignUp(context.Background(), dto)
		assert.ErrorIs(t, err, storeservice.ErrPhoneNumberTaken)
		assert.Zero(t, provisioner.calls)
	})

	t.Run("provisioning failure is returned and nothing is persisted", func(t *testing.T) {
		stores := &stubStoreService{getErr: apperror.ErrNotFound}
		provisioner := &stubProvisioner{err: apperror.NewUpstreamErr("deploy")}

		s := New(stores, provisioner, &stubTokenManager{}, realPasswordManager{}, zap.NewNop())

		_, err := s.SignUp(context.Background(), dto)

		var upstreamErr *apperror.UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, "deploy", upstreamErr.Step)
		assert.Nil(t, stores.created)
	})
}

func TestLogin(t *testing.T) {
	passHash, err := bcrypt.GenerateFromPassword([]byte("sup3rsecret"), bcrypt.MinCost)
	require.NoError(t, err)

	existing := &store.Store{
		ID:           "account-1",
		StoreID:      "store-1700000000000-ab12cd34",
		PhoneNumber:  "+15550001111",
		PasswordHash: passHash,
		RepoURL:      "https://git.example.com/storefronts/storefront-plant-shop",
		DeployURL:    "https://plant-shop.apps.example.com",
	}

	tests := []struct {
		name        string
		stores      *stubStoreService
		dto         auth.LoginRequest
		expectedErr error
	}{
		{
			name:   "Success",
			stores: &stubStoreService{existing: existing},
			dto:    auth.LoginRequest{PhoneNumber: existing.PhoneNumber, Password: "sup3rsecret"},
		},
		{
			name:        "Unknown phone number",
			stores:      &stubStoreService{getErr: apperror.ErrNotFound},
			dto:         auth.LoginRequest{PhoneNumber: "+15559998888", Password: "sup3rsecret"},
			expectedErr: ErrUserNotFound,
		},
		{
			name:        "Wrong password",
			stores:      &stubStoreService{existing: existing},
			dto:         auth.LoginRequest{PhoneNumber: existing.PhoneNumber, Password: "wrongpass"},
			expectedErr: ErrInvalidPassword,
		},
		{
			name:        "Repository failure is not masked as auth error",
			stores:      &stubStoreService{getErr: errors.New("connection reset")},
			dto:         auth.LoginRequest{PhoneNumber: existing.PhoneNumber, Password: "sup3rsecret"},
			expectedErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &stubTokenManager{}
			s := New(tt.stores, &stubProvisioner{}, tokens, realPasswordManager{}, zap.NewNop())

			response, err := s.Login(context.Background(), tt.dto)

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "signed-token", response.Token)
			assert.Equal(t, existing.ID, tokens.claims.UserID)
			assert.Equal(t, existing.StoreID, tokens.claims.StoreID)
		})
	}
}
