package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/auth"
	jwtauth "github.com/arminmzh/storeforge-backend/internal/auth/jwt"
	"github.com/arminmzh/storeforge-backend/internal/provision"
	"github.com/arminmzh/storeforge-backend/internal/store"
	storeservice "github.com/arminmzh/storeforge-backend/internal/store/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound    = apperror.NewUnauthorizedError("user not found")
	ErrInvalidPassword = apperror.NewUnauthorizedError("invalid password")
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockauthservice
type StoreService interface {
	Create(ctx context.Context, data store.Store) (*store.Store, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*store.Store, error)
}

type Provisioner interface {
	Provision(ctx context.Context, storeID, slug string) (*provision.Result, error)
}

type TokenManager interface {
	GenerateToken(claims jwtauth.Claims) (string, error)
}

type PasswordManager interface {
	GenerateHashFromPassword(password []byte) ([]byte, error)
	CompareHashAndPassword(hashedPassword []byte, password []byte) error
}

type service struct {
	storeService    StoreService
	provisioner     Provisioner
	tokenManager    TokenManager
	passwordManager PasswordManager
	logger          *zap.Logger
}

func New(
	storeService StoreService,
	provisioner Provisioner,
	tokenManager TokenManager,
	passwordManager PasswordManager,
	logger *zap.Logger,
) *service {
	return &service{
		storeService:    storeService,
		provisioner:     provisioner,
		tokenManager:    tokenManager,
		passwordManager: passwordManager,
		logger:          logger,
	}
}

// newStoreID generates the opaque tenant identifier stamped on every
// document of the new store.
func newStoreID() string {
	return fmt.Sprintf("store-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// SignUp provisions a complete tenant: storefront repository,
// deployment, env registration, persisted account and a signed token.
// The phone-number check runs first so a duplicate signup fails before
// any external resource is created.
func (s *service) SignUp(ctx context.Context, dto auth.SignUpRequest) (*auth.SignUpResponse, error) {
	_, err := s.storeService.GetByPhoneNumber(ctx, dto.PhoneNumber)
	if err == nil {
		return nil, storeservice.ErrPhoneNumberTaken
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	passHash, err := s.passwordManager.GenerateHashFromPassword([]byte(dto.Password))
	if err != nil {
		return nil, err
	}

	storeID := newStoreID()

	result, err := s.provisioner.Provision(ctx, storeID, dto.Slug)
	if err != nil {
		return nil, err
	}

	created, err := s.storeService.Create(ctx, store.Store{
		StoreID:      storeID,
		Title:        dto.Title,
		PhoneNumber:  dto.PhoneNumber,
		PasswordHash: passHash,
		RepoURL:      result.RepoURL,
		DeployURL:    result.DeployURL,
	})
	if err != nil {
		// the storefront is already live at this point; the attempt
		// record keeps enough state to clean it up out of band
		s.logger.Error("provisioned tenant could not be persisted",
			zap.String("store_id", storeID),
			zap.Error(err),
		)

		return nil, err
	}

	token, err := s.tokenManager.GenerateToken(jwtauth.Claims{
		UserID:    created.ID,
		StoreID:   created.StoreID,
		DeployURL: created.DeployURL,
		RepoURL:   created.RepoURL,
	})
	if err != nil {
		s.logger.Error("unexpected error when generating jwt token", zap.Error(err))
		return nil, err
	}

	return &auth.SignUpResponse{
		Token:     token,
		StoreID:   created.StoreID,
		RepoURL:   created.RepoURL,
		DeployURL: created.DeployURL,
	}, nil
}

func (s *service) Login(ctx context.Context, dto auth.LoginRequest) (*auth.TokenResponse, error) {
	existing, err := s.storeService.GetByPhoneNumber(ctx, dto.PhoneNumber)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	if err := s.passwordManager.CompareHashAndPassword(existing.PasswordHash, []byte(dto.Password)); err != nil {
		return nil, ErrInvalidPassword
	}

	token, err := s.tokenManager.GenerateToken(jwtauth.Claims{
		UserID:    existing.ID,
		StoreID:   existing.StoreID,
		DeployURL: existing.DeployURL,
		RepoURL:   existing.RepoURL,
	})
	if err != nil {
		s.logger.Error("unexpected error when generating jwt token", zap.Error(err))
		return nil, err
	}

	return &auth.TokenResponse{Token: token}, nil
}
