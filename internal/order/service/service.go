package service

import (
	"context"
	"errors"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/order"
	"github.com/arminmzh/storeforge-backend/internal/order/db"
	"go.uber.org/zap"
)

var (
	ErrUnknownStatus        = apperror.NewAppError("unknown order status")
	ErrUnknownPaymentStatus = apperror.NewAppError("unknown payment status")
)

type Repository interface {
	Create(ctx context.Context, data order.Order) (*order.Order, error)
	List(ctx context.Context, storeID string) ([]order.Order, error)
	GetByID(ctx context.Context, storeID, id string) (*order.Order, error)
	Update(ctx context.Context, storeID, id string, patch order.Patch) (*order.Order, error)
	Delete(ctx context.Context, storeID, id string) error
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
	case errors.Is(err, db.ErrOrderNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, db.ErrInvalidID):
		return apperror.ErrInvalidID
	default:
		s.logger.Error("unexpected error when "+op, zap.Error(err))
		return err
	}
}

func (s *service) Create(ctx context.Context, data order.Order) (*order.Order, error) {
	if data.Status == "" {
		data.Status = order.StatusPending
	}
	if data.PaymentStatus == "" {
		data.PaymentStatus = order.PaymentStatusPending
	}

	if !order.KnownStatus(data.Status) {
		return nil, ErrUnknownStatus
	}
	if !order.KnownPaymentStatus(data.PaymentStatus) {
		return nil, ErrUnknownPaymentStatus
	}

	created, err := s.repository.Create(ctx, data)
	if err != nil {
		s.logger.Error("unexpected error when creating order", zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (s *service) List(ctx context.Context, storeID string) ([]order.Order, error) {
	orders, err := s.repository.List(ctx, storeID)
	if err != nil {
		return nil, s.mapErr(err, "listing orders")
	}

	return orders, nil
}

func (s *service) GetByID(ctx context.Context, storeID, id string) (*order.Order, error) {
	existing, err := s.repository.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, s.mapErr(err, "fetching order")
	}

	return existing, nil
}

// Update accepts any known-to-known status change; there is no
// transition table.
func (s *service) Update(ctx context.Context, storeID, id string, patch order.Patch) (*order.Order, error) {
	if patch.Status != nil && !order.KnownStatus(*patch.Status) {
		return nil, ErrUnknownStatus
	}
	if patch.PaymentStatus != nil && !order.KnownPaymentStatus(*patch.PaymentStatus) {
		return nil, ErrUnknownPaymentStatus
	}

	updated, err := s.repository.Update(ctx, storeID, id, patch)
	if err != nil {
		return nil, s.mapErr(err, "updating order")
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, storeID, id string) error {
	if err := s.repository.Delete(ctx, storeID, id); err != nil {
		return s.mapErr(err, "deleting order")
	}

	return nil
}
