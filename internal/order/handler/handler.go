package handler

import (
	"context"
	"net/http"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	jwtauth "github.com/arminmzh/storeforge-backend/internal/auth/jwt"
	"github.com/arminmzh/storeforge-backend/internal/handlers"
	"github.com/arminmzh/storeforge-backend/internal/order"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	Create(ctx context.Context, data order.Order) (*order.Order, error)
	List(ctx context.Context, storeID string) ([]order.Order, error)
	GetByID(ctx context.Context, storeID, id string) (*order.Order, error)
	Update(ctx context.Context, storeID, id string, patch order.Patch) (*order.Order, error)
	Delete(ctx context.Context, storeID, id string) error
}

type handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
	logger         *zap.Logger
}

func New(service Service, authMiddleware func(http.Handler) http.Handler, logger *zap.Logger) handlers.Handler {
	return &handler{
		service:        service,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/orders", func(orderRouter chi.Router) {
		orderRouter.Use(h.authMiddleware)

		orderRouter.Get("/", apperror.Middleware(h.listHandler))
		orderRouter.Post("/", apperror.Middleware(h.createHandler))
		orderRouter.Get("/{id}", apperror.Middleware(h.getHandler))
		orderRouter.Patch("/{id}", apperror.Middleware(h.updateHandler))
		orderRouter.Delete("/{id}", apperror.Middleware(h.deleteHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		orders
// @Success	200		{object}	order.OrdersResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/orders [get]
func (h *handler) listHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	orders, err := h.service.List(r.Context(), claims.StoreID)
	if err != nil {
		return err
	}

	render.JSON(w, r, order.OrdersResponse{Orders: orders})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		orders
// @Param		request	body		OrderRequest	true	"request body"
// @Success	201		{object}	order.OrderResponse
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/orders [post]
func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	var dto OrderRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	created, err := h.service.Create(r.Context(), dto.ToDomain(claims.StoreID))
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, order.OrderResponse{Order: *created})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		orders
// @Param		id	path		string	true	"order id"
// @Success	200		{object}	order.OrderResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/orders/{id} [get]
func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	existing, err := h.service.GetByID(r.Context(), claims.StoreID, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, order.OrderResponse{Order: *existing})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		orders
// @Param		id		path		string				true	"order id"
// @Param		request	body		OrderPatchRequest	true	"request body"
// @Success	200		{object}	order.OrderResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/orders/{id} [patch]
func (h *handler) updateHandler(w http.ResponseWriter, r *http.Request) error {
	var dto OrderPatchRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	updated, err := h.service.Update(r.Context(), claims.StoreID, chi.URLParam(r, "id"), dto.ToPatch())
	if err != nil {
		return err
	}

	render.JSON(w, r, order.OrderResponse{Order: *updated})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		orders
// @Param		id	path		string	true	"order id"
// @Success	200		{object}	MessageResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/orders/{id} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	if err := h.service.Delete(r.Context(), claims.StoreID, chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.JSON(w, r, MessageResponse{Message: "order deleted successfully"})

	return nil
}
