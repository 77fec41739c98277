package handler

import (
	"context"
	"net/http"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	jwtauth "github.com/arminmzh/storeforge-backend/internal/auth/jwt"
	"github.com/arminmzh/storeforge-backend/internal/handlers"
	"github.com/arminmzh/storeforge-backend/internal/product"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	Create(ctx context.Context, data product.Product) (*product.View, error)
	List(ctx context.Context, storeID string) ([]product.View, error)
	GetByID(ctx context.Context, storeID, id string) (*product.View, error)
	Update(ctx context.Context, storeID, id string, patch product.Patch) (*product.View, error)
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
	router.Route("/products", func(productRouter chi.Router) {
		productRouter.Use(h.authMiddleware)

		productRouter.Get("/", apperror.Middleware(h.listHandler))
		productRouter.Post("/", apperror.Middleware(h.createHandler))
		productRouter.Get("/{id}", apperror.Middleware(h.getHandler))
		productRouter.Patch("/{id}", apperror.Middleware(h.updateHandler))
		productRouter.Delete("/{id}", apperror.Middleware(h.deleteHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		products
// @Success	200		{object}	product.ProductsResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/products [get]
func (h *handler) listHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	products, err := h.service.List(r.Context(), claims.StoreID)
	if err != nil {
		return err
	}

	render.JSON(w, r, product.ProductsResponse{Products: products})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		products
// @Param		request	body		ProductRequest	true	"request body"
// @Success	201		{object}	product.ProductResponse
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/products [post]
func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	var dto ProductRequest
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
	render.JSON(w, r, product.ProductResponse{Product: *created})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		products
// @Param		id	path		string	true	"product id"
// @Success	200		{object}	product.ProductResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/products/{id} [get]
func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	existing, err := h.service.GetByID(r.Context(), claims.StoreID, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, product.ProductResponse{Product: *existing})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		products
// @Param		id		path		string				true	"product id"
// @Param		request	body		ProductPatchRequest	true	"request body"
// @Success	200		{object}	product.ProductResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/products/{id} [patch]
func (h *handler) updateHandler(w http.ResponseWriter, r *http.Request) error {
	var dto ProductPatchRequest
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

	render.JSON(w, r, product.ProductResponse{Product: *updated})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		products
// @Param		id	path		string	true	"product id"
// @Success	200		{object}	MessageResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/products/{id} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	if err := h.service.Delete(r.Context(), claims.StoreID, chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.JSON(w, r, MessageResponse{Message: "product deleted successfully"})

	return nil
}
