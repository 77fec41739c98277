package handler

import (
	"context"
	"net/http"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	jwtauth "github.com/arminmzh/storeforge-backend/internal/auth/jwt"
	"github.com/arminmzh/storeforge-backend/internal/collection"
	"github.com/arminmzh/storeforge-backend/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	Create(ctx context.Context, data collection.Collection) (*collection.Collection, error)
	List(ctx context.Context, storeID string) ([]collection.Collection, error)
	GetByID(ctx context.Context, storeID, id string) (*collection.View, error)
	Update(ctx context.Context, storeID, id string, patch collection.Patch) (*collection.Collection, error)
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
	router.Route("/collections", func(collectionRouter chi.Router) {
		collectionRouter.Use(h.authMiddleware)

		collectionRouter.Get("/", apperror.Middleware(h.listHandler))
		collectionRouter.Post("/", apperror.Middleware(h.createHandler))
		collectionRouter.Get("/{id}", apperror.Middleware(h.getHandler))
		collectionRouter.Patch("/{id}", apperror.Middleware(h.updateHandler))
		collectionRouter.Delete("/{id}", apperror.Middleware(h.deleteHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		collections
// @Success	200		{object}	collection.CollectionsResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/collections [get]
func (h *handler) listHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	collections, err := h.service.List(r.Context(), claims.StoreID)
	if err != nil {
		return err
	}

	render.JSON(w, r, collection.CollectionsResponse{Collections: collections})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		collections
// @Param		request	body		CollectionRequest	true	"request body"
// @Success	201		{object}	collection.Collection
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/collections [post]
func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CollectionRequest
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
	render.JSON(w, r, created)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		collections
// @Param		id	path		string	true	"collection id"
// @Success	200		{object}	collection.CollectionResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/collections/{id} [get]
func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	existing, err := h.service.GetByID(r.Context(), claims.StoreID, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, collection.CollectionResponse{Collection: *existing})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		collections
// @Param		id		path		string					true	"collection id"
// @Param		request	body		CollectionPatchRequest	true	"request body"
// @Success	200		{object}	collection.Collection
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/collections/{id} [patch]
func (h *handler) updateHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CollectionPatchRequest
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

	render.JSON(w, r, updated)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		collections
// @Param		id	path		string	true	"collection id"
// @Success	200		{object}	MessageResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/collections/{id} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	if err := h.service.Delete(r.Context(), claims.StoreID, chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.JSON(w, r, MessageResponse{Message: "collection deleted successfully"})

	return nil
}
