package handler

import (
	"context"
	"net/http"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	jwtauth "github.com/arminmzh/storeforge-backend/internal/auth/jwt"
	"github.com/arminmzh/storeforge-backend/internal/category"
	"github.com/arminmzh/storeforge-backend/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	Create(ctx context.Context, data category.Category) (*category.Category, error)
	List(ctx context.Context, storeID string) ([]category.Category, error)
	GetByID(ctx context.Context, storeID, id string) (*category.Category, error)
	Update(ctx context.Context, storeID, id string, patch category.Patch) (*category.Category, error)
	AttachChild(ctx context.Context, storeID, parentID, childID string) (*category.Category, error)
	DetachChild(ctx context.Context, storeID, parentID, childID string) (*category.Category, error)
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

// Tree membership changes only through the child endpoints; the plain
// PATCH cannot carry a children array.
func (h *handler) Register(router chi.Router) {
	router.Route("/categories", func(categoryRouter chi.Router) {
		categoryRouter.Use(h.authMiddleware)

		categoryRouter.Get("/", apperror.Middleware(h.listHandler))
		categoryRouter.Post("/", apperror.Middleware(h.createHandler))
		categoryRouter.Get("/{id}", apperror.Middleware(h.getHandler))
		categoryRouter.Patch("/{id}", apperror.Middleware(h.updateHandler))
		categoryRouter.Delete("/{id}", apperror.Middleware(h.deleteHandler))
		categoryRouter.Post("/{id}/children", apperror.Middleware(h.attachChildHandler))
		categoryRouter.Delete("/{id}/children/{childID}", apperror.Middleware(h.detachChildHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		categories
// @Success	200		{object}	category.CategoriesResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/categories [get]
func (h *handler) listHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	categories, err := h.service.List(r.Context(), claims.StoreID)
	if err != nil {
		return err
	}

	render.JSON(w, r, category.CategoriesResponse{Categories: categories})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		categories
// @Param		request	body		CategoryRequest	true	"request body"
// @Success	201		{object}	category.CategoryResponse
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/categories [post]
func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CategoryRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	created, err := h.service.Create(r.Context(), category.Category{
		StoreID: claims.StoreID,
		Name:    dto.Name,
	})
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, category.CategoryResponse{Category: *created})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		categories
// @Param		id	path		string	true	"category id"
// @Success	200		{object}	category.CategoryResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/categories/{id} [get]
func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	existing, err := h.service.GetByID(r.Context(), claims.StoreID, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, category.CategoryResponse{Category: *existing})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		categories
// @Param		id		path		string					true	"category id"
// @Param		request	body		CategoryPatchRequest	true	"request body"
// @Success	200		{object}	category.CategoryResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/categories/{id} [patch]
func (h *handler) updateHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CategoryPatchRequest
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

	render.JSON(w, r, category.CategoryResponse{Category: *updated})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		categories
// @Param		id		path		string				true	"parent category id"
// @Param		request	body		AttachChildRequest	true	"request body"
// @Success	200		{object}	category.CategoryResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/categories/{id}/children [post]
func (h *handler) attachChildHandler(w http.ResponseWriter, r *http.Request) error {
	var dto AttachChildRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	updated, err := h.service.AttachChild(r.Context(), claims.StoreID, chi.URLParam(r, "id"), dto.ChildID)
	if err != nil {
		return err
	}

	render.JSON(w, r, category.CategoryResponse{Category: *updated})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		categories
// @Param		id		path		string	true	"parent category id"
// @Param		childID	path		string	true	"child category id"
// @Success	200		{object}	category.CategoryResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/categories/{id}/children/{childID} [delete]
func (h *handler) detachChildHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	updated, err := h.service.DetachChild(r.Context(), claims.StoreID, chi.URLParam(r, "id"), chi.URLParam(r, "childID"))
	if err != nil {
		return err
	}

	render.JSON(w, r, category.CategoryResponse{Category: *updated})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		categories
// @Param		id	path		string	true	"category id"
// @Success	200		{object}	MessageResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/categories/{id} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	if err := h.service.Delete(r.Context(), claims.StoreID, chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.JSON(w, r, MessageResponse{Message: "category deleted successfully"})

	return nil
}
