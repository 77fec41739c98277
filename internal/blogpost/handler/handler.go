package handler

import (
	"context"
	"net/http"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	jwtauth "github.com/arminmzh/storeforge-backend/internal/auth/jwt"
	"github.com/arminmzh/storeforge-backend/internal/blogpost"
	"github.com/arminmzh/storeforge-backend/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	Create(ctx context.Context, data blogpost.BlogPost) (*blogpost.BlogPost, error)
	List(ctx context.Context, storeID string) ([]blogpost.BlogPost, error)
	GetByID(ctx context.Context, storeID, id string) (*blogpost.BlogPost, error)
	Update(ctx context.Context, storeID, id string, patch blogpost.Patch) (*blogpost.BlogPost, error)
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

// The post id always travels in the URL path.
func (h *handler) Register(router chi.Router) {
	router.Route("/blog", func(blogRouter chi.Router) {
		blogRouter.Use(h.authMiddleware)

		blogRouter.Get("/", apperror.Middleware(h.listHandler))
		blogRouter.Post("/", apperror.Middleware(h.createHandler))
		blogRouter.Get("/{id}", apperror.Middleware(h.getHandler))
		blogRouter.Patch("/{id}", apperror.Middleware(h.updateHandler))
		blogRouter.Delete("/{id}", apperror.Middleware(h.deleteHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		blog
// @Success	200		{object}	blogpost.BlogPostsResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/blog [get]
func (h *handler) listHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	posts, err := h.service.List(r.Context(), claims.StoreID)
	if err != nil {
		return err
	}

	render.JSON(w, r, blogpost.BlogPostsResponse{BlogPosts: posts})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		blog
// @Param		request	body		BlogPostRequest	true	"request body"
// @Success	201		{object}	blogpost.BlogPostResponse
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/blog [post]
func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	var dto BlogPostRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	created, err := h.service.Create(r.Context(), dto.ToDomain(claims.StoreID, claims.UserID))
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, blogpost.BlogPostResponse{BlogPost: *created})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		blog
// @Param		id	path		string	true	"blog post id"
// @Success	200		{object}	blogpost.BlogPostResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/blog/{id} [get]
func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	existing, err := h.service.GetByID(r.Context(), claims.StoreID, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, blogpost.BlogPostResponse{BlogPost: *existing})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		blog
// @Param		id		path		string					true	"blog post id"
// @Param		request	body		BlogPostPatchRequest	true	"request body"
// @Success	200		{object}	blogpost.BlogPostResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/blog/{id} [patch]
func (h *handler) updateHandler(w http.ResponseWriter, r *http.Request) error {
	var dto BlogPostPatchRequest
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

	render.JSON(w, r, blogpost.BlogPostResponse{BlogPost: *updated})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		blog
// @Param		id	path		string	true	"blog post id"
// @Success	200		{object}	MessageResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/blog/{id} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	if err := h.service.Delete(r.Context(), claims.StoreID, chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.JSON(w, r, MessageResponse{Message: "blog post deleted successfully"})

	return nil
}
