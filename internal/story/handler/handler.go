package handler

import (
	"context"
	"net/http"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	jwtauth "github.com/arminmzh/storeforge-backend/internal/auth/jwt"
	"github.com/arminmzh/storeforge-backend/internal/handlers"
	"github.com/arminmzh/storeforge-backend/internal/story"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	Create(ctx context.Context, data story.Story) (*story.Story, error)
	List(ctx context.Context, storeID string) ([]story.Story, error)
	Update(ctx context.Context, storeID, id string, patch story.Patch) (*story.Story, error)
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
	router.Route("/stories", func(storyRouter chi.Router) {
		storyRouter.Use(h.authMiddleware)

		storyRouter.Get("/", apperror.Middleware(h.listHandler))
		storyRouter.Post("/", apperror.Middleware(h.createHandler))
		storyRouter.Patch("/{id}", apperror.Middleware(h.updateHandler))
		storyRouter.Delete("/{id}", apperror.Middleware(h.deleteHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		stories
// @Success	200		{object}	story.StoriesResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/stories [get]
func (h *handler) listHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	stories, err := h.service.List(r.Context(), claims.StoreID)
	if err != nil {
		return err
	}

	render.JSON(w, r, story.StoriesResponse{Stories: stories})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		stories
// @Param		request	body		StoryRequest	true	"request body"
// @Success	201		{object}	story.StoryResponse
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/stories [post]
func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	var dto StoryRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	created, err := h.service.Create(r.Context(), story.Story{
		StoreID: claims.StoreID,
		Title:   dto.Title,
		Image:   dto.Image,
	})
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, story.StoryResponse{Story: *created})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		stories
// @Param		id		path		string				true	"story id"
// @Param		request	body		StoryPatchRequest	true	"request body"
// @Success	200		{object}	story.StoryResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/stories/{id} [patch]
func (h *handler) updateHandler(w http.ResponseWriter, r *http.Request) error {
	var dto StoryPatchRequest
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

	render.JSON(w, r, story.StoryResponse{Story: *updated})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		stories
// @Param		id	path		string	true	"story id"
// @Success	200		{object}	MessageResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/stories/{id} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	if err := h.service.Delete(r.Context(), claims.StoreID, chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.JSON(w, r, MessageResponse{Message: "story deleted successfully"})

	return nil
}
