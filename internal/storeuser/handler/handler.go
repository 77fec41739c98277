package handler

import (
	"context"
	"net/http"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	jwtauth "github.com/arminmzh/storeforge-backend/internal/auth/jwt"
	"github.com/arminmzh/storeforge-backend/internal/handlers"
	"github.com/arminmzh/storeforge-backend/internal/storeuser"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	List(ctx context.Context, storeID string) ([]storeuser.StoreUser, error)
	GetByID(ctx context.Context, storeID, id string) (*storeuser.StoreUser, error)
	Update(ctx context.Context, storeID, id string, patch storeuser.Patch) (*storeuser.StoreUser, error)
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

// Customer records are created by the storefront, not here; the admin
// surface is read and curation only.
func (h *handler) Register(router chi.Router) {
	router.Route("/store-users", func(userRouter chi.Router) {
		userRouter.Use(h.authMiddleware)

		userRouter.Get("/", apperror.Middleware(h.listHandler))
		userRouter.Get("/{id}", apperror.Middleware(h.getHandler))
		userRouter.Patch("/{id}", apperror.Middleware(h.updateHandler))
		userRouter.Delete("/{id}", apperror.Middleware(h.deleteHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		store-users
// @Success	200		{object}	storeuser.StoreUsersResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/store-users [get]
func (h *handler) listHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	users, err := h.service.List(r.Context(), claims.StoreID)
	if err != nil {
		return err
	}

	render.JSON(w, r, storeuser.StoreUsersResponse{StoreUsers: users})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		store-users
// @Param		id	path		string	true	"store user id"
// @Success	200		{object}	storeuser.StoreUserResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/store-users/{id} [get]
func (h *handler) getHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	existing, err := h.service.GetByID(r.Context(), claims.StoreID, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, storeuser.StoreUserResponse{StoreUser: *existing})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		store-users
// @Param		id		path		string					true	"store user id"
// @Param		request	body		StoreUserPatchRequest	true	"request body"
// @Success	200		{object}	storeuser.StoreUserResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/store-users/{id} [patch]
func (h *handler) updateHandler(w http.ResponseWriter, r *http.Request) error {
	var dto StoreUserPatchRequest
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

	render.JSON(w, r, storeuser.StoreUserResponse{StoreUser: *updated})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		store-users
// @Param		id	path		string	true	"store user id"
// @Success	200		{object}	MessageResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/store-users/{id} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	if err := h.service.Delete(r.Context(), claims.StoreID, chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.JSON(w, r, MessageResponse{Message: "store user deleted successfully"})

	return nil
}
