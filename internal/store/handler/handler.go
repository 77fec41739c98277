package handler

import (
	"context"
	"net/http"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	jwtauth "github.com/arminmzh/storeforge-backend/internal/auth/jwt"
	"github.com/arminmzh/storeforge-backend/internal/handlers"
	"github.com/arminmzh/storeforge-backend/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	GetByID(ctx context.Context, id string) (*store.Store, error)
	Update(ctx context.Context, id string, patch store.Patch) (*store.Store, error)
	Delete(ctx context.Context, id string) error
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

// The profile routes act on the account identified by the verified
// token; no account id is ever taken from the request itself.
func (h *handler) Register(router chi.Router) {
	router.Route("/profile", func(profileRouter chi.Router) {
		profileRouter.Use(h.authMiddleware)

		profileRouter.Get("/", apperror.Middleware(h.getProfileHandler))
		profileRouter.Patch("/", apperror.Middleware(h.updateProfileHandler))
		profileRouter.Delete("/", apperror.Middleware(h.deleteProfileHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		profile
// @Success	200		{object}	store.StoreResponse
// @Failure	401,404,500	{object}	apperror.AppError
// @Router		/profile [get]
func (h *handler) getProfileHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	existing, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil {
		return err
	}

	render.JSON(w, r, store.StoreResponse{Store: *existing})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		profile
// @Param		request	body		ProfileRequest	true	"request body"
// @Success	200		{object}	store.StoreResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/profile [patch]
func (h *handler) updateProfileHandler(w http.ResponseWriter, r *http.Request) error {
	var dto ProfileRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	updated, err := h.service.Update(r.Context(), claims.UserID, dto.ToPatch())
	if err != nil {
		return err
	}

	render.JSON(w, r, store.StoreResponse{Store: *updated})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		profile
// @Success	200		{object}	MessageResponse
// @Failure	401,404,500	{object}	apperror.AppError
// @Router		/profile [delete]
func (h *handler) deleteProfileHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	if err := h.service.Delete(r.Context(), claims.UserID); err != nil {
		return err
	}

	render.JSON(w, r, MessageResponse{Message: "store deleted successfully"})

	return nil
}
