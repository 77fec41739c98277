package handler

import (
	"context"
	"net/http"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	jwtauth "github.com/arminmzh/storeforge-backend/internal/auth/jwt"
	"github.com/arminmzh/storeforge-backend/internal/handlers"
	"github.com/arminmzh/storeforge-backend/internal/trustbadge"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	Create(ctx context.Context, data trustbadge.TrustBadge) (*trustbadge.TrustBadge, error)
	List(ctx context.Context, storeID string) ([]trustbadge.TrustBadge, error)
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
	router.Route("/trust-badges", func(badgeRouter chi.Router) {
		badgeRouter.Use(h.authMiddleware)

		badgeRouter.Get("/", apperror.Middleware(h.listHandler))
		badgeRouter.Post("/", apperror.Middleware(h.createHandler))
		badgeRouter.Delete("/{id}", apperror.Middleware(h.deleteHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		trust-badges
// @Success	200		{object}	trustbadge.TrustBadgesResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/trust-badges [get]
func (h *handler) listHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	badges, err := h.service.List(r.Context(), claims.StoreID)
	if err != nil {
		return err
	}

	render.JSON(w, r, trustbadge.TrustBadgesResponse{TrustBadges: badges})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		trust-badges
// @Param		request	body		TrustBadgeRequest	true	"request body"
// @Success	201		{object}	trustbadge.TrustBadgeResponse
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/trust-badges [post]
func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	var dto TrustBadgeRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	created, err := h.service.Create(r.Context(), trustbadge.TrustBadge{
		StoreID: claims.StoreID,
		TagCode: dto.TagCode,
		Link:    dto.Link,
	})
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, trustbadge.TrustBadgeResponse{TrustBadge: *created})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		trust-badges
// @Param		id	path		string	true	"trust badge id"
// @Success	200		{object}	MessageResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/trust-badges/{id} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	if err := h.service.Delete(r.Context(), claims.StoreID, chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.JSON(w, r, MessageResponse{Message: "trust badge deleted successfully"})

	return nil
}

type MessageResponse struct {
	Message string `json:"message"`
}
