package handler

import (
	"context"
	"net/http"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	"github.com/arminmzh/storeforge-backend/internal/auth"
	"github.com/arminmzh/storeforge-backend/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	SignUp(ctx context.Context, dto auth.SignUpRequest) (*auth.SignUpResponse, error)
	Login(ctx context.Context, dto auth.LoginRequest) (*auth.TokenResponse, error)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/auth", func(authRouter chi.Router) {
		authRouter.Post("/signup", apperror.Middleware(h.signUpHandler))
		authRouter.Post("/login", apperror.Middleware(h.loginHandler))
	})
}

// @Tags		auth
// @Param		request	body		auth.SignUpRequest	true	"request body"
// @Success	201		{object}	auth.SignUpResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/auth/signup [post]
func (h *handler) signUpHandler(w http.ResponseWriter, r *http.Request) error {
	var dto auth.SignUpRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	response, err := h.service.SignUp(r.Context(), dto)
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response)

	return nil
}

// @Tags		auth
// @Param		request	body		auth.LoginRequest	true	"request body"
// @Success	200		{object}	auth.TokenResponse
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/auth/login [post]
func (h *handler) loginHandler(w http.ResponseWriter, r *http.Request) error {
	var dto auth.LoginRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	response, err := h.service.Login(r.Context(), dto)
	if err != nil {
		return err
	}

	render.JSON(w, r, response)

	return nil
}
