package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/arminmzh/storeforge-backend/internal/apperror"
	jwtauth "github.com/arminmzh/storeforge-backend/internal/auth/jwt"
	"github.com/arminmzh/storeforge-backend/internal/file"
	"github.com/arminmzh/storeforge-backend/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// uploads beyond this size are rejected before touching the media host
const maxUploadSize = 32 << 20

type Service interface {
	Upload(ctx context.Context, storeID, name, contentType string, size int64, reader io.Reader) (*file.File, error)
	List(ctx context.Context, storeID string) ([]file.File, error)
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
	router.Route("/files", func(fileRouter chi.Router) {
		fileRouter.Use(h.authMiddleware)

		fileRouter.Get("/", apperror.Middleware(h.listHandler))
		fileRouter.Post("/", apperror.Middleware(h.uploadHandler))
		fileRouter.Delete("/{id}", apperror.Middleware(h.deleteHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		files
// @Success	200		{object}	file.FilesResponse
// @Failure	401,500	{object}	apperror.AppError
// @Router		/files [get]
func (h *handler) listHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	files, err := h.service.List(r.Context(), claims.StoreID)
	if err != nil {
		return err
	}

	render.JSON(w, r, file.FilesResponse{Files: files})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		files
// @Accept		multipart/form-data
// @Param		file	formData	file	true	"file to upload"
// @Success	201		{object}	file.FileResponse
// @Failure	400,401,500	{object}	apperror.AppError
// @Router		/files [post]
func (h *handler) uploadHandler(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	f, header, err := r.FormFile("file")
	if err != nil {
		return apperror.NewAppError(fmt.Sprintf("failed to retrieve file: %s", err.Error()))
	}
	defer f.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	uploaded, err := h.service.Upload(r.Context(), claims.StoreID, header.Filename, contentType, header.Size, f)
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, file.FileResponse{File: *uploaded})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		files
// @Param		id	path		string	true	"file id"
// @Success	200		{object}	MessageResponse
// @Failure	400,401,404,500	{object}	apperror.AppError
// @Router		/files/{id} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	claims := r.Context().Value(jwtauth.ClaimsContextKey{}).(*jwtauth.Claims)

	if err := h.service.Delete(r.Context(), claims.StoreID, chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.JSON(w, r, MessageResponse{Message: "file deleted successfully"})

	return nil
}

type MessageResponse struct {
	Message string `json:"message"`
}
