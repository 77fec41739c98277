package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/arminmzh/storeforge-backend/docs"
	authhandler "github.com/arminmzh/storeforge-backend/internal/auth/handler"
	jwtauth "github.com/arminmzh/storeforge-backend/internal/auth/jwt"
	"github.com/arminmzh/storeforge-backend/internal/auth/password"
	authservice "github.com/arminmzh/storeforge-backend/internal/auth/service"
	blogpostdb "github.com/arminmzh/storeforge-backend/internal/blogpost/db"
	blogposthandler "github.com/arminmzh/storeforge-backend/internal/blogpost/handler"
	blogpostservice "github.com/arminmzh/storeforge-backend/internal/blogpost/service"
	categorydb "github.com/arminmzh/storeforge-backend/internal/category/db"
	categoryhandler "github.com/arminmzh/storeforge-backend/internal/category/handler"
	categoryservice "github.com/arminmzh/storeforge-backend/internal/category/service"
	collectiondb "github.com/arminmzh/storeforge-backend/internal/collection/db"
	collectionhandler "github.com/arminmzh/storeforge-backend/internal/collection/handler"
	collectionservice "github.com/arminmzh/storeforge-backend/internal/collection/service"
	"github.com/arminmzh/storeforge-backend/internal/config"
	filedb "github.com/arminmzh/storeforge-backend/internal/file/db"
	filehandler "github.com/arminmzh/storeforge-backend/internal/file/handler"
	fileservice "github.com/arminmzh/storeforge-backend/internal/file/service"
	filestorage "github.com/arminmzh/storeforge-backend/internal/file/storage"
	"github.com/arminmzh/storeforge-backend/internal/handlers"
	orderdb "github.com/arminmzh/storeforge-backend/internal/order/db"
	orderhandler "github.com/arminmzh/storeforge-backend/internal/order/handler"
	orderservice "github.com/arminmzh/storeforge-backend/internal/order/service"
	"github.com/arminmzh/storeforge-backend/internal/platform/deploy"
	"github.com/arminmzh/storeforge-backend/internal/platform/githost"
	productdb "github.com/arminmzh/storeforge-backend/internal/product/db"
	producthandler "github.com/arminmzh/storeforge-backend/internal/product/handler"
	productservice "github.com/arminmzh/storeforge-backend/internal/product/service"
	"github.com/arminmzh/storeforge-backend/internal/provision"
	provisiondb "github.com/arminmzh/storeforge-backend/internal/provision/db"
	storedb "github.com/arminmzh/storeforge-backend/internal/store/db"
	storehandler "github.com/arminmzh/storeforge-backend/internal/store/handler"
	storeservice "github.com/arminmzh/storeforge-backend/internal/store/service"
	storeuserdb "github.com/arminmzh/storeforge-backend/internal/storeuser/db"
	storeuserhandler "github.com/arminmzh/storeforge-backend/internal/storeuser/handler"
	storeuserservice "github.com/arminmzh/storeforge-backend/internal/storeuser/service"
	storydb "github.com/arminmzh/storeforge-backend/internal/story/db"
	storyhandler "github.com/arminmzh/storeforge-backend/internal/story/handler"
	storyservice "github.com/arminmzh/storeforge-backend/internal/story/service"
	trustbadgedb "github.com/arminmzh/storeforge-backend/internal/trustbadge/db"
	trustbadgehandler "github.com/arminmzh/storeforge-backend/internal/trustbadge/handler"
	trustbadgeservice "github.com/arminmzh/storeforge-backend/internal/trustbadge/service"
	minioclient "github.com/arminmzh/storeforge-backend/pkg/client/minio"
	mongoclient "github.com/arminmzh/storeforge-backend/pkg/client/mongodb"
)

type App struct {
	HTTPServer *http.Server
}

func NewApp(log *zap.Logger, cfg config.Config) *App {
	database, err := mongoclient.New(context.TODO(), mongoclient.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		log.Fatal(err.Error())
	}

	minioClient, err := minioclient.New(minioclient.Config{
		Endpoint:        cfg.Minio.Endpoint,
		AccessKeyID:     cfg.Minio.AccessKeyID,
		SecretAccessKey: cfg.Minio.SecretAccessKey,
		UseSSL:          cfg.Minio.UseSSL,
	})
	if err != nil {
		log.Fatal(err.Error())
	}

	router := chi.NewRouter()

	router.Use(
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowCredentials: cfg.HTTPServer.AllowCredentials,
		}),
		middleware.Recoverer,
	)

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		tokenManager := jwtauth.NewManager(cfg.JWT)
		passwordManager := password.New(log)
		authMiddleware := jwtauth.NewMiddleware(log, tokenManager)

		storeRepository := storedb.New(database, log)
		storeService := storeservice.New(storeRepository, log)

		gitHostClient := githost.New(cfg.GitHost, log)
		deployClient := deploy.New(cfg.Deploy, log)
		attemptRepository := provisiondb.New(database, log)

		provisionService := provision.New(
			gitHostClient,
			deployClient,
			attemptRepository,
			provision.EnvVars{
				MongoURI:     cfg.Mongo.URI,
				JWTSecret:    cfg.JWT.Secret,
				PublicAPIURL: cfg.HTTPServer.PublicAPIURL,
				GitHostToken: cfg.GitHost.Token,
			},
			log,
		)

		authService := authservice.New(storeService, provisionService, tokenManager, passwordManager, log)

		categoryRepository := categorydb.New(database, log)
		productRepository := productdb.New(database, log)

		categoryService := categoryservice.New(categoryRepository, productRepository, log)
		productService := productservice.New(productRepository, categoryService, log)

		collectionRepository := collectiondb.New(database, log)
		collectionService := collectionservice.New(collectionRepository, productService, log)

		orderRepository := orderdb.New(database, log)
		orderService := orderservice.New(orderRepository, log)

		blogPostRepository := blogpostdb.New(database, log)
		blogPostService := blogpostservice.New(blogPostRepository, log)

		storyRepository := storydb.New(database, log)
		storyService := storyservice.New(storyRepository, log)

		trustBadgeRepository := trustbadgedb.New(database, log)
		trustBadgeService := trustbadgeservice.New(trustBadgeRepository, log)

		storeUserRepository := storeuserdb.New(database, log)
		storeUserService := storeuserservice.New(storeUserRepository, log)

		fileRepository := filedb.New(database, log)
		mediaStorage := filestorage.New(minioClient, cfg.Minio, log)
		fileService := fileservice.New(fileRepository, mediaStorage, log)

		for _, h := range []handlers.Handler{
			authhandler.New(authService, log),
			storehandler.New(storeService, authMiddleware, log),
			producthandler.New(productService, authMiddleware, log),
			categoryhandler.New(categoryService, authMiddleware, log),
			collectionhandler.New(collectionService, authMiddleware, log),
			orderhandler.New(orderService, authMiddleware, log),
			blogposthandler.New(blogPostService, authMiddleware, log),
			storyhandler.New(storyService, authMiddleware, log),
			trustbadgehandler.New(trustBadgeService, authMiddleware, log),
			storeuserhandler.New(storeUserService, authMiddleware, log),
			filehandler.New(fileService, authMiddleware, log),
		} {
			h.Register(r)
		}
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
	}
}

func (a *App) MustRun() {
	if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic("failed to start server")
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.HTTPServer.Shutdown(ctx)
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// @Tags		other
// @Success	200		{string}	string
// @Failure	500	{object}	apperror.AppError
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
