package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/app"
	"github.com/arminmzh/storeforge-backend/internal/config"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title						StoreForge Admin API
// @version					1.0
// @description				Multi-tenant e-commerce store-builder admin backend.
// @BasePath					/api
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.MustLoad()

	var log *zap.Logger
	if cfg.Env == "prod" {
		log, _ = zap.NewProduction()
	} else {
		log, _ = zap.NewDevelopment()
	}
	defer log.Sync()

	application := app.NewApp(log, *cfg)

	go func() {
		application.MustRun()
	}()

	log.Info("server started", zap.String("addr", cfg.HTTPServer.Address))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		log.Error("failed to shut down gracefully", zap.Error(err))
	}
}
