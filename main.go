package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"quill/config"
	"quill/di"
	"quill/rest"
	"quill/utils/logger"
)

func main() {
	// .env はローカル開発用。無くてもよい
	_ = godotenv.Load()

	log := logger.InitLogger()
	log.Info("Starting server")

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := di.NewApplicationComponents(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to build application components", "error", err)
		os.Exit(1)
	}

	container.ProvisionWorker.Start(ctx)
	if err := container.CacheWarmer.Start(ctx); err != nil {
		log.Error("Failed to start cache warmer", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	rest.RegisterRoutes(e, container, cfg)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("Error starting server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during shutdown", "error", err)
	}

	container.CacheWarmer.Stop()
	container.ProvisionWorker.Shutdown()
	log.Info("Server stopped")
}
