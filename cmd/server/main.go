package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/app"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/config"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", map[string]any{
			"error": err.Error(),
		})
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize app", map[string]any{
			"error": err.Error(),
		})
	}

	go func() {
		if err := application.Run(); err != nil {
			logger.Fatal("http server failed", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	logger.Info("storefront started", map[string]any{
		"port":   cfg.AppPort,
		"api":    cfg.APIBaseURL,
		"store":  cfg.StoreDriver,
		"sealed": cfg.StoreSecret != "",
	})

	<-ctx.Done()

	logger.Info("shutdown signal received", nil)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("graceful shutdown failed", map[string]any{
			"error": err.Error(),
		})
	}

	logger.Info("storefront stopped cleanly", nil)
}
