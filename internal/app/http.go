package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/credentials"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/provider"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/provider/seller"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/provider/shopper"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/resolver"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/config"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/metrics"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/middleware"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/session"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/storefront"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/utils"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	if cfg.SessionSecret == "" {
		secret, err := utils.RandomString(32)
		if err != nil {
			return nil, nil, err
		}
		logger.Warn("SESSION_SECRET not set, flash and csrf cookies will not survive a restart", nil)
		cfg.SessionSecret = secret
	}

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	router := newRouter(cfg, infra)

	return router, func() error {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return infra.Close(closeCtx)
	}, nil
}

func newRouter(cfg config.Config, infra *Infra) *gin.Engine {
	registry, m := metrics.NewRegistry()

	// ----------------------------
	// Dependencies
	// ----------------------------

	client := api.New(cfg.APIBaseURL, api.WithMetrics(m))

	// tried in this order on every login
	chain := provider.NewChain(
		shopper.New(client),
		seller.New(client),
	)

	manager := auth.NewManager(infra.Store, client, chain.Strategies(), resolver.NewRoleResolver(), m)
	installations := middleware.NewInstallations(manager, session.CookieOptions{
		Path:     "/",
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	shop := storefront.NewHandler(credentials.NewService(client), middleware.NewGuard(m), storefront.Options{
		Secret: cfg.SessionSecret,
		Secure: cfg.CookieSecure,
	})

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.RecoveryWithWriter(logger.Std().WriterLevel(logrus.ErrorLevel)))
	router.Use(requestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler(registry)))

	router.Use(static.Serve("/static", storefront.Assets()))

	// ----------------------------
	// Storefront
	// ----------------------------

	router.Use(middleware.GinInstallation(installations))
	shop.RegisterRoutes(router)

	for _, route := range router.Routes() {
		logger.Debug("route registered", map[string]any{
			"method": route.Method,
			"path":   route.Path,
		})
	}

	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]any{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"ip":       c.ClientIP(),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("request failed", fields)
			return
		}
		logger.Info("request", fields)
	}
}
