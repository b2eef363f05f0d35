package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookstore-api/internal/shared/middleware"
	"bookstore-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.CORS(),
	)

	if c.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		c.UserHandler.RegisterRoutes(v1)
		c.AuthorHandler.RegisterRoutes(v1, c.Guards)
		c.BookHandler.RegisterRoutes(v1, c.Guards)
	}

	return router
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}
		if appCtx.Config != nil {
			health["version"] = appCtx.Config.App.Version
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil {
			dbStatus = "disconnected"
		} else if err := appCtx.DB.Ping(ctx); err != nil {
			dbStatus = "unreachable"
		}

		// Check cache; cache tắt không làm service degraded
		cacheStatus := "disabled"
		if appCtx.Cache != nil {
			cacheStatus = "ok"
			if err := appCtx.Cache.Ping(ctx); err != nil {
				cacheStatus = "unreachable"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"cache":    cacheStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
			health["status"] = "degraded"
		} else if cacheStatus == "unreachable" {
			health["status"] = "degraded"
		}

		c.JSON(statusCode, health)
	}
}
