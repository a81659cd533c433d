package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"luxehub-properties/internal/middleware"
	"luxehub-properties/pkg/cache"
	"luxehub-properties/pkg/database"
	"luxehub-properties/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "net/http/pprof"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupOperationalRoutes()
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// setupOperationalRoutes exposes metrics and profiling endpoints
func (a *App) setupOperationalRoutes() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if os.Getenv("ENV") != "production" {
		a.Router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := database.MongoClient.Ping(ctx, nil); err != nil {
			logger.GlobalLogger.Errorf("MongoDB ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
			return
		}

		if _, err := cache.RedisClient.Ping(ctx).Result(); err != nil {
			logger.GlobalLogger.Errorf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		// Public routes
		api.POST("/register", a.UserHandler.Register)
		api.POST("/login", a.UserHandler.Login)

		authRequired := middleware.AuthMiddleware(a.Config.JWT.Secret)

		properties := api.Group("/properties")
		properties.Use(authRequired)
		{
			properties.GET("", a.PropertyHandler.ListProperties)
			properties.GET("/:id", a.PropertyHandler.GetPropertyByID)
			properties.GET("/:id/images", a.PropertyHandler.ListPropertyImages)
			properties.GET("/:id/traces", a.PropertyHandler.ListPropertyTraces)
			properties.POST("", a.PropertyHandler.CreateProperty)
		}

		owners := api.Group("/owners")
		owners.Use(authRequired)
		{
			owners.GET("", a.OwnerHandler.ListOwners)
			owners.GET("/:id", a.OwnerHandler.GetOwnerByID)
			owners.POST("", a.OwnerHandler.CreateOwner)
		}

		images := api.Group("/property-images")
		images.Use(authRequired)
		{
			images.GET("", a.ImageHandler.ListImages)
			images.GET("/:id", a.ImageHandler.GetImageByID)
			images.POST("", a.ImageHandler.CreateImage)
		}

		traces := api.Group("/property-traces")
		traces.Use(authRequired)
		{
			traces.GET("/:id", a.TraceHandler.GetTraceByID)
			traces.POST("", a.TraceHandler.CreateTrace)
		}
	}
}
