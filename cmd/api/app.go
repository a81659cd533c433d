package main

import (
	"net/http"
	"os"

	"luxehub-properties/internal/handlers"
	"luxehub-properties/internal/middleware"
	"luxehub-properties/internal/repositories"
	"luxehub-properties/internal/services"
	"luxehub-properties/internal/validators"
	"luxehub-properties/pkg/cache"
	"luxehub-properties/pkg/config"
	"luxehub-properties/pkg/database"
	"luxehub-properties/pkg/logger"
	"luxehub-properties/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	PropertyHandler *handlers.PropertyHandler
	OwnerHandler    *handlers.OwnerHandler
	ImageHandler    *handlers.PropertyImageHandler
	TraceHandler    *handlers.PropertyTraceHandler
	UserHandler     *handlers.UserHandler
	RateLimiter     *middleware.RateLimiter
	Server          *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize the Redis cache
func (a *App) initializeCache() {
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// repositories
	propertyRepo := repositories.NewPropertyRepository(database.DB)
	ownerRepo := repositories.NewOwnerRepository(database.DB)
	imageRepo := repositories.NewPropertyImageRepository(database.DB)
	traceRepo := repositories.NewPropertyTraceRepository(database.DB)
	userRepo := repositories.NewUserRepository(database.DB)
	propertyCache := repositories.NewPropertyCache()

	// validators
	propertyValidator := validators.NewPropertyValidator()
	ownerValidator := validators.NewOwnerValidator()
	imageValidator := validators.NewPropertyImageValidator()
	traceValidator := validators.NewPropertyTraceValidator()
	userValidator := validators.NewUserValidator()

	// services
	propertyService := services.NewPropertyService(
		propertyRepo, ownerRepo, imageRepo, traceRepo,
		propertyCache, propertyValidator,
		a.Config.ListTTL(), a.Config.PropertyTTL(),
	)
	ownerService := services.NewOwnerService(ownerRepo, ownerValidator)
	imageService := services.NewPropertyImageService(imageRepo, propertyRepo, propertyCache, imageValidator)
	traceService := services.NewPropertyTraceService(traceRepo, propertyRepo, traceValidator)
	userService := services.NewUserService(userRepo, userValidator, a.Config.JWT.Secret)

	// handlers
	a.PropertyHandler = handlers.NewPropertyHandler(propertyService)
	a.OwnerHandler = handlers.NewOwnerHandler(ownerService)
	a.ImageHandler = handlers.NewPropertyImageHandler(imageService)
	a.TraceHandler = handlers.NewPropertyTraceHandler(traceService)
	a.UserHandler = handlers.NewUserHandler(userService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	database.CloseDB()
	cache.CloseRedis()
}
