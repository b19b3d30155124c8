package main

import (
	"log"
	"net/http"

	"waypath-be/internal/cache"
	"waypath-be/internal/config"
	"waypath-be/internal/controllers"
	"waypath-be/internal/database"
	"waypath-be/internal/middleware"
	"waypath-be/internal/repository"
	"waypath-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Create tables and uniqueness constraints if missing
	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	pathRepo := repository.NewPathRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	pathService := service.NewPathService(pathRepo)
	telemetryService := service.NewTelemetryService()
	statsService := service.NewStatsService(statsRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	pathController := controllers.NewPathController(pathService)
	telemetryController := controllers.NewTelemetryController(telemetryService)
	statsController := controllers.NewStatsController(statsService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router; RedirectTrailingSlash (on by default) folds
	// trailing-slash variants onto the canonical routes
	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// Health check must round-trip to the store, otherwise "service up,
	// store down" would look healthy
	router.GET("/health", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Auth routes with stricter rate limiting
	auth := router.Group("/auth")
	auth.Use(authRateLimiter.LimitMiddleware())
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Path, telemetry and stats routes with general rate limiting
	api := router.Group("")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		api.POST("/paths", pathController.SavePath)
		api.GET("/paths", pathController.ListPaths)
		api.GET("/telemetry/latest", telemetryController.Latest)
		api.GET("/stats/overview", statsController.Overview)
	}

	addr := ":" + cfg.Port
	log.Printf("Server starting on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
