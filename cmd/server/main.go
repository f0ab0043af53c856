package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	analyticsapp "github.com/packtrack/backend/internal/application/analytics"
	belongingapp "github.com/packtrack/backend/internal/application/belonging"
	scheduleapp "github.com/packtrack/backend/internal/application/schedule"
	suggestionapp "github.com/packtrack/backend/internal/application/suggestion"
	"github.com/packtrack/backend/internal/infrastructure/ai"
	"github.com/packtrack/backend/internal/infrastructure/cache"
	"github.com/packtrack/backend/internal/infrastructure/config"
	"github.com/packtrack/backend/internal/infrastructure/logger"
	"github.com/packtrack/backend/internal/infrastructure/persistence"
	"github.com/packtrack/backend/internal/interfaces/http/handler"
	"github.com/packtrack/backend/internal/interfaces/http/middleware"
	"github.com/packtrack/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting packtrack backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	// Run schema migrations
	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	belongingRepo := persistence.NewGormBelongingRepository(db.DB)
	eventRepo := persistence.NewGormEventRepository(db.DB)
	analyticsRepo := persistence.NewGormAnalyticsRepository(db.DB)

	// Analytics report cache: Redis when enabled, in-process otherwise
	reportCache := cache.NewReportCache(cfg.Redis, log)

	// Remote suggestion client is optional; without it the rule-based
	// fallback answers every request.
	var remote suggestionapp.RemoteSuggester
	if cfg.AI.Enabled {
		remote = ai.NewClient(cfg.AI)
		log.Info("Remote suggestion service enabled",
			zap.String("base_url", cfg.AI.BaseURL),
			zap.String("model", cfg.AI.Model),
		)
	}

	// Initialize application services
	belongingService := belongingapp.NewBelongingService(belongingRepo, reportCache)
	eventService := scheduleapp.NewEventService(eventRepo, reportCache)
	analyticsService := analyticsapp.NewAnalyticsService(analyticsRepo, reportCache)
	suggestionService := suggestionapp.NewSuggestionService(remote, log)

	// Initialize HTTP handlers
	belongingHandler := handler.NewBelongingHandler(belongingService)
	scheduleHandler := handler.NewScheduleHandler(eventService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	suggestionHandler := handler.NewSuggestionHandler(suggestionService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Setup API routes using router
	r := router.NewRouter(engine)

	// Belongings domain (items, categories, tags)
	belongingRoutes := router.NewDomainGroup("belongings", "")
	belongingRoutes.GET("/belongings", belongingHandler.List)
	belongingRoutes.POST("/belongings", belongingHandler.Create)
	belongingRoutes.POST("/belongings/bulk", belongingHandler.CreateBulk)
	belongingRoutes.GET("/belongings/:id", belongingHandler.GetByID)
	belongingRoutes.PUT("/belongings/:id", belongingHandler.Update)
	belongingRoutes.DELETE("/belongings/:id", belongingHandler.Delete)
	belongingRoutes.GET("/categories", belongingHandler.ListCategories)
	belongingRoutes.GET("/tags", belongingHandler.ListTags)

	// Schedule domain (events and their linked belongings)
	scheduleRoutes := router.NewDomainGroup("schedule", "/schedule")
	scheduleRoutes.GET("/events", scheduleHandler.List)
	scheduleRoutes.POST("/events", scheduleHandler.Create)
	scheduleRoutes.GET("/events/:id", scheduleHandler.GetByID)
	scheduleRoutes.PUT("/events/:id", scheduleHandler.Update)
	scheduleRoutes.DELETE("/events/:id", scheduleHandler.Delete)
	scheduleRoutes.GET("/events/:id/belongings", scheduleHandler.LinkedBelongings)

	// Analytics domain (packing progress reports)
	analyticsRoutes := router.NewDomainGroup("analytics", "/analytics")
	analyticsRoutes.GET("/overview", analyticsHandler.Overview)
	analyticsRoutes.GET("/progress", analyticsHandler.Progress)
	analyticsRoutes.GET("/tags", analyticsHandler.TagStats)
	analyticsRoutes.GET("/schedule", analyticsHandler.ScheduleAnalytics)

	// Suggestions domain (packing recommendations)
	suggestionRoutes := router.NewDomainGroup("suggestions", "/suggestions")
	suggestionRoutes.POST("/items", suggestionHandler.SuggestItems)
	suggestionRoutes.POST("/categorize", suggestionHandler.Categorize)
	suggestionRoutes.POST("/tips", suggestionHandler.Tips)

	// System routes (health check)
	systemRoutes := router.NewDomainGroup("system", "")
	systemRoutes.GET("/health", systemHandler.Health)

	// Register all domain groups
	r.Register(belongingRoutes).
		Register(scheduleRoutes).
		Register(analyticsRoutes).
		Register(suggestionRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
