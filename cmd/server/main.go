package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	identityapp "github.com/baletrack/backend/internal/application/identity"
	trackingapp "github.com/baletrack/backend/internal/application/tracking"
	"github.com/baletrack/backend/internal/domain/access"
	"github.com/baletrack/backend/internal/infrastructure/auth"
	"github.com/baletrack/backend/internal/infrastructure/config"
	"github.com/baletrack/backend/internal/infrastructure/logger"
	"github.com/baletrack/backend/internal/infrastructure/persistence"
	"github.com/baletrack/backend/internal/interfaces/http/handler"
	"github.com/baletrack/backend/internal/interfaces/http/middleware"
	"github.com/baletrack/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting BaleTrack Backend",
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
	log.Info("Database connected successfully")

	// Initialize Redis-backed token blacklist for logout revocation
	blacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := blacklist.Close(); err != nil {
			log.Error("Error closing Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	shipmentRepo := persistence.NewGormShipmentRepository(db.DB)
	containerRepo := persistence.NewGormContainerRepository(db.DB)
	baleRepo := persistence.NewGormBaleRepository(db.DB)
	assignmentRepo := persistence.NewGormAssignmentRepository(db.DB)

	// Authorization resolver over the ownership chain
	resolver := access.NewResolver(persistence.NewGormOwnershipLoader(db.DB))

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, companyRepo, jwtService, blacklist, identityapp.AuthServiceConfig{
		MaxLoginAttempts: cfg.Auth.MaxLoginAttempts,
		LockDuration:     cfg.Auth.LockoutDuration,
	}, log)
	userService := identityapp.NewUserService(userRepo, resolver, log)
	companyService := identityapp.NewCompanyService(companyRepo, log)
	purchaseOrderService := trackingapp.NewPurchaseOrderService(purchaseOrderRepo, baleRepo, resolver, log)
	shipmentService := trackingapp.NewShipmentService(shipmentRepo, purchaseOrderRepo, resolver, log)
	containerService := trackingapp.NewContainerService(containerRepo, resolver, log)
	baleService := trackingapp.NewBaleService(baleRepo, resolver, log)
	assignmentService := trackingapp.NewAssignmentService(assignmentRepo, userRepo, resolver, log)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		User:          handler.NewUserHandler(userService),
		Company:       handler.NewCompanyHandler(companyService),
		PurchaseOrder: handler.NewPurchaseOrderHandler(purchaseOrderService),
		Shipment:      handler.NewShipmentHandler(shipmentService),
		Container:     handler.NewContainerHandler(containerService),
		Bale:          handler.NewBaleHandler(baleService),
		Assignment:    handler.NewAssignmentHandler(assignmentService),
		System:        handler.NewSystemHandler(),
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Report JSON field names in validation errors
	middleware.SetupValidator()

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

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Stricter limit on credential endpoints to slow brute forcing
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		engine.Use(middleware.RateLimitPaths(authLimiter,
			"/api/v1/auth/login",
			"/api/v1/auth/signup",
		))
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// JWT authentication guards everything under /api/v1 except the
	// public paths.
	authMiddleware := middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths:      router.PublicPaths(),
		Logger:         log,
	})
	router.Setup(engine, handlers, authMiddleware)

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

// healthHandler reports liveness of the process and its database
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
