package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/crisisdesk/backend/docs"
	"github.com/crisisdesk/backend/internal/auth"
	"github.com/crisisdesk/backend/internal/cache"
	"github.com/crisisdesk/backend/internal/config"
	"github.com/crisisdesk/backend/internal/handlers"
	"github.com/crisisdesk/backend/internal/logger"
	"github.com/crisisdesk/backend/internal/middlewares"
	"github.com/crisisdesk/backend/internal/models"
	"github.com/crisisdesk/backend/internal/places"
	"github.com/crisisdesk/backend/internal/repositories"
	"github.com/crisisdesk/backend/internal/services"
)

// @title CrisisDesk API
// @version 1.0
// @description Disaster management API: authentication, disaster reports, emergency contacts, resource requests and nearby emergency center search.

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting CrisisDesk API")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize token service. The signing secret is read once at startup
	// and immutable for the process lifetime.
	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// Initialize the Redis-backed proximity cache. The cache degrades per
	// call, so a Redis outage at boot only costs a warning, not the cache.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Warn("Redis unavailable at startup, proximity cache degraded", zap.Error(err))
	}
	centersCache := cache.NewPlacesCache(redisClient, cfg.Places.CacheTTL, logger.Logger)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	reportRepo := repositories.NewReportRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	resourceRepo := repositories.NewResourceRepository(db)

	// Initialize services
	placesClient := places.NewClient(cfg.Places.BaseURL, cfg.Places.Timeout)
	authService := services.NewAuthService(userRepo, tokens, logger.Logger)
	proximityService := services.NewProximityService(placesClient, centersCache, logger.Logger)
	reportService := services.NewReportService(reportRepo)
	contactService := services.NewContactService(contactRepo)
	resourceService := services.NewResourceService(resourceRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger.Logger)
	centerHandler := handlers.NewCenterHandler(proximityService, logger.Logger)
	reportHandler := handlers.NewReportHandler(reportService, logger.Logger)
	contactHandler := handlers.NewContactHandler(contactService, logger.Logger)
	resourceHandler := handlers.NewResourceHandler(resourceService, logger.Logger)

	// Initialize auth middleware
	authMiddleware := auth.Middleware(tokens)
	responderMiddleware := auth.RequireRoles(tokens, models.RoleAdmin, models.RoleEmergencyResponder)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestID)
	r.Use(middlewares.RequestLogger(logger.Logger))
	r.Use(middlewares.Recovery(logger.Logger))
	r.Use(middlewares.CORS(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimit(1 * 1024 * 1024)) // 1MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		authHandler.RegisterRoutes(r)
		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			centerHandler.RegisterRoutes(r)
			reportHandler.RegisterRoutes(r)
			contactHandler.RegisterRoutes(r)
			resourceHandler.RegisterRoutes(r)
		})
		// Responder-only routes
		r.Group(func(r chi.Router) {
			r.Use(responderMiddleware)
			resourceHandler.RegisterResponderRoutes(r)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "crisisdesk_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
