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
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/vr1e/flashcard-study-sub000/docs"
	"github.com/vr1e/flashcard-study-sub000/internal/auth"
	"github.com/vr1e/flashcard-study-sub000/internal/config"
	"github.com/vr1e/flashcard-study-sub000/internal/handlers"
	"github.com/vr1e/flashcard-study-sub000/internal/logger"
	"github.com/vr1e/flashcard-study-sub000/internal/middlewares"
	"github.com/vr1e/flashcard-study-sub000/internal/repositories"
	"github.com/vr1e/flashcard-study-sub000/internal/services"
	"go.uber.org/zap"
)

// @title Flashcard Study API
// @version 1.0
// @description Spaced-repetition flashcard study backend with per-direction scheduling and deck sharing between partners.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
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

	logger.Logger.Info("Starting Flashcard Study Service")

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

	// Initialize JWT token generator
	tokenGenerator := auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize repositories
	progressRepo := repositories.NewProgressRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	cardRepo := repositories.NewCardRepository(db)
	deckRepo := repositories.NewDeckRepository(db)
	partnershipRepo := repositories.NewPartnershipRepository(db)

	// Initialize services
	deckService := services.NewDeckService(deckRepo, cardRepo, progressRepo, partnershipRepo, logger.Logger)
	cardService := services.NewCardService(cardRepo, deckService, logger.Logger)
	studyService := services.NewStudyService(progressRepo, sessionRepo, cardRepo, reviewRepo, deckService, logger.Logger)
	partnershipService := services.NewPartnershipService(partnershipRepo, deckRepo, logger.Logger)
	statsService := services.NewStatsService(reviewRepo, progressRepo, cardRepo, deckService, logger.Logger)

	// Initialize handlers
	deckHandler := handlers.NewDeckHandler(deckService, logger.Logger)
	cardHandler := handlers.NewCardHandler(cardService, logger.Logger)
	studyHandler := handlers.NewStudyHandler(studyService, logger.Logger)
	partnershipHandler := handlers.NewPartnershipHandler(partnershipService, logger.Logger)
	statsHandler := handlers.NewStatsHandler(statsService, logger.Logger)

	// Initialize auth middleware
	authMiddleware := auth.Middleware(tokenGenerator)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(1 * 1024 * 1024)) // 1MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		deckHandler.RegisterRoutes(r, authMiddleware)
		cardHandler.RegisterRoutes(r, authMiddleware)
		studyHandler.RegisterRoutes(r, authMiddleware)
		partnershipHandler.RegisterRoutes(r, authMiddleware)
		statsHandler.RegisterRoutes(r, authMiddleware)
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
		MigrationsTable: "study_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

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
