package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "carrental-backend/internal/api/http"
	"carrental-backend/internal/config"
	"carrental-backend/internal/jobs"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository/postgres"
	"carrental-backend/internal/scheduler"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
	"carrental-backend/internal/storage"
	"carrental-backend/internal/validator"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Car Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	cacheInvalidator := service.NewLoggingCacheInvalidator()
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.VehicleRepository,
		emailSvc,
		cacheInvalidator,
	)
	catalogSvc := service.NewCatalogService(
		store.VehicleRepository,
		store.ServiceRepository,
		store.LocationRepository,
	)
	authSvc := service.NewAuthService(store.AdminUserRepository, tokenManager)

	// Initialize Image Storage
	imageStore, err := storage.NewLocalImageStore(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize image storage", "error", err)
		log.Fatalf("Failed to initialize image storage: %v", err)
	}
	imageSvc := service.NewVehicleImageService(store.VehicleRepository, imageStore)

	// Initialize HTTP handlers
	bookingValidator := validator.NewBookingValidator()
	bookingHandler := httpapi.NewBookingHandler(bookingSvc, bookingValidator)
	catalogHandler := httpapi.NewCatalogHandler(catalogSvc)
	authHandler := httpapi.NewAuthHandler(authSvc)
	imageHandler := httpapi.NewImageHandler(imageSvc)

	router := httpapi.NewRouter(bookingHandler, catalogHandler, authHandler, imageHandler, tokenManager)

	// Initialize scheduled jobs
	jobRunner := jobs.NewJobRunner(store.BookingRepository, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shut down", "error", err)
	}
	logger.Info("Server stopped")
}
