package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "gkbc-backend/internal/api/http"
	"gkbc-backend/internal/config"
	"gkbc-backend/internal/identity"
	"gkbc-backend/internal/logger"
	"gkbc-backend/internal/repository/postgres"
	"gkbc-backend/internal/security"
	"gkbc-backend/internal/service"
	"gkbc-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting GKBC Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

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

	ctx := context.Background()

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Identity Provider
	var provider identity.Provider
	switch cfg.Identity.Provider {
	case "firebase":
		logger.Info("Using Firebase identity provider")
		provider, err = identity.NewFirebaseProvider(ctx, cfg.Identity.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize firebase identity provider", "error", err)
			log.Fatalf("Failed to initialize firebase identity provider: %v", err)
		}
	default:
		logger.Info("Using local identity provider")
		provider = identity.NewLocalProvider(db)
	}

	// Initialize Object Storage
	var objects storage.ObjectStorage
	var filesHandler *httpapi.FilesHandler
	switch cfg.Storage.Type {
	case "gcs":
		logger.Info("Using cloud storage", "bucket", cfg.Storage.Bucket)
		objects, err = storage.NewCloudStorage(ctx, cfg.Storage.CredentialsFile, cfg.Storage.Bucket)
		if err != nil {
			logger.Error("Failed to initialize cloud storage", "error", err)
			log.Fatalf("Failed to initialize cloud storage: %v", err)
		}
	default:
		logger.Info("Using local storage", "upload_dir", cfg.Storage.UploadDir)
		local, err := storage.NewLocalStorage(cfg.Server.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize local storage", "error", err)
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		objects = local
		filesHandler = httpapi.NewFilesHandler(local)
	}

	// Initialize Email Delivery
	sender := service.NewSendGridSender(cfg.SendGrid.APIKey, cfg.SendGrid.From, cfg.SendGrid.FromName)
	dispatcher := service.NewEmailDispatcher(sender, store.EmailLogRepository)

	// Initialize Services
	registrationSvc := service.NewRegistrationService(store.ApplicantRepository, provider, tokenManager)
	paymentSvc := service.NewPaymentService(store.ApplicantRepository, store.PaymentRepository, objects)
	adminSvc := service.NewAdminService(
		store.AdminRepository,
		store.ApplicantRepository,
		store.PaymentRepository,
		store.ReviewRepository,
		store.EmailLogRepository,
		dispatcher,
	)
	memberSvc := service.NewMemberService(store.ApplicantRepository)

	// Initialize HTTP handlers
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Auth:    httpapi.NewAuthHandler(registrationSvc),
		Payment: httpapi.NewPaymentHandler(paymentSvc),
		Admin:   httpapi.NewAdminHandler(adminSvc),
		Member:  httpapi.NewMemberHandler(memberSvc),
		Files:   filesHandler,
		AuthMW:  httpapi.NewAuthMiddleware(tokenManager, adminSvc),
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
