package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/autoforge/dealership-api/internal/application/service"
	"github.com/autoforge/dealership-api/internal/config"
	"github.com/autoforge/dealership-api/internal/infrastructure/database"
	"github.com/autoforge/dealership-api/internal/infrastructure/repository"
	"github.com/autoforge/dealership-api/internal/presentation/http/handler"
	"github.com/autoforge/dealership-api/internal/presentation/http/routes"
	"github.com/autoforge/dealership-api/pkg/email"
	"github.com/autoforge/dealership-api/pkg/storage"
	"github.com/autoforge/dealership-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	dealerRepo := repository.NewDealerRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	contractRepo := repository.NewContractRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	defectReportRepo := repository.NewDefectReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize local file storage for defect attachments
	fileStore, err := storage.NewLocalStore(cfg.Storage.Path, cfg.Storage.BaseURL, cfg.Storage.UploadMaxSize)
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	dealerService := service.NewDealerService(dealerRepo)
	vehicleService := service.NewVehicleService(vehicleRepo, dealerRepo)
	quoteService := service.NewQuoteService(quoteRepo, vehicleRepo, dealerRepo, contractRepo)
	contractService := service.NewContractService(contractRepo, quoteRepo, vehicleRepo, emailService)
	orderService := service.NewOrderService(orderRepo, dealerRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	defectReportService := service.NewDefectReportService(defectReportRepo, vehicleRepo, fileStore)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Dealer:       handler.NewDealerHandler(dealerService),
		Vehicle:      handler.NewVehicleHandler(vehicleService),
		Quote:        handler.NewQuoteHandler(quoteService),
		Contract:     handler.NewContractHandler(contractService),
		Order:        handler.NewOrderHandler(orderService),
		Catalog:      handler.NewCatalogHandler(catalogService),
		DefectReport: handler.NewDefectReportHandler(defectReportService, cfg.Storage.UploadMaxSize),
		User:         handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
