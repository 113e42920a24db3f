package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samlamare/cafechill-api/internal/application/service"
	"github.com/samlamare/cafechill-api/internal/config"
	"github.com/samlamare/cafechill-api/internal/infrastructure/database"
	"github.com/samlamare/cafechill-api/internal/infrastructure/repository"
	"github.com/samlamare/cafechill-api/internal/presentation/http/handler"
	"github.com/samlamare/cafechill-api/internal/presentation/http/routes"
	"github.com/samlamare/cafechill-api/pkg/email"
	"github.com/samlamare/cafechill-api/pkg/oauth"
	"github.com/samlamare/cafechill-api/pkg/printer"
	"github.com/samlamare/cafechill-api/pkg/utils"
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

	// Seed the bootstrap admin and the default menu catalog
	if err := database.SeedDefaultData(db, cfg); err != nil {
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
	menuRepo := repository.NewMenuRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	billRepo := repository.NewBillRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Expired idempotency keys only stop being replayed once they lapse;
	// this sweep keeps the table from growing without bound.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: idempotency key cleanup failed: %v", err)
			}
		}
	}()

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
	})

	// Initialize services
	cartStore := service.NewCartStore()
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	menuService := service.NewMenuService(menuRepo)
	posService := service.NewPOSService(cartStore, menuRepo, saleRepo)
	saleService := service.NewSaleService(saleRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	expenseService := service.NewExpenseService(expenseRepo, billRepo)
	staffService := service.NewStaffService(userRepo, emailService)
	dashboardService := service.NewDashboardService(menuRepo, inventoryRepo, saleRepo, expenseRepo, userRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, saleRepo, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Contact:   handler.NewContactHandler(emailService),
		Menu:      handler.NewMenuHandler(menuService),
		POS:       handler.NewPOSHandler(posService),
		Sale:      handler.NewSaleHandler(saleService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Staff:     handler.NewStaffHandler(staffService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Printer:   handler.NewPrinterHandler(printerService),
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
