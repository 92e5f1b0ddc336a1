package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"adboard_backend/database"
	"adboard_backend/internal/auth"
	"adboard_backend/internal/config"
	"adboard_backend/internal/handlers"
	"adboard_backend/internal/logger"
	"adboard_backend/internal/middleware"
	"adboard_backend/internal/models"
	"adboard_backend/internal/notifier"
	"adboard_backend/internal/repositories"
	"adboard_backend/internal/routes"
	"adboard_backend/internal/services"
	"adboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	userRepo := repositories.NewUserRepository()

	var notif notifier.Notifier
	notifyTarget := ""
	if cfg.Telegram.Enabled && cfg.Telegram.Token != "" {
		tg, err := notifier.NewTelegramNotifier(cfg.Telegram.Token, gormDB, userRepo)
		if err != nil {
			logger.Fatal("Failed to start telegram notifier", "error", err)
		}
		go tg.Run(context.Background())
		notif = tg
		notifyTarget = strconv.FormatInt(cfg.Telegram.AdminChatID, 10)
	} else if cfg.Email.SMTPHost != "" && cfg.FirstAdmin.Email != "" {
		notif = notifier.NewEmailNotifier(cfg)
		notifyTarget = cfg.FirstAdmin.Email
	} else {
		logger.Warn("No notifier configured, notifications go to the log only")
		notif = &LogNotifier{}
	}

	ginRouter := SetupRouter(cfg, gormDB, notif, notifyTarget)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, handlers and middleware into a
// gin engine. Split out from Run so tests can mount the full router on an
// httptest server.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, notif notifier.Notifier, notifyTarget string) *gin.Engine {
	tokens := auth.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)

	userRepo := repositories.NewUserRepository()
	adRepo := repositories.NewAdRepository()

	serviceContainer := &services.ServiceContainer{
		AuthService: services.NewAuthService(userRepo, tokens, notif, notifyTarget),
		UserService: services.NewUserService(userRepo),
		AdService:   services.NewAdService(adRepo),
	}

	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	appHandlers := &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		AdHandler:   handlers.NewAdHandler(baseHandler, serviceContainer.AdService),
		UserHandler: handlers.NewUserHandler(baseHandler, serviceContainer.UserService),
	}

	mw := &handlers.Middlewares{
		Resolve: middleware.ResolveUser(tokens, userRepo),
		Active:  middleware.RequireActive(),
		Admin:   middleware.RequireAdmin(),
	}

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, mw)

	return ginRouter
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the configured admin account when none exists yet.
// Admins are seeded active; everyone else goes through the verification
// workflow.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdmin.Email
	adminPassword := cfg.FirstAdmin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		Phone:        "",
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}
