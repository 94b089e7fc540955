package app

import (
	"fmt"

	"bidfield/database"
	"bidfield/internal/config"
	"bidfield/internal/email"
	"bidfield/internal/handlers"
	"bidfield/internal/logger"
	"bidfield/internal/middleware"
	"bidfield/internal/repositories"
	"bidfield/internal/routes"
	"bidfield/internal/services"
	"bidfield/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
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
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает все слои приложения и возвращает готовый *gin.Engine.
// Вынесен отдельно, чтобы интеграционные тесты могли поднять сервер
// поверх тестовой БД.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(cfg)
		logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = email.NewNoopProvider()
		logger.Warn("SMTP disabled, emails will be logged and dropped")
	}

	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository(gormDB)
	projectRepo := repositories.NewProjectRepository(gormDB)
	bidRepo := repositories.NewBidRepository(gormDB)
	deliverableRepo := repositories.NewDeliverableRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)

	// --- Инициализация сервисов ---
	notificationService := services.NewNotificationService(notificationRepo, emailProvider, cfg)

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo),
		ProjectService:      services.NewProjectService(projectRepo, bidRepo, userRepo, notificationService),
		BidService:          services.NewBidService(bidRepo, projectRepo, userRepo, notificationService),
		DeliverableService:  services.NewDeliverableService(deliverableRepo, projectRepo),
		DashboardService:    services.NewDashboardService(projectRepo, bidRepo, userRepo),
		NotificationService: notificationService,
		EmailService:        emailProvider,
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, sc.AuthService),
		ProjectHandler:      handlers.NewProjectHandler(baseHandler, sc.ProjectService, sc.BidService, sc.DeliverableService),
		DashboardHandler:    handlers.NewDashboardHandler(baseHandler, sc.DashboardService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, sc.NotificationService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
