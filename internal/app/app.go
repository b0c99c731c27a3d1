package app

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"amora_backend/database"
	"amora_backend/internal/config"
	"amora_backend/internal/handlers"
	"amora_backend/internal/logger"
	"amora_backend/internal/middleware"
	"amora_backend/internal/repositories"
	"amora_backend/internal/routes"
	"amora_backend/internal/services"
	"amora_backend/internal/storage"
	"amora_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("auth.jwt_secret is not set; provider tokens cannot be verified")
	}
	if cfg.Auth.ServiceKey == "" {
		// Mirrors the provider dashboard's warning: uploads and admin
		// calls against the provider API need the privileged key.
		logger.Warn("auth.service_key is not set or is a placeholder; provider admin operations are unavailable")
	}

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
		logger.Fatal("Failed to migrate database schema", "error", err)
	}
	logger.Info("Database schema up to date")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	logger.Info(fmt.Sprintf("📊 Health check: http://localhost:%d/api/health", cfg.Server.Port))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires storage, services, handlers and middleware into a
// ready gin engine. Tests call it directly with their own config and DB.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	photoStore, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.PublicBaseURL,
		Bucket:    cfg.Storage.PhotoBucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize photo storage", "error", err)
	}

	documentStore, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		Bucket:    cfg.Storage.DocumentBucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize document storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type,
		"photo_bucket", cfg.Storage.PhotoBucket, "document_bucket", cfg.Storage.DocumentBucket)

	serviceContainer := initializeServices(cfg, photoStore, documentStore)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)

	auth := middleware.AuthMiddleware(cfg.Auth.JWTSecret)
	routes.RegisterRoutes(ginRouter, appHandlers, auth)

	// Local storage serves uploaded objects straight from disk.
	if cfg.Storage.Type == "local" {
		ginRouter.Static("/files", cfg.Storage.BasePath)
	}

	registerStaticRoutes(ginRouter, cfg)

	return ginRouter
}

func initializeServices(cfg *config.Config, photoStore, documentStore storage.Storage) *services.ServiceContainer {
	profileRepo := repositories.NewProfileRepository()
	swipeRepo := repositories.NewSwipeRepository()
	matchRepo := repositories.NewMatchRepository()
	messageRepo := repositories.NewMessageRepository()
	moderationRepo := repositories.NewModerationRepository()
	photoRepo := repositories.NewPhotoRepository()
	verificationRepo := repositories.NewVerificationRepository()
	interestRepo := repositories.NewInterestRepository()

	photoPolicy := services.UploadPolicy{
		MaxSize:      cfg.Upload.MaxPhotoSize,
		AllowedTypes: cfg.Upload.PhotoTypes,
	}
	documentPolicy := services.UploadPolicy{
		MaxSize:      cfg.Upload.MaxDocumentSize,
		AllowedTypes: cfg.Upload.DocumentTypes,
	}
	signedURLTTL := time.Duration(cfg.Storage.SignedURLTTL) * time.Second

	profileService := services.NewProfileService(profileRepo)
	discoveryService := services.NewDiscoveryService(profileRepo)
	swipeService := services.NewSwipeService(profileRepo, swipeRepo)
	matchService := services.NewMatchService(profileRepo, matchRepo)
	messageService := services.NewMessageService(matchService, messageRepo)
	moderationService := services.NewModerationService(profileRepo, moderationRepo)
	photoService := services.NewPhotoService(profileRepo, photoRepo, photoStore, photoPolicy)
	verificationService := services.NewVerificationService(verificationRepo, documentStore, documentPolicy, signedURLTTL)
	interestService := services.NewInterestService(interestRepo)

	return &services.ServiceContainer{
		ProfileService:      profileService,
		DiscoveryService:    discoveryService,
		SwipeService:        swipeService,
		MatchService:        matchService,
		MessageService:      messageService,
		ModerationService:   moderationService,
		PhotoService:        photoService,
		VerificationService: verificationService,
		InterestService:     interestService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		HealthHandler:       handlers.NewHealthHandler(),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, services.ProfileService),
		DiscoveryHandler:    handlers.NewDiscoveryHandler(baseHandler, services.DiscoveryService),
		SwipeHandler:        handlers.NewSwipeHandler(baseHandler, services.SwipeService),
		MatchHandler:        handlers.NewMatchHandler(baseHandler, services.MatchService),
		MessageHandler:      handlers.NewMessageHandler(baseHandler, services.MessageService),
		ModerationHandler:   handlers.NewModerationHandler(baseHandler, services.ModerationService),
		InterestHandler:     handlers.NewInterestHandler(baseHandler, services.InterestService),
		PhotoHandler:        handlers.NewPhotoHandler(baseHandler, services.PhotoService),
		VerificationHandler: handlers.NewVerificationHandler(baseHandler, services.VerificationService),
	}
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

// registerStaticRoutes serves the built client bundle, falling back to
// index.html for any non-API path so client-side routing works.
func registerStaticRoutes(router *gin.Engine, cfg *config.Config) {
	staticDir := cfg.Server.StaticDir
	if staticDir == "" {
		return
	}

	router.Static("/assets", filepath.Join(staticDir, "assets"))
	router.StaticFile("/", filepath.Join(staticDir, "index.html"))

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	})
}
