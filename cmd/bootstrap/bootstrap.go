package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hello-doctors/config"
	"hello-doctors/internal/converter"
	deliveryHttp "hello-doctors/internal/delivery/http"
	"hello-doctors/internal/delivery/http/handler"
	"hello-doctors/internal/delivery/http/middleware"
	"hello-doctors/internal/infrastructure/cache"
	"hello-doctors/internal/infrastructure/database"
	"hello-doctors/internal/repository"
	"hello-doctors/internal/service"
	"hello-doctors/internal/usecase"
	"hello-doctors/pkg/jwt"
	"hello-doctors/pkg/storage"
	"hello-doctors/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply pending schema migrations
	if err := database.Migrate(db, cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize storage disks and image URL resolution. Admin-managed
	// assets live on the public images disk, user submissions on the
	// upload disk.
	uploadDisk := storage.NewDisk(cfg.Storage.UploadDir, cfg.Storage.UploadBaseURL)
	imageDisk := storage.NewDisk(cfg.Storage.PublicDir, cfg.App.BaseURL+"/images")
	imageResolver := service.NewImageResolver(cfg.App.BaseURL, uploadDisk)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	workingHourRepo := repository.NewWorkingHourRepository()
	searchTagRepo := repository.NewSearchTagRepository()
	cityRepo := repository.NewCityRepository()
	specialtyRepo := repository.NewSpecialtyRepository()
	advertisementRepo := repository.NewAdvertisementRepository()
	siteSettingRepo := repository.NewSiteSettingRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services and converters
	auditService := service.NewAuditService(log, auditLogRepo)
	doctorConverter := converter.NewDoctorConverter(imageResolver)
	specialtyConverter := converter.NewSpecialtyConverter(imageResolver)
	adConverter := converter.NewAdvertisementConverter(imageResolver)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, doctorProfileRepo, workingHourRepo, searchTagRepo, specialtyRepo, auditService, jwtService, redisClient)
	doctorSearchUsecase := usecase.NewDoctorSearchUsecase(db, log, doctorProfileRepo, cityRepo, doctorConverter)
	doctorAdminUsecase := usecase.NewDoctorAdminUsecase(db, log, userRepo, doctorProfileRepo, workingHourRepo, searchTagRepo, specialtyRepo, auditService, doctorConverter)
	cityUsecase := usecase.NewCityUsecase(db, log, cityRepo, auditService)
	specialtyUsecase := usecase.NewSpecialtyUsecase(db, log, specialtyRepo, auditService, specialtyConverter)
	advertisementUsecase := usecase.NewAdvertisementUsecase(db, log, advertisementRepo, auditService, adConverter)
	siteSettingUsecase := usecase.NewSiteSettingUsecase(db, log, siteSettingRepo, auditService)
	userAdminUsecase := usecase.NewUserAdminUsecase(db, log, userRepo, doctorProfileRepo, workingHourRepo, searchTagRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService, uploadDisk)
	doctorHandler := handler.NewDoctorHandler(doctorSearchUsecase)
	doctorAdminHandler := handler.NewDoctorAdminHandler(doctorAdminUsecase, customValidator, imageDisk)
	cityHandler := handler.NewCityHandler(cityUsecase, customValidator)
	specialtyHandler := handler.NewSpecialtyHandler(specialtyUsecase, customValidator, imageDisk)
	advertisementHandler := handler.NewAdvertisementHandler(advertisementUsecase, customValidator)
	siteSettingHandler := handler.NewSiteSettingHandler(siteSettingUsecase, customValidator)
	userHandler := handler.NewUserHandler(userAdminUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		doctorAdminHandler,
		cityHandler,
		specialtyHandler,
		advertisementHandler,
		siteSettingHandler,
		userHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		cfg.Storage.PublicDir,
		cfg.Storage.UploadDir,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	if err := app.RedisClient.Close(); err != nil {
		logrus.Errorf("Failed to close Redis connection: %v", err)
	}

	if sqlDB, err := app.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("Failed to close database connection: %v", err)
		}
	}

	logrus.Info("Server exited")
}
