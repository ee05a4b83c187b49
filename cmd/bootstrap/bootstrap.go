package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mensonones/service-pro-api/config"
	deliveryHttp "github.com/mensonones/service-pro-api/internal/delivery/http"
	"github.com/mensonones/service-pro-api/internal/delivery/http/handler"
	"github.com/mensonones/service-pro-api/internal/delivery/http/middleware"
	"github.com/mensonones/service-pro-api/internal/infrastructure/cache"
	"github.com/mensonones/service-pro-api/internal/infrastructure/database"
	"github.com/mensonones/service-pro-api/internal/infrastructure/queue"
	"github.com/mensonones/service-pro-api/internal/repository"
	"github.com/mensonones/service-pro-api/internal/service"
	"github.com/mensonones/service-pro-api/internal/usecase"
	"github.com/mensonones/service-pro-api/pkg/jwt"
	"github.com/mensonones/service-pro-api/pkg/validator"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Publisher   *queue.RabbitMQPublisher
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

	// Apply schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, err
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize task broker
	publisher, err := queue.NewRabbitMQPublisher(cfg.Broker, logrus.StandardLogger())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to task broker: %w", err)
	}
	app.Publisher = publisher

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, publisher)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer wires repositories, usecases, handlers and the router
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, publisher *queue.RabbitMQPublisher) *http.Server {
	log := logrus.StandardLogger()

	// Initialize JWT verification for identity-provider tokens
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	paymentMethodRepo := repository.NewPaymentMethodRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	// Initialize cross-cutting services
	catalogCache := service.NewCatalogCache(redisClient, log)
	notifier := service.NewNotificationService(publisher, log, cfg.Broker.Timezone)

	// Initialize usecases
	serviceUsecase := usecase.NewServiceUsecase(log, serviceRepo, catalogCache)
	profileUsecase := usecase.NewProfileUsecase(log, userRepo, profileRepo)
	paymentMethodUsecase := usecase.NewPaymentMethodUsecase(log, paymentMethodRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, serviceRepo, profileRepo, paymentMethodRepo, catalogCache, notifier)

	// Initialize handlers
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	paymentMethodHandler := handler.NewPaymentMethodHandler(paymentMethodUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(serviceHandler, profileHandler, paymentMethodHandler, appointmentHandler, authMiddleware, corsMiddleware)
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

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, broker)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	if app.Publisher != nil {
		app.Publisher.Close()
	}
}
