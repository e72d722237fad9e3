package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"havenly.backend/internal/config"
	"havenly.backend/internal/infrastructure/advice"
	"havenly.backend/internal/infrastructure/datasources/store"
	"havenly.backend/internal/infrastructure/gateway"
	"havenly.backend/internal/infrastructure/repositories"
	"havenly.backend/internal/interfaces/http/handlers"
	"havenly.backend/internal/interfaces/http/middleware"
	"havenly.backend/internal/observability/metrics"
	"havenly.backend/internal/usecases"
	"havenly.backend/pkg/jwt"
	"havenly.backend/pkg/logger"
	"havenly.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = store.Open
	newMetrics = metrics.NewBookingMetrics
	runServer  = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB   = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if cfg.Database.Seed {
		if err := store.Seed(db); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		log.Println("✅ Demo data seeded")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	watchlistRepo := repositories.NewWatchlistRepository(db)
	verificationRepo := repositories.NewVerificationRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	configRepo := repositories.NewSiteConfigRepository(db)

	// Initialize payment gateway and metrics
	cardSimulator := gateway.NewCardSimulator(cfg.Payment.Latency, cfg.Payment.DeclinedCard)
	bookingMetrics := newMetrics(nil)

	// Initialize the advice client. No API key means canned answers.
	var adviceClient advice.Client
	if cfg.Gemini.APIKey != "" {
		client, err := advice.NewGeminiClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return fmt.Errorf("failed to initialize advice client: %w", err)
		}
		defer client.Close()
		adviceClient = client
	} else {
		log.Println("⚠️ GEMINI_API_KEY not set, advice endpoints return fallback text")
		adviceClient = advice.NewDisabledClient()
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, cfg.Auth.DemoPassword)
	propertyUsecase := usecases.NewPropertyUsecase(propertyRepo, watchlistRepo)
	verificationUsecase := usecases.NewVerificationUsecase(verificationRepo, propertyRepo, userRepo)
	bookingUsecase := usecases.NewBookingUsecase(bookingRepo, propertyRepo, verificationUsecase, cardSimulator, bookingMetrics)
	chatUsecase := usecases.NewChatUsecase(chatRepo, userRepo)
	configUsecase := usecases.NewSiteConfigUsecase(configRepo)
	adviceUsecase := usecases.NewAdviceUsecase(propertyRepo, adviceClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	userHandler := handlers.NewUserHandler(authUsecase)
	propertyHandler := handlers.NewPropertyHandler(propertyUsecase)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)
	bookingHandler := handlers.NewBookingHandler(bookingUsecase)
	chatHandler := handlers.NewChatHandler(chatUsecase)
	configHandler := handlers.NewSiteConfigHandler(configUsecase)
	adviceHandler := handlers.NewAdviceHandler(adviceUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService, userRepo)
	paymentLockMiddleware := middleware.PaymentLockMiddleware(cfg.Payment.LockTTL)
	maintenanceMiddleware := middleware.MaintenanceMiddleware(configUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:           authHandler,
		userHandler:           userHandler,
		propertyHandler:       propertyHandler,
		verificationHandler:   verificationHandler,
		bookingHandler:        bookingHandler,
		chatHandler:           chatHandler,
		configHandler:         configHandler,
		adviceHandler:         adviceHandler,
		authMiddleware:        authMiddleware,
		paymentLockMiddleware: paymentLockMiddleware,
		maintenanceMiddleware: maintenanceMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		sqlDB.Close()
		os.Exit(0)
	}()

	// Start server
	log.Printf("🚀 Havenly Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
