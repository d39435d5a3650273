package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	"go-jobboard-backend/internal/delivery/http/middleware"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           JobLeet API
// @version         1.0
// @description     Job-board backend serving create and read operations over its reference data.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()
	logger.Log.Info("Starting jobleet backend", zap.String("port", cfg.Port))
	for _, warning := range cfg.Warnings() {
		logger.Log.Warn(warning)
	}

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, database.PoolConfig{
		URL:             cfg.DBUrl,
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
	})
	if err != nil {
		logger.Log.Error("Failed to connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer dbPool.Close()

	db, err := database.NewGormDB(dbPool)
	if err != nil {
		logger.Log.Error("Failed to open ORM session", zap.Error(err))
		os.Exit(1)
	}
	if cfg.DBAutoMigrate {
		if err := postgres.Migrate(db); err != nil {
			logger.Log.Error("Failed to migrate schema", zap.Error(err))
			os.Exit(1)
		}
	}

	// 4. Setup Redis (optional)
	var cachePing usecase.PingFunc
	redisClient, err := redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		redisClient = nil
	case err != nil:
		logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", zap.Error(err))
		redisClient = nil
	default:
		defer redisClient.Close()
		cachePing = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	// 5. Setup Repositories
	emailRepo := postgres.NewEmailRepository(db)
	industryTypeRepo := postgres.NewIndustryTypeRepository(db)
	statusRepo := postgres.NewStatusRepository(db)
	personNameRepo := postgres.NewPersonNameRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// 6. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	healthUC := usecase.NewHealthUsecase(dbPool.Ping, cachePing)

	rateLimiter := middleware.NewRateLimiter(redisClient, logger.Log)
	defer rateLimiter.Close()

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		EmailRepo:        emailRepo,
		IndustryTypeRepo: industryTypeRepo,
		StatusRepo:       statusRepo,
		PersonNameRepo:   personNameRepo,
		UserRepo:         userRepo,
		Validate:         validation.New(),
		AuthUC:           authUC,
		HealthUC:         healthUC,
		RateLimiter:      rateLimiter,
		Logger:           logger.Log,
		Config:           cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("Server exiting")
}
