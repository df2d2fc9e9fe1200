package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	"portfolio-backend/internal/content"
	"portfolio-backend/internal/delivery/http/middleware"
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/redis"
	"portfolio-backend/pkg/validation"

	goredis "github.com/redis/go-redis/v9"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact form and project listing API for the portfolio site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Setup Logger
	logger.Init()

	// 2. Load Config (fails closed when email settings are missing)
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	ctx := context.Background()

	// 3. Setup Email (one SES client per process)
	sesClient, err := email.NewSESClient(ctx, email.SESConfig{
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.SESEndpoint,
	})
	if err != nil {
		logger.Log.Error("Failed to create SES client", "error", err)
		os.Exit(1)
	}
	notifier, err := email.NewNotifier(email.NewSESSender(sesClient), email.Config{
		Recipient: cfg.EmailTo,
		Sender:    cfg.EmailFrom,
	})
	if err != nil {
		logger.Log.Error("Failed to create email notifier", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional, rate limiting falls back to memory)
	var redisClient *goredis.Client
	var redisPing usecase.PingFunc
	if cfg.UpstashRedisURL != "" {
		redisClient, err = redis.NewClient(ctx, redis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		})
		if err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		} else {
			defer redisClient.Close()
			redisPing = redis.Pinger(redisClient)
		}
	}

	// 5. Load Content
	projects, err := content.Projects()
	if err != nil {
		logger.Log.Error("Failed to load projects", "error", err)
		os.Exit(1)
	}

	// 6. Setup UseCases
	contactUC := usecase.NewContactUsecase(notifier, validation.New(), logger.Log)
	projectUC := usecase.NewProjectUsecase(projects)
	healthUC := usecase.NewHealthUsecase(redisPing)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ProjectUC: projectUC,
		HealthUC:  healthUC,
		Redis:     redisClient,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
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
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
	middleware.StopRateLimitCleanup()

	logger.Log.Info("Server exiting")
}
