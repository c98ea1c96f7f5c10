package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"queuesmart/api/routes"
	_ "queuesmart/docs"
	"queuesmart/internal/dashboard"
	"queuesmart/internal/shared/config"
	"queuesmart/internal/shared/middleware"
	"queuesmart/internal/telemetry"
	"queuesmart/pkg/cache"
	"queuesmart/pkg/llm"
	"queuesmart/pkg/logger"
	"queuesmart/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// @title QueueSmart API
// @version 1.0
// @description Canteen queue predictions and simulated occupancy series.
// @BasePath /api/v1
func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	envErr := godotenv.Load()

	// Load config
	cfg := config.Load()

	if envErr != nil {
		if cfg.IsProduction() || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	// Set Gin mode (debug/release)
	gin.SetMode(cfg.GinMode)

	// Rebuild the logger now that gin mode and LOG_LEVEL are known
	appLogger = logger.New()
	logger.SetDefault(appLogger)

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Redis is optional: it backs rate limiting and shared sessions
	var (
		redisClient  *redis.Client
		cacheService cache.Service
	)
	if cfg.Redis.Enabled {
		client, err := cache.NewClient(rootCtx, cache.NewConfigFromRedisConfig(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Addr:     cfg.Redis.Addr,
		}))
		if err != nil {
			appLogger.Error("Failed to connect to Redis, continuing without it", slog.Any("error", err))
		} else {
			redisClient = client
			cacheService = cache.NewService(client)
			defer redisClient.Close()
			appLogger.Info("✅ Redis connected", slog.String("addr", cfg.Redis.Addr))
		}
	}

	// Generative responder
	var responder llm.Responder
	gemini, err := llm.NewGeminiResponder(rootCtx, llm.Config{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	})
	if err != nil {
		appLogger.Error("Gemini responder unavailable, predictions will fail", slog.Any("error", err))
		responder = llm.Unavailable{Err: err}
	} else {
		responder = gemini
		appLogger.Info("Gemini responder initialized", slog.String("model", cfg.LLM.Model))
	}

	// Prediction events
	var publisher telemetry.Publisher = telemetry.Noop{}
	if cfg.Kafka.Enabled {
		kafkaConfig := telemetry.DefaultKafkaProducerConfig()
		kafkaConfig.Brokers = cfg.Kafka.Brokers
		kafkaConfig.PredictionTopic = cfg.Kafka.PredictionTopic

		kafkaPublisher, err := telemetry.NewKafkaPublisher(kafkaConfig, appLogger)
		if err != nil {
			appLogger.Error("Failed to initialize Kafka producer", slog.Any("error", err))
			appLogger.Info("Continuing without prediction events")
		} else {
			publisher = kafkaPublisher
		}
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Error("Error closing prediction publisher", slog.Any("error", err))
		}
	}()

	// Dashboard session store
	var store dashboard.Store
	if cfg.UsesRedisSessions() && cacheService != nil {
		store = dashboard.NewRedisStore(cacheService, cfg.Session.TTL)
		appLogger.Info("Dashboard sessions stored in Redis")
	} else {
		memoryStore := dashboard.NewMemoryStore(cfg.Session.TTL)
		go memoryStore.RunJanitor(rootCtx, time.Minute)
		store = memoryStore
	}

	// Initialize Rate Limiter
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		rateLimiterConfig := &ratelimit.Config{
			Enabled:            cfg.RateLimit.Enabled,
			WindowDuration:     cfg.RateLimit.WindowDuration,
			DefaultRequests:    cfg.RateLimit.DefaultRequests,
			PublicRequests:     cfg.RateLimit.PublicRequests,
			PredictionRequests: cfg.RateLimit.PredictionRequests,
			AnalyticsRequests:  cfg.RateLimit.AnalyticsRequests,
			HealthRequests:     cfg.RateLimit.HealthRequests,
			WhitelistedIPs:     cfg.RateLimit.WhitelistedIPs,
		}

		rateLimiter = ratelimit.NewRateLimiter(redisClient, rateLimiterConfig)
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("prediction_requests", cfg.RateLimit.PredictionRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	appRouter := routes.NewRouter(cfg, routes.Dependencies{
		Cache:     cacheService,
		Responder: responder,
		Publisher: publisher,
		Store:     store,
		Logger:    appLogger,
	})
	router := setupRouter(appRouter, rateLimiter, appLogger)

	// HTTP server
	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("dashboard", fmt.Sprintf("http://localhost:%s/", cfg.Port)),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Port)),
			slog.String("version", Version),
			slog.String("commit", GitCommit),
			slog.String("built", BuildTime),
			slog.Bool("redis", redisClient != nil),
			slog.Bool("rate_limiting", rateLimiter != nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	// Let in-flight analytics fetches and prediction events finish before
	// the deferred publisher Close
	done := make(chan struct{})
	go func() {
		appRouter.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		appLogger.Warn("Background work still running at shutdown")
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(appRouter *routes.Router, rateLimiter *ratelimit.RateLimiter, appLogger *logger.Logger) *gin.Engine {
	engine := gin.New()

	// Request IDs first so the request log carries them
	engine.Use(middleware.RequestID(), RequestLoggerMiddleware(appLogger), gin.Recovery())

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true // allow every origin dynamically
		},
		AllowMethods:     []string{"GET", "POST", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Global rate limiting middleware (applied to all routes)
	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter, appLogger))
		appLogger.Info("Rate limiting middleware applied to all routes")
	}

	appRouter.SetupRoutes(engine)

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		requestLog := l.WithRequestID(middleware.GetRequestID(c))
		requestLog.LogHTTPRequest(c, duration)

		if status := c.Writer.Status(); status >= http.StatusInternalServerError {
			var err error = errors.New(http.StatusText(status))
			if last := c.Errors.Last(); last != nil {
				err = last
			}
			requestLog.LogHTTPError(c, err, status)
		}
	}
}
