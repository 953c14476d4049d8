package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"content-site-api/internal/config"
	"content-site-api/internal/handler"
	"content-site-api/internal/infrastructure/database"
	"content-site-api/internal/infrastructure/mail"
	"content-site-api/internal/infrastructure/storage"
	"content-site-api/internal/keepalive"
	"content-site-api/internal/logger"
	"content-site-api/internal/metrics"
	"content-site-api/internal/middleware"
	"content-site-api/internal/repository"
	"content-site-api/internal/service"
	"content-site-api/internal/validator"
)

const (
	shutdownTimeout   = 5 * time.Second
	poolStatsInterval = 15 * time.Second
	startupTimeout    = 30 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLogger(logger.New(os.Stdout, cfg.LogLevel))

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStartup()

	// Apply schema migrations
	dsn := cfg.DB.DSN()
	if cfg.DB.MigrateOnStart {
		if err := database.Migrate(dsn, cfg.DB.MigrationsPath); err != nil {
			logger.Fatal("Failed to apply migrations",
				slog.String("error", err.Error()))
		}
		logger.Info("Database migrations applied", slog.String("path", cfg.DB.MigrationsPath))
	}

	// Connect to database
	pool, err := database.NewPostgres(startupCtx, database.PoolConfig{
		DSN:               dsn,
		MaxConns:          cfg.DB.MaxConns,
		MinConns:          cfg.DB.MinConns,
		MaxConnLifetime:   cfg.DB.MaxConnLifetime,
		MaxConnIdleTime:   cfg.DB.MaxConnIdleTime,
		HealthCheckPeriod: cfg.DB.HealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(poolStatsInterval)
	defer poolStatsCollector.Stop()

	// Outbound side effects
	uploader, err := storage.NewMinioUploader(startupCtx, cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize media storage",
			slog.String("error", err.Error()))
	}

	notifier, err := mail.NewSMTPNotifier(cfg.Mail)
	if err != nil {
		logger.Fatal("Failed to initialize mail client",
			slog.String("error", err.Error()))
	}

	// Initialize repositories
	contactRepo := repository.NewPostgresContactRepository(pool)
	blogRepo := repository.NewPostgresBlogRepository(pool)
	jobRepo := repository.NewPostgresJobPostingRepository(pool)
	productRepo := repository.NewPostgresProductRepository(pool)
	chatRepo := repository.NewPostgresChatRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	contactService := service.NewContactService(contactRepo, notifier, v, cfg.Mail.From, cfg.Mail.Recipient)
	blogService := service.NewBlogService(blogRepo, uploader, v)
	jobService := service.NewJobService(jobRepo, v)
	productService := service.NewProductService(productRepo, uploader, v)
	chatService := service.NewChatService(chatRepo, v)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadSize
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics("/metrics"))
	router.Use(middleware.CORS(cfg.CORSOrigins()))
	router.Use(middleware.RequestLogger("/metrics", "/api/health"))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handler.RegisterRoutes(router, handler.Handlers{
		Contact: handler.NewContactHandler(contactService),
		Blog:    handler.NewBlogHandler(blogService, cfg.MaxUploadSize),
		Job:     handler.NewJobHandler(jobService),
		Product: handler.NewProductHandler(productService, cfg.MaxUploadSize),
		Chat:    handler.NewChatHandler(chatService),
		Health:  handler.NewHealthHandler(pool),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	var pinger *keepalive.Pinger
	if cfg.KeepAlive.URL != "" {
		pinger = keepalive.NewPinger(cfg.KeepAlive.URL, cfg.KeepAlive.Interval, nil)
		pinger.Start()
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	if pinger != nil {
		pinger.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
