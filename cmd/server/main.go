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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"portfolio_app_echo/internal/config"
	"portfolio_app_echo/internal/content"
	"portfolio_app_echo/internal/handlers"
	appMiddleware "portfolio_app_echo/internal/middleware"
	"portfolio_app_echo/internal/services"
	"portfolio_app_echo/internal/views"
	"portfolio_app_echo/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := services.NewLogger(cfg.LogLevel, !cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	catalog := content.Default()
	if err := catalog.Validate(); err != nil {
		logger.Fatal("Invalid content catalog", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Database
	var (
		recorder appMiddleware.PageViewRecorder
		stats    handlers.StatsSource
	)
	if cfg.DatabaseURL != "" {
		db, err := services.InitDB(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := services.AutoMigrate(db, logger); err != nil {
			logger.Fatal("Failed to run database migrations", zap.Error(err))
		}
		analytics := services.NewAnalyticsService(db, logger)
		recorder, stats = analytics, analytics
	} else {
		logger.Warn("DATABASE_URL not set, analytics disabled")
	}

	// Initialize Redis
	var cache *services.RedisCache
	if cfg.RedisURL != "" {
		cache, err = services.NewRedisCache(cfg.RedisURL, logger)
		if err != nil {
			logger.Warn("Redis unavailable, page cache disabled", zap.Error(err))
			cache = nil
		} else {
			defer func() { _ = cache.Close() }()
		}
	}

	// Initialize Firebase
	var (
		issuer   handlers.SessionIssuer
		verifier appMiddleware.SessionVerifier
	)
	if cfg.FirebaseCredentials != "" {
		authClient, err := services.InitFirebase(ctx, cfg.FirebaseCredentials)
		if err != nil {
			logger.Warn("Firebase initialization failed, admin login disabled", zap.Error(err))
		} else {
			issuer, verifier = authClient, authClient
		}
	} else {
		logger.Warn("FIREBASE_CREDENTIALS_PATH not set, admin login disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewMetrics(reg)

	renderer, err := views.NewTemplateRenderer(web.Templates())
	if err != nil {
		logger.Fatal("Failed to parse templates", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = appMiddleware.NewErrorHandler(logger)

	// Middleware
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(appMiddleware.RequestLogger(logger))
	e.Use(echomw.Recover())
	e.Use(appMiddleware.Metrics(metrics))
	e.Use(appMiddleware.TrackPageViews(recorder, cfg.AnalyticsSalt, metrics, logger))

	// Static file serving
	e.StaticFS("/static", web.Static())

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(catalog, renderer, cache, cfg.CacheTTL, metrics, logger)
	apiHandler := handlers.NewAPIHandler(catalog)
	authHandler := handlers.NewAuthHandler(issuer, renderer, cfg.FirebaseWeb, cfg.IsProduction(), logger)
	adminHandler := handlers.NewAdminHandler(stats, cache, renderer, logger)

	// Public pages
	e.GET("/", pageHandler.Home)
	e.GET("/projects", pageHandler.Projects)
	e.GET("/summary", pageHandler.Summary)
	e.GET("/presentations", pageHandler.Presentations)
	e.GET("/presentations/lunchandlearn", pageHandler.LunchAndLearn)
	e.GET("/lunchandlearn", pageHandler.LunchAndLearn)

	// JSON API
	api := e.Group("/api")
	api.GET("/health", apiHandler.Health)
	api.GET("/projects", apiHandler.ListProjects)
	api.GET("/projects/:id", apiHandler.GetProject)
	api.GET("/slides", apiHandler.ListSlides)
	api.GET("/slides/:id", apiHandler.GetSlide)
	api.GET("/deck/config", apiHandler.DeckConfig)

	// Auth routes
	e.GET("/login", authHandler.LoginPage)
	e.POST("/auth/login", authHandler.HandleLogin)
	e.POST("/auth/logout", authHandler.HandleLogout)

	// Protected routes
	admin := e.Group("/admin")
	admin.Use(appMiddleware.RequireAuth(verifier, cfg.AdminEmails))
	admin.GET("", adminHandler.Dashboard)
	admin.GET("/api/stats", adminHandler.Stats)
	admin.POST("/api/cache/flush", adminHandler.FlushCache)

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	go func() {
		logger.Info("Server starting", zap.String("addr", cfg.Addr()), zap.String("env", cfg.AppEnv))
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
