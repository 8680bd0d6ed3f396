package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"portfolio_app_echo/internal/config"
	"portfolio_app_echo/internal/models"
	"portfolio_app_echo/internal/services"
	"portfolio_app_echo/internal/tasks"
)

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

	// Initialize Database
	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL not set")
	}
	db, err := services.InitDB(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := services.AutoMigrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Create context that cancels on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Task Registry
	tasks.DefineTasks()

	purge, err := tasks.PurgePageViewsTask.CreateTask(cfg.AnalyticsRetentionDays, time.Now())
	if err != nil {
		logger.Fatal("Failed to build purge task", zap.Error(err))
	}
	history, err := tasks.PurgeTaskHistoryTask.CreateTask(tasks.DefaultHistoryRetentionDays, time.Now())
	if err != nil {
		logger.Fatal("Failed to build history purge task", zap.Error(err))
	}
	for _, task := range []*models.ScheduledTask{purge, history} {
		created, err := tasks.EnsureScheduled(ctx, db, task)
		if err != nil {
			logger.Fatal("Failed to schedule task", zap.String("task", task.TaskName), zap.Error(err))
		}
		if created {
			logger.Info("Scheduled maintenance task", zap.String("task", task.TaskName), zap.Any("arguments", task.Arguments))
		}
	}

	runner := tasks.NewRunner(db, tasks.GlobalRegistry, nil, logger)

	logger.Info("Worker started", zap.Duration("interval", cfg.WorkerInterval), zap.Strings("tasks", tasks.GlobalRegistry.Names()))

	ticker := time.NewTicker(cfg.WorkerInterval)
	defer ticker.Stop()

	// Run once on start, then on every tick
	tick(ctx, runner, logger)
	for {
		select {
		case <-ticker.C:
			tick(ctx, runner, logger)
		case <-ctx.Done():
			logger.Info("Shutting down worker")
			return
		}
	}
}

func tick(ctx context.Context, runner *tasks.Runner, logger *zap.Logger) {
	n, err := runner.RunDue(ctx)
	if err != nil {
		logger.Error("Task run failed", zap.Int("processed", n), zap.Error(err))
	}
}
