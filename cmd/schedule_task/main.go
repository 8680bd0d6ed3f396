package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"portfolio_app_echo/internal/config"
	"portfolio_app_echo/internal/models"
	"portfolio_app_echo/internal/services"
	"portfolio_app_echo/internal/tasks"
)

func main() {
	taskName := flag.String("task_name", "", "Name of the task (mandatory)")
	argsStr := flag.String("arguments", "{}", "JSON arguments for the task")
	dueStr := flag.String("due", "", "Due date (mandatory, format: 2006-01-02 15:04 or RFC3339)")
	taskType := flag.String("tasktype", string(models.ScheduledTaskTypeOneTime), "Task type: onetime or recurring")
	recurring := flag.String("recurring", "", "RRULE for recurring tasks, e.g. FREQ=DAILY")
	maxAttempt := flag.Int("max_attempt", 3, "Max attempts")

	flag.Parse()

	if *taskName == "" || *dueStr == "" {
		fmt.Println("Usage: schedule_task -task_name <name> -due <YYYY-MM-DD HH:MM> [options]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger, err := services.NewLogger(cfg.LogLevel, !cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	tasks.DefineTasks()
	if _, ok := tasks.GetHandler(*taskName); !ok {
		logger.Fatal("Unknown task", zap.String("task", *taskName), zap.Strings("known", tasks.GlobalRegistry.Names()))
	}

	kind := models.ScheduledTaskType(*taskType)
	if kind != models.ScheduledTaskTypeOneTime && kind != models.ScheduledTaskTypeRecurring {
		logger.Fatal("Invalid task type", zap.String("tasktype", *taskType))
	}

	var args map[string]interface{}
	if err := json.Unmarshal([]byte(*argsStr), &args); err != nil {
		logger.Fatal("Invalid JSON arguments", zap.Error(err))
	}

	// RFC3339 first, then the short form in local time
	due, err := time.Parse(time.RFC3339, *dueStr)
	if err != nil {
		due, err = time.ParseInLocation("2006-01-02 15:04", *dueStr, time.Local)
		if err != nil {
			logger.Fatal("Invalid due date, use '2006-01-02 15:04' or RFC3339", zap.Error(err))
		}
	}

	var recurringPtr *string
	if *recurring != "" {
		recurringPtr = recurring
	}

	task, err := tasks.BuildScheduledTask(*taskName, args, due, recurringPtr, kind, *maxAttempt)
	if err != nil {
		logger.Fatal("Failed to build task", zap.Error(err))
	}

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL not set")
	}
	db, err := services.InitDB(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.WithContext(context.Background()).Create(task).Error; err != nil {
		logger.Fatal("Failed to create task", zap.Error(err))
	}

	fmt.Printf("Successfully created task ID: %d\n", task.ID)
	fmt.Printf("Task: %s\nDue: %s\nType: %s\n", task.TaskName, task.Due, task.TaskType)
}
