package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"portfolio_app_echo/internal/models"
)

// BuildScheduledTask is a helper to build ScheduledTask records generically
func BuildScheduledTask(taskName string, args interface{}, due time.Time, recurringInterval *string, taskType models.ScheduledTaskType, maxAttempt int) (*models.ScheduledTask, error) {
	argsBytes, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal args: %w", err)
	}

	var mapArgs map[string]interface{}
	if err := json.Unmarshal(argsBytes, &mapArgs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal into map: %w", err)
	}

	return &models.ScheduledTask{
		TaskName:          taskName,
		Arguments:         mapArgs,
		Due:               due,
		RecurringInterval: recurringInterval,
		Status:            models.ScheduledTaskStatusActive,
		TaskType:          taskType,
		MaxAttempt:        maxAttempt,
	}, nil
}

// EnsureScheduled creates task unless an active task with the same name
// already exists. It reports whether a row was created.
func EnsureScheduled(ctx context.Context, db *gorm.DB, task *models.ScheduledTask) (bool, error) {
	var existing models.ScheduledTask
	err := db.WithContext(ctx).
		Where("task_name = ? AND status = ?", task.TaskName, models.ScheduledTaskStatusActive).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("find scheduled %s: %w", task.TaskName, err)
	}

	if err := db.WithContext(ctx).Create(task).Error; err != nil {
		return false, fmt.Errorf("schedule %s: %w", task.TaskName, err)
	}
	return true, nil
}

// intArg reads an integer argument decoded from JSON
func intArg(args map[string]interface{}, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	default:
		return 0, false
	}
}
