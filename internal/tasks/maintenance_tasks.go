package tasks

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio_app_echo/internal/models"
)

// DefaultHistoryRetentionDays applies when the task carries no retention_days
const DefaultHistoryRetentionDays = 30

const historyPurgeRule = "FREQ=WEEKLY"

// PurgeTaskHistoryArgs defines the arguments for the history purge
type PurgeTaskHistoryArgs struct {
	RetentionDays int `json:"retention_days"`
}

// PurgeTaskHistoryTaskDef deletes task run history older than the retention
// window. Every attempt writes a history row, so the table grows without it.
type PurgeTaskHistoryTaskDef struct {
	now func() time.Time
}

// TaskID returns the unique identifier for this task
func (t *PurgeTaskHistoryTaskDef) TaskID() string {
	return "purge_task_history"
}

// CreateTask builds the weekly recurring purge starting at due
func (t *PurgeTaskHistoryTaskDef) CreateTask(retentionDays int, due time.Time) (*models.ScheduledTask, error) {
	rule := historyPurgeRule
	return BuildScheduledTask(t.TaskID(), PurgeTaskHistoryArgs{RetentionDays: retentionDays}, due, &rule, models.ScheduledTaskTypeRecurring, 3)
}

// HandleExecution hard deletes the expired history rows
func (t *PurgeTaskHistoryTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, args map[string]interface{}) (map[string]interface{}, error) {
	if db == nil {
		return nil, fmt.Errorf("database not configured")
	}

	days, ok := intArg(args, "retention_days")
	if !ok || days <= 0 {
		days = DefaultHistoryRetentionDays
	}

	now := time.Now
	if t.now != nil {
		now = t.now
	}
	cutoff := now().AddDate(0, 0, -days)

	result := db.WithContext(ctx).Unscoped().Where("created_at < ?", cutoff).Delete(&models.ScheduledTaskHistory{})
	if result.Error != nil {
		return nil, fmt.Errorf("purge task history: %w", result.Error)
	}
	zap.L().Info("Purged task history", zap.Int64("deleted", result.RowsAffected), zap.Time("cutoff", cutoff))

	return map[string]interface{}{
		"status":         "success",
		"deleted":        result.RowsAffected,
		"retention_days": days,
		"cutoff":         cutoff.Format(time.RFC3339),
	}, nil
}

// PurgeTaskHistoryTask is the singleton instance of PurgeTaskHistoryTaskDef
var PurgeTaskHistoryTask = &PurgeTaskHistoryTaskDef{}
