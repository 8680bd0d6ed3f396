package tasks

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio_app_echo/internal/models"
	"portfolio_app_echo/internal/services"
)

// DefaultRetentionDays applies when the task carries no retention_days
const DefaultRetentionDays = 365

// purgeRule runs the retention purge once a day
const purgeRule = "FREQ=DAILY"

// PurgePageViewsArgs defines the arguments for the retention purge
type PurgePageViewsArgs struct {
	RetentionDays int `json:"retention_days"`
}

// PurgePageViewsTaskDef deletes page views older than the retention window
type PurgePageViewsTaskDef struct {
	now func() time.Time
}

// TaskID returns the unique identifier for this task
func (t *PurgePageViewsTaskDef) TaskID() string {
	return "purge_page_views"
}

// CreateTask builds the daily recurring purge starting at due
func (t *PurgePageViewsTaskDef) CreateTask(retentionDays int, due time.Time) (*models.ScheduledTask, error) {
	rule := purgeRule
	return BuildScheduledTask(t.TaskID(), PurgePageViewsArgs{RetentionDays: retentionDays}, due, &rule, models.ScheduledTaskTypeRecurring, 3)
}

// HandleExecution removes the expired page views
func (t *PurgePageViewsTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, args map[string]interface{}) (map[string]interface{}, error) {
	if db == nil {
		return nil, fmt.Errorf("database not configured")
	}

	days, ok := intArg(args, "retention_days")
	if !ok || days <= 0 {
		days = DefaultRetentionDays
	}

	now := time.Now
	if t.now != nil {
		now = t.now
	}
	cutoff := now().AddDate(0, 0, -days)

	deleted, err := services.NewAnalyticsService(db, zap.L()).Purge(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"status":         "success",
		"deleted":        deleted,
		"retention_days": days,
		"cutoff":         cutoff.Format(time.RFC3339),
	}, nil
}

// PurgePageViewsTask is the singleton instance of PurgePageViewsTaskDef
var PurgePageViewsTask = &PurgePageViewsTaskDef{}
