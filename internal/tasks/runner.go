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

// History statuses
const (
	RunStatusSuccess         = "success"
	RunStatusFailure         = "failure"
	RunStatusHandlerNotFound = "handler_not_found"
)

// Runner executes due scheduled tasks and records their history
type Runner struct {
	db       *gorm.DB
	registry *Registry
	metrics  *services.Metrics
	log      *zap.Logger
	now      func() time.Time
}

// NewRunner creates a Runner. metrics may be nil.
func NewRunner(db *gorm.DB, registry *Registry, metrics *services.Metrics, log *zap.Logger) *Runner {
	return &Runner{db: db, registry: registry, metrics: metrics, log: log, now: time.Now}
}

// RunDue executes every active task whose due time has passed and returns
// how many were processed
func (r *Runner) RunDue(ctx context.Context) (int, error) {
	var pendingTasks []models.ScheduledTask
	// status=active & due<=now
	err := r.db.WithContext(ctx).
		Where("status = ? AND due <= ?", models.ScheduledTaskStatusActive, r.now()).
		Order("due").
		Find(&pendingTasks).Error
	if err != nil {
		return 0, fmt.Errorf("fetch pending tasks: %w", err)
	}

	if len(pendingTasks) == 0 {
		r.log.Debug("No pending tasks found")
		return 0, nil
	}
	r.log.Info("Found pending tasks", zap.Int("count", len(pendingTasks)))

	processed := 0
	for _, task := range pendingTasks {
		// Check context cancellation
		if ctx.Err() != nil {
			return processed, ctx.Err()
		}
		r.Execute(ctx, task)
		processed++
	}
	return processed, nil
}

// Execute runs one task, retrying failures up to its MaxAttempt, then
// stores the outcome on the task row
func (r *Runner) Execute(ctx context.Context, task models.ScheduledTask) {
	log := r.log.With(zap.String("task", task.TaskName), zap.Uint("task_id", task.ID))
	log.Info("Processing task")

	// Inject MaxAttempt into arguments if not present
	args := make(map[string]interface{}, len(task.Arguments)+1)
	for k, v := range task.Arguments {
		args[k] = v
	}
	args["max_attempt"] = task.MaxAttempt

	handler, found := r.registry.Get(task.TaskName)
	if !found {
		log.Warn("Task handler not found, marking as failure")
		now := r.now()
		r.recordHistory(ctx, log, models.ScheduledTaskHistory{
			ScheduledTaskID: task.ID,
			TaskName:        task.TaskName,
			RunAt:           now,
			Status:          RunStatusHandlerNotFound,
			AttemptNumber:   1,
			Arguments:       args,
			Result:          map[string]interface{}{"error": "Handler not found"},
		})
		r.observe(task.TaskName, RunStatusHandlerNotFound)
		r.update(ctx, log, task, map[string]interface{}{
			"status":   models.ScheduledTaskStatusFailure,
			"last_run": &now,
		})
		return
	}

	var (
		startTime time.Time
		err       error
	)
	for attempt := 1; ; attempt++ {
		startTime = r.now()
		var result map[string]interface{}
		result, err = handler(ctx, r.db, args)
		runtimeMs := int(time.Since(startTime).Milliseconds())

		status := RunStatusSuccess
		resultData := result
		if err != nil {
			status = RunStatusFailure
			resultData = map[string]interface{}{"error": err.Error()}
			log.Warn("Task attempt failed", zap.Int("attempt", attempt), zap.Error(err))
		} else {
			log.Info("Task completed", zap.Int("attempt", attempt), zap.Int("runtime_ms", runtimeMs))
		}

		r.recordHistory(ctx, log, models.ScheduledTaskHistory{
			ScheduledTaskID: task.ID,
			TaskName:        task.TaskName,
			RunAt:           startTime,
			Runtime:         runtimeMs,
			Status:          status,
			AttemptNumber:   attempt,
			Arguments:       args,
			Result:          resultData,
		})
		r.observe(task.TaskName, status)

		if err == nil || !task.CanRetry(attempt) || ctx.Err() != nil {
			break
		}
	}

	r.update(ctx, log, task, nextState(task, err, startTime))
}

// nextState is the column update applied after the last attempt
func nextState(task models.ScheduledTask, runErr error, lastRun time.Time) map[string]interface{} {
	updates := map[string]interface{}{
		"last_run": &lastRun,
	}

	if runErr != nil {
		updates["status"] = models.ScheduledTaskStatusFailure
		return updates
	}

	switch task.TaskType {
	case models.ScheduledTaskTypeRecurring:
		nextDue := task.NextDueAfter(lastRun)
		// only reschedule into the future, or the task would run again on the next tick
		if nextDue.After(task.Due) && nextDue.After(lastRun) {
			updates["status"] = models.ScheduledTaskStatusActive
			updates["due"] = nextDue
		} else {
			updates["status"] = models.ScheduledTaskStatusDone
		}
	default:
		updates["status"] = models.ScheduledTaskStatusDone
	}
	return updates
}

func (r *Runner) recordHistory(ctx context.Context, log *zap.Logger, history models.ScheduledTaskHistory) {
	if err := r.db.WithContext(ctx).Create(&history).Error; err != nil {
		log.Error("Failed to record task history", zap.Error(err))
	}
}

func (r *Runner) update(ctx context.Context, log *zap.Logger, task models.ScheduledTask, updates map[string]interface{}) {
	if err := r.db.WithContext(ctx).Model(&task).Updates(updates).Error; err != nil {
		log.Error("Failed to update task", zap.Error(err))
	}
}

func (r *Runner) observe(task, status string) {
	if r.metrics != nil {
		r.metrics.TaskRuns.WithLabelValues(task, status).Inc()
	}
}
