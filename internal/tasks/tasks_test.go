package tasks

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio_app_echo/internal/models"
	"portfolio_app_echo/internal/services"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var (
	insertHistory = regexp.QuoteMeta(`INSERT INTO "scheduled_task_histories"`)
	updateTask    = regexp.QuoteMeta(`UPDATE "scheduled_tasks" SET`)
)

func expectHistory(mock sqlmock.Sqlmock, id int) {
	mock.ExpectQuery(insertHistory).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
}

func TestDefineRegistersTasks(t *testing.T) {
	r := NewRegistry()
	Define(r)

	assert.Equal(t, []string{"purge_page_views", "purge_task_history"}, r.Names())
	_, ok := r.Get("purge_page_views")
	assert.True(t, ok)
	_, ok = r.Get("send_notification")
	assert.False(t, ok)
}

func TestBuildScheduledTask(t *testing.T) {
	due := time.Date(2026, 5, 1, 3, 0, 0, 0, time.UTC)
	task, err := PurgePageViewsTask.CreateTask(90, due)
	require.NoError(t, err)

	assert.Equal(t, "purge_page_views", task.TaskName)
	assert.Equal(t, float64(90), task.Arguments["retention_days"])
	assert.Equal(t, models.ScheduledTaskTypeRecurring, task.TaskType)
	assert.Equal(t, models.ScheduledTaskStatusActive, task.Status)
	require.NotNil(t, task.RecurringInterval)
	assert.Equal(t, "FREQ=DAILY", *task.RecurringInterval)
	assert.Equal(t, 3, task.MaxAttempt)
	assert.Equal(t, due, task.Due)

	_, err = BuildScheduledTask("bad", make(chan int), due, nil, models.ScheduledTaskTypeOneTime, 1)
	assert.Error(t, err)
}

func TestIntArg(t *testing.T) {
	args := map[string]interface{}{"f": float64(30), "i": 7, "s": "x"}

	n, ok := intArg(args, "f")
	assert.True(t, ok)
	assert.Equal(t, 30, n)

	n, ok = intArg(args, "i")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = intArg(args, "s")
	assert.False(t, ok)
	_, ok = intArg(args, "missing")
	assert.False(t, ok)
}

func TestPurgeTaskHistoryTask(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	task := &PurgeTaskHistoryTaskDef{now: func() time.Time { return now }}

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "scheduled_task_histories" WHERE created_at < $1`)).
		WithArgs(now.AddDate(0, 0, -7)).
		WillReturnResult(sqlmock.NewResult(0, 40))

	result, err := task.HandleExecution(context.Background(), db, map[string]interface{}{"retention_days": float64(7)})
	require.NoError(t, err)
	assert.Equal(t, int64(40), result["deleted"])
	assert.Equal(t, 7, result["retention_days"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeTaskHistoryDefaults(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	task := &PurgeTaskHistoryTaskDef{now: func() time.Time { return now }}

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "scheduled_task_histories"`)).
		WithArgs(now.AddDate(0, 0, -DefaultHistoryRetentionDays)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	result, err := task.HandleExecution(context.Background(), db, map[string]interface{}{"retention_days": "soon"})
	require.NoError(t, err)
	assert.Equal(t, DefaultHistoryRetentionDays, result["retention_days"])
	assert.NoError(t, mock.ExpectationsWereMet())

	_, err = task.HandleExecution(context.Background(), nil, nil)
	assert.Error(t, err)

	scheduled, err := PurgeTaskHistoryTask.CreateTask(14, now)
	require.NoError(t, err)
	assert.Equal(t, "purge_task_history", scheduled.TaskName)
	assert.Equal(t, float64(14), scheduled.Arguments["retention_days"])
	require.NotNil(t, scheduled.RecurringInterval)
	assert.Equal(t, "FREQ=WEEKLY", *scheduled.RecurringInterval)
}

func TestPurgePageViewsTask(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	task := &PurgePageViewsTaskDef{now: func() time.Time { return now }}

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "page_views" WHERE created_at < $1`)).
		WithArgs(now.AddDate(0, 0, -30)).
		WillReturnResult(sqlmock.NewResult(0, 12))

	result, err := task.HandleExecution(context.Background(), db, map[string]interface{}{"retention_days": float64(30)})
	require.NoError(t, err)
	assert.Equal(t, int64(12), result["deleted"])
	assert.Equal(t, 30, result["retention_days"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgePageViewsDefaultsRetention(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	task := &PurgePageViewsTaskDef{now: func() time.Time { return now }}

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "page_views"`)).
		WithArgs(now.AddDate(0, 0, -DefaultRetentionDays)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	result, err := task.HandleExecution(context.Background(), db, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, DefaultRetentionDays, result["retention_days"])
	assert.NoError(t, mock.ExpectationsWereMet())

	_, err = task.HandleExecution(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestEnsureScheduled(t *testing.T) {
	due := time.Date(2026, 5, 1, 3, 0, 0, 0, time.UTC)
	selectTask := regexp.QuoteMeta(`SELECT * FROM "scheduled_tasks" WHERE`)

	t.Run("creates when missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(selectTask).WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "scheduled_tasks"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		task, err := PurgePageViewsTask.CreateTask(365, due)
		require.NoError(t, err)
		created, err := EnsureScheduled(context.Background(), db, task)
		require.NoError(t, err)
		assert.True(t, created)
		assert.EqualValues(t, 5, task.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("keeps existing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(selectTask).
			WillReturnRows(sqlmock.NewRows([]string{"id", "task_name", "status"}).AddRow(1, "purge_page_views", "active"))

		task, err := PurgePageViewsTask.CreateTask(365, due)
		require.NoError(t, err)
		created, err := EnsureScheduled(context.Background(), db, task)
		require.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNextState(t *testing.T) {
	due := time.Date(2026, 1, 1, 3, 0, 0, 0, time.UTC)
	ran := time.Date(2026, 1, 1, 3, 1, 0, 0, time.UTC)
	daily := "FREQ=DAILY"

	onetime := models.ScheduledTask{Due: due, TaskType: models.ScheduledTaskTypeOneTime}
	assert.Equal(t, models.ScheduledTaskStatusDone, nextState(onetime, nil, ran)["status"])
	assert.Equal(t, models.ScheduledTaskStatusFailure, nextState(onetime, errors.New("x"), ran)["status"])

	recurring := models.ScheduledTask{Due: due, TaskType: models.ScheduledTaskTypeRecurring, RecurringInterval: &daily}
	updates := nextState(recurring, nil, ran)
	assert.Equal(t, models.ScheduledTaskStatusActive, updates["status"])
	assert.Equal(t, time.Date(2026, 1, 2, 3, 0, 0, 0, time.UTC), updates["due"])

	broken := "NOT A RULE"
	recurring.RecurringInterval = &broken
	assert.Equal(t, models.ScheduledTaskStatusDone, nextState(recurring, nil, ran)["status"])
}

func newTestRunner(db *gorm.DB, r *Registry) (*Runner, *services.Metrics) {
	m := services.NewMetrics(prometheus.NewRegistry())
	runner := NewRunner(db, r, m, zap.NewNop())
	runner.now = func() time.Time { return time.Date(2026, 1, 1, 3, 0, 0, 0, time.UTC) }
	return runner, m
}

func TestRunnerHandlerNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	runner, m := newTestRunner(db, NewRegistry())

	expectHistory(mock, 1)
	mock.ExpectExec(updateTask).WillReturnResult(sqlmock.NewResult(0, 1))

	runner.Execute(context.Background(), models.ScheduledTask{ID: 9, TaskName: "unknown", MaxAttempt: 3})

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TaskRuns.WithLabelValues("unknown", RunStatusHandlerNotFound)))
}

func TestRunnerRetriesUntilSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewRegistry()
	calls := 0
	r.Register("flaky", func(ctx context.Context, db *gorm.DB, args map[string]interface{}) (map[string]interface{}, error) {
		calls++
		assert.Equal(t, 3, args["max_attempt"])
		if calls < 3 {
			return nil, errors.New("not yet")
		}
		return map[string]interface{}{"status": "success"}, nil
	})
	runner, m := newTestRunner(db, r)

	expectHistory(mock, 1)
	expectHistory(mock, 2)
	expectHistory(mock, 3)
	mock.ExpectExec(updateTask).WillReturnResult(sqlmock.NewResult(0, 1))

	runner.Execute(context.Background(), models.ScheduledTask{ID: 4, TaskName: "flaky", MaxAttempt: 3})

	assert.Equal(t, 3, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TaskRuns.WithLabelValues("flaky", RunStatusFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TaskRuns.WithLabelValues("flaky", RunStatusSuccess)))
}

func TestRunnerStopsAtMaxAttempt(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewRegistry()
	calls := 0
	r.Register("broken", func(context.Context, *gorm.DB, map[string]interface{}) (map[string]interface{}, error) {
		calls++
		return nil, errors.New("always")
	})
	runner, _ := newTestRunner(db, r)

	expectHistory(mock, 1)
	expectHistory(mock, 2)
	mock.ExpectExec(updateTask).WillReturnResult(sqlmock.NewResult(0, 1))

	runner.Execute(context.Background(), models.ScheduledTask{ID: 4, TaskName: "broken", MaxAttempt: 2})

	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunnerRunDue(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewRegistry()
	Define(r)
	runner, m := newTestRunner(db, r)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "scheduled_tasks" WHERE`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "task_name", "arguments", "due", "status", "task_type", "max_attempt"}).
			AddRow(1, "purge_task_history", `{"retention_days":30}`, time.Date(2026, 1, 1, 2, 0, 0, 0, time.UTC), "active", "onetime", 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "scheduled_task_histories"`)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	expectHistory(mock, 10)
	mock.ExpectExec(updateTask).WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := runner.RunDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TaskRuns.WithLabelValues("purge_task_history", RunStatusSuccess)))
}

func TestRunnerRunDueNothingPending(t *testing.T) {
	db, mock := newMockDB(t)
	runner, _ := newTestRunner(db, NewRegistry())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "scheduled_tasks"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	n, err := runner.RunDue(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
