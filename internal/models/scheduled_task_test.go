package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNextDueAfter(t *testing.T) {
	due := time.Date(2026, 1, 1, 3, 0, 0, 0, time.UTC)
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task ScheduledTask
		want time.Time
	}{
		{
			name: "one time keeps due",
			task: ScheduledTask{Due: due, TaskType: ScheduledTaskTypeOneTime, RecurringInterval: strPtr("FREQ=DAILY")},
			want: due,
		},
		{
			name: "daily recurrence",
			task: ScheduledTask{Due: due, TaskType: ScheduledTaskTypeRecurring, RecurringInterval: strPtr("FREQ=DAILY")},
			want: time.Date(2026, 1, 11, 3, 0, 0, 0, time.UTC),
		},
		{
			name: "weekly recurrence",
			task: ScheduledTask{Due: due, TaskType: ScheduledTaskTypeRecurring, RecurringInterval: strPtr("FREQ=WEEKLY")},
			want: time.Date(2026, 1, 15, 3, 0, 0, 0, time.UTC),
		},
		{
			name: "missing rule",
			task: ScheduledTask{Due: due, TaskType: ScheduledTaskTypeRecurring},
			want: due,
		},
		{
			name: "bad rule",
			task: ScheduledTask{Due: due, TaskType: ScheduledTaskTypeRecurring, RecurringInterval: strPtr("EVERY=SOMETIMES")},
			want: due,
		},
		{
			name: "exhausted rule",
			task: ScheduledTask{Due: due, TaskType: ScheduledTaskTypeRecurring, RecurringInterval: strPtr("FREQ=DAILY;COUNT=2")},
			want: due,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.task.NextDueAfter(now)), "got %s", tt.task.NextDueAfter(now))
		})
	}
}

func TestCanRetry(t *testing.T) {
	assert.True(t, ScheduledTask{}.CanRetry(0))
	assert.False(t, ScheduledTask{}.CanRetry(1))
	assert.True(t, ScheduledTask{MaxAttempt: 3}.CanRetry(2))
	assert.False(t, ScheduledTask{MaxAttempt: 3}.CanRetry(3))
}
