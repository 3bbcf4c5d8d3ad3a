package plan_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enesk/study-planner/internal/model"
	"github.com/enesk/study-planner/internal/plan"
	"github.com/enesk/study-planner/tests/testutil"
)

func newDailyStore(t *testing.T) (*plan.DailyStore, context.Context) {
	t.Helper()
	return plan.NewDailyStore(testutil.NewTestStore(t), testutil.Logger()), context.Background()
}

func TestAddAndGet(t *testing.T) {
	s, ctx := newDailyStore(t)

	task, err := s.Add(ctx, "2025-08-05", "Paragraf çöz")
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.False(t, task.FromWeekly)

	tasks, err := s.Get(ctx, "2025-08-05")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Paragraf çöz", tasks[0].Title)

	empty, err := s.Get(ctx, "2025-08-06")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRemoveByID(t *testing.T) {
	s, ctx := newDailyStore(t)

	task, err := s.Add(ctx, "2025-08-05", "serbest görev")
	require.NoError(t, err)
	require.NoError(t, s.RemoveByID(ctx, "2025-08-05", task.ID))

	err = s.RemoveByID(ctx, "2025-08-05", task.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRemoveByIDRefusesSyncedTasks(t *testing.T) {
	s, ctx := newDailyStore(t)

	synced := plan.NewSyncedTask(
		model.Topic{Text: "Temel Kavramlar", MonthID: "august-2025", WeekNumber: 1},
		"august-2025-week-1", 0, time.Now(),
	)
	require.NoError(t, s.Append(ctx, "2025-08-05", synced))

	err := s.RemoveByID(ctx, "2025-08-05", synced.ID)
	assert.ErrorIs(t, err, model.ErrForbidden)

	tasks, err := s.Get(ctx, "2025-08-05")
	require.NoError(t, err)
	assert.Len(t, tasks, 1, "forbidden removal leaves state untouched")
}

func TestToggleCompleted(t *testing.T) {
	s, ctx := newDailyStore(t)

	task, err := s.Add(ctx, "2025-08-05", "tekrar")
	require.NoError(t, err)

	require.NoError(t, s.ToggleCompleted(ctx, "2025-08-05", task.ID))
	tasks, err := s.Get(ctx, "2025-08-05")
	require.NoError(t, err)
	assert.True(t, tasks[0].Completed)

	require.NoError(t, s.ToggleCompleted(ctx, "2025-08-05", task.ID))
	tasks, err = s.Get(ctx, "2025-08-05")
	require.NoError(t, err)
	assert.False(t, tasks[0].Completed)

	err = s.ToggleCompleted(ctx, "2025-08-05", "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestReorder(t *testing.T) {
	s, ctx := newDailyStore(t)

	for _, title := range []string{"A", "B", "C"} {
		_, err := s.Add(ctx, "2025-08-05", title)
		require.NoError(t, err)
	}

	require.NoError(t, s.Reorder(ctx, "2025-08-05", 0, 2))
	tasks, err := s.Get(ctx, "2025-08-05")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, taskTitles(tasks))

	err = s.Reorder(ctx, "2025-08-05", 9, 0)
	assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
}

func TestMoveBetweenDays(t *testing.T) {
	s, ctx := newDailyStore(t)

	task, err := s.Add(ctx, "2025-08-05", "taşınabilir")
	require.NoError(t, err)
	_, err = s.Add(ctx, "2025-08-06", "yerleşik")
	require.NoError(t, err)

	require.NoError(t, s.Move(ctx, "2025-08-05", "2025-08-06", task.ID, 0))

	source, err := s.Get(ctx, "2025-08-05")
	require.NoError(t, err)
	assert.Empty(t, source)

	dest, err := s.Get(ctx, "2025-08-06")
	require.NoError(t, err)
	require.Len(t, dest, 2)
	assert.Equal(t, "taşınabilir", dest[0].Title)
}

func TestMoveRefusesSyncedTasksAcrossDays(t *testing.T) {
	s, ctx := newDailyStore(t)

	synced := plan.NewSyncedTask(
		model.Topic{Text: "Sayı Basamakları", MonthID: "august-2025", WeekNumber: 1},
		"august-2025-week-1", 0, time.Now(),
	)
	require.NoError(t, s.Append(ctx, "2025-08-05", synced))
	require.NoError(t, s.Append(ctx, "2025-08-05", model.DailyTask{ID: "free-1", Title: "serbest"}))

	err := s.Move(ctx, "2025-08-05", "2025-08-06", synced.ID, 0)
	assert.ErrorIs(t, err, model.ErrForbidden)

	// Same-day moves are reorders and stay legal for synced tasks.
	require.NoError(t, s.Move(ctx, "2025-08-05", "2025-08-05", synced.ID, 1))
	tasks, err := s.Get(ctx, "2025-08-05")
	require.NoError(t, err)
	assert.Equal(t, []string{"serbest", "Sayı Basamakları"}, taskTitles(tasks))
}

func TestMoveClampsDestinationIndex(t *testing.T) {
	s, ctx := newDailyStore(t)

	task, err := s.Add(ctx, "2025-08-05", "tek")
	require.NoError(t, err)

	require.NoError(t, s.Move(ctx, "2025-08-05", "2025-08-06", task.ID, 42))
	dest, err := s.Get(ctx, "2025-08-06")
	require.NoError(t, err)
	require.Len(t, dest, 1)
}

func TestNewSyncedTask(t *testing.T) {
	now := time.Now()
	topic := model.Topic{Text: "TYT Matematik Problemler", MonthID: "august-2025", WeekNumber: 2}

	task := plan.NewSyncedTask(topic, "august-2025-week-2", 3, now)

	assert.True(t, task.FromWeekly)
	assert.True(t, task.Traceable())
	assert.Equal(t, "august-2025-week-2", task.WeekPlanID)
	assert.Equal(t, topic.Text, task.OriginalTopic)
	assert.Equal(t, model.CategoryTYTMath, task.Category)
	require.NotNil(t, task.SyncedAt)
	assert.Equal(t, now, *task.SyncedAt)

	other := plan.NewSyncedTask(topic, "august-2025-week-2", 3, now)
	assert.NotEqual(t, task.ID, other.ID, "repeated syncs never collide on id")
}

func taskTitles(tasks []model.DailyTask) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}
