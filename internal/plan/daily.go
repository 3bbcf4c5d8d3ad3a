package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/enesk/study-planner/internal/model"
	"github.com/enesk/study-planner/internal/store"
)

// DailyStore owns the dailyPlans snapshot: ordered task lists keyed by
// canonical YYYY-MM-DD date strings.
type DailyStore struct {
	db  store.Store
	log zerolog.Logger
}

// NewDailyStore creates a daily plan store backed by db.
func NewDailyStore(db store.Store, log zerolog.Logger) *DailyStore {
	return &DailyStore{db: db, log: log.With().Str("component", "daily").Logger()}
}

// Snapshot returns the full persisted collection.
func (s *DailyStore) Snapshot(ctx context.Context) (model.DailyPlans, error) {
	plans := model.DailyPlans{}
	if _, err := s.db.GetValue(ctx, store.KeyDailyPlans, &plans); err != nil {
		return nil, fmt.Errorf("loading daily plans: %w", err)
	}
	if plans == nil {
		plans = model.DailyPlans{}
	}
	return plans, nil
}

// Get returns the ordered task list for a day, empty if the bucket has
// never been written.
func (s *DailyStore) Get(ctx context.Context, dateKey string) ([]model.DailyTask, error) {
	plans, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return plans[dateKey], nil
}

// Append adds a prepared task to the end of a day's bucket.
func (s *DailyStore) Append(ctx context.Context, dateKey string, task model.DailyTask) error {
	plans, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}
	plans[dateKey] = append(plans[dateKey], task)
	return s.db.SetValue(ctx, store.KeyDailyPlans, plans)
}

// Add creates a freestanding task from a title and appends it to the
// day's bucket.
func (s *DailyStore) Add(ctx context.Context, dateKey, title string) (model.DailyTask, error) {
	task := model.DailyTask{
		ID:        fmt.Sprintf("daily-%d-%s", time.Now().UnixMilli(), shortID()),
		Title:     title,
		CreatedAt: time.Now(),
	}
	if err := s.Append(ctx, dateKey, task); err != nil {
		return model.DailyTask{}, err
	}
	return task, nil
}

// RemoveByID deletes a task from a day's bucket. Tasks synced from a
// weekly plan are owned by the reconciliation pass and cannot be
// removed through this path.
func (s *DailyStore) RemoveByID(ctx context.Context, dateKey, taskID string) error {
	plans, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}

	tasks := plans[dateKey]
	idx := indexOfTask(tasks, taskID)
	if idx < 0 {
		return fmt.Errorf("task %s in %s: %w", taskID, dateKey, model.ErrNotFound)
	}
	if tasks[idx].FromWeekly {
		return fmt.Errorf("task %s is synced from a weekly plan: %w", taskID, model.ErrForbidden)
	}

	plans[dateKey] = append(tasks[:idx], tasks[idx+1:]...)
	return s.db.SetValue(ctx, store.KeyDailyPlans, plans)
}

// ToggleCompleted flips a task's completed flag.
func (s *DailyStore) ToggleCompleted(ctx context.Context, dateKey, taskID string) error {
	plans, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}

	tasks := plans[dateKey]
	idx := indexOfTask(tasks, taskID)
	if idx < 0 {
		return fmt.Errorf("task %s in %s: %w", taskID, dateKey, model.ErrNotFound)
	}

	tasks[idx].Completed = !tasks[idx].Completed
	plans[dateKey] = tasks
	return s.db.SetValue(ctx, store.KeyDailyPlans, plans)
}

// Move transfers a task between day buckets, inserting at destIndex
// (clamped to the destination's bounds). When source and destination
// are the same day it degenerates to a reorder. Synced tasks are
// pinned to their day: moving them across buckets would desynchronize
// their provenance, so only same-day reorders are allowed for them.
// Both buckets are updated in one snapshot write.
func (s *DailyStore) Move(ctx context.Context, sourceKey, destKey, taskID string, destIndex int) error {
	plans, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}

	source := plans[sourceKey]
	idx := indexOfTask(source, taskID)
	if idx < 0 {
		return fmt.Errorf("task %s in %s: %w", taskID, sourceKey, model.ErrNotFound)
	}

	if sourceKey == destKey {
		reordered, err := reorderTasks(source, idx, destIndex)
		if err != nil {
			return err
		}
		plans[sourceKey] = reordered
		return s.db.SetValue(ctx, store.KeyDailyPlans, plans)
	}

	task := source[idx]
	if task.FromWeekly {
		return fmt.Errorf("task %s is pinned to its synced day: %w", taskID, model.ErrForbidden)
	}

	plans[sourceKey] = append(source[:idx], source[idx+1:]...)

	dest := plans[destKey]
	if destIndex < 0 {
		destIndex = 0
	}
	if destIndex > len(dest) {
		destIndex = len(dest)
	}
	out := make([]model.DailyTask, 0, len(dest)+1)
	out = append(out, dest[:destIndex]...)
	out = append(out, task)
	out = append(out, dest[destIndex:]...)
	plans[destKey] = out

	return s.db.SetValue(ctx, store.KeyDailyPlans, plans)
}

// Reorder moves the task at from to position to within one day's
// bucket, preserving every other task's relative order.
func (s *DailyStore) Reorder(ctx context.Context, dateKey string, from, to int) error {
	plans, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}

	reordered, err := reorderTasks(plans[dateKey], from, to)
	if err != nil {
		return err
	}
	plans[dateKey] = reordered
	return s.db.SetValue(ctx, store.KeyDailyPlans, plans)
}

// NewSyncedTask builds a provenance-tagged task for a weekly topic.
// The id combines the plan id, topic ordinal, wall clock, and a random
// suffix to stay collision-free across repeated syncs.
func NewSyncedTask(topic model.Topic, planID string, ordinal int, now time.Time) model.DailyTask {
	synced := now
	return model.DailyTask{
		ID:            fmt.Sprintf("%s-%d-%d-%s", planID, ordinal, now.UnixMilli(), shortID()),
		Title:         topic.Text,
		FromWeekly:    true,
		WeekPlanID:    planID,
		OriginalTopic: topic.Text,
		MonthID:       topic.MonthID,
		WeekNumber:    topic.WeekNumber,
		Category:      model.Categorize(topic.Text),
		CreatedAt:     now,
		SyncedAt:      &synced,
	}
}

func indexOfTask(tasks []model.DailyTask, taskID string) int {
	for i, t := range tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

// reorderTasks splices the element at from out and back in at to.
// An invalid from index is an error; to is clamped.
func reorderTasks(tasks []model.DailyTask, from, to int) ([]model.DailyTask, error) {
	if from < 0 || from >= len(tasks) {
		return nil, fmt.Errorf("task index %d: %w", from, model.ErrIndexOutOfRange)
	}
	if to < 0 {
		to = 0
	}
	if to >= len(tasks) {
		to = len(tasks) - 1
	}

	out := make([]model.DailyTask, len(tasks))
	copy(out, tasks)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)

	result := make([]model.DailyTask, 0, len(out)+1)
	result = append(result, out[:to]...)
	result = append(result, moved)
	result = append(result, out[to:]...)
	return result, nil
}

// shortID returns an eight character random suffix for composed ids.
func shortID() string {
	return uuid.New().String()[:8]
}
