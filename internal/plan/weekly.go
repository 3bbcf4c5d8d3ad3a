// Package plan implements the weekly and daily planning stores on top
// of the snapshot persistence layer. Every mutation computes the full
// next collection value before issuing a single store write, so no
// intermediate state is ever observable.
package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/enesk/study-planner/internal/model"
	"github.com/enesk/study-planner/internal/store"
)

// minWeeksPerMonth is the dense floor of selectable weeks offered for
// any month, whether or not backing records exist.
const minWeeksPerMonth = 4

// WeeklyStore owns the weeklyPlans snapshot: one record per
// (month, week) pair, created lazily on first mutation.
type WeeklyStore struct {
	db  store.Store
	log zerolog.Logger
}

// NewWeeklyStore creates a weekly plan store backed by db.
func NewWeeklyStore(db store.Store, log zerolog.Logger) *WeeklyStore {
	return &WeeklyStore{db: db, log: log.With().Str("component", "weekly").Logger()}
}

// Snapshot returns the full persisted collection. The sync engine uses
// it to compose cross-store transactions; other callers should prefer
// the keyed accessors.
func (s *WeeklyStore) Snapshot(ctx context.Context) ([]model.WeeklyPlan, error) {
	var plans []model.WeeklyPlan
	if _, err := s.db.GetValue(ctx, store.KeyWeeklyPlans, &plans); err != nil {
		return nil, fmt.Errorf("loading weekly plans: %w", err)
	}
	return plans, nil
}

// Restore replaces the full collection, used by the undo/redo history.
func (s *WeeklyStore) Restore(ctx context.Context, plans []model.WeeklyPlan) error {
	return s.db.SetValue(ctx, store.KeyWeeklyPlans, plans)
}

// Get returns the plan for (monthID, weekNumber), or the empty
// template if none has been persisted yet. It never returns a nil-ish
// record, so callers can read topics and goals without branching.
func (s *WeeklyStore) Get(ctx context.Context, monthID string, weekNumber int) (model.WeeklyPlan, error) {
	plans, err := s.Snapshot(ctx)
	if err != nil {
		return model.WeeklyPlan{}, err
	}
	if p, ok := findPlan(plans, monthID, weekNumber); ok {
		return p, nil
	}
	return model.NewWeeklyPlan(monthID, weekNumber), nil
}

// Patch carries a partial weekly plan update. Nil fields are left
// untouched by Upsert.
type Patch struct {
	Topics *[]model.Topic
	Goals  *[]model.Goal
	Notes  *string
}

// Upsert merges patch into the (monthID, weekNumber) record, creating
// it from the template if absent. The backing collection entry is
// replaced atomically in a single snapshot write.
func (s *WeeklyStore) Upsert(ctx context.Context, monthID string, weekNumber int, patch Patch) error {
	plans, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}

	idx := indexOfPlan(plans, monthID, weekNumber)
	if idx < 0 {
		plans = append(plans, model.NewWeeklyPlan(monthID, weekNumber))
		idx = len(plans) - 1
	}

	if patch.Topics != nil {
		plans[idx].Topics = *patch.Topics
	}
	if patch.Goals != nil {
		plans[idx].Goals = *patch.Goals
	}
	if patch.Notes != nil {
		plans[idx].Notes = *patch.Notes
	}

	return s.db.SetValue(ctx, store.KeyWeeklyPlans, plans)
}

// RemoveTopicAt removes and returns the topic at index from the
// (monthID, weekNumber) plan.
func (s *WeeklyStore) RemoveTopicAt(ctx context.Context, monthID string, weekNumber, index int) (model.Topic, error) {
	plans, err := s.Snapshot(ctx)
	if err != nil {
		return model.Topic{}, err
	}

	next, removed, err := ApplyTopicRemoval(plans, monthID, weekNumber, index)
	if err != nil {
		return model.Topic{}, err
	}
	if err := s.db.SetValue(ctx, store.KeyWeeklyPlans, next); err != nil {
		return model.Topic{}, err
	}
	return removed, nil
}

// ListWeeksForMonth returns the selectable week numbers for a month:
// an ascending dense range from 1 through max(4, highest persisted
// week). Weeks without backing records are still offered; they only
// materialize on first write.
func (s *WeeklyStore) ListWeeksForMonth(ctx context.Context, monthID string) ([]int, error) {
	plans, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	max := minWeeksPerMonth
	for _, p := range plans {
		if p.MonthID == monthID && p.WeekNumber > max {
			max = p.WeekNumber
		}
	}

	weeks := make([]int, max)
	for i := range weeks {
		weeks[i] = i + 1
	}
	return weeks, nil
}

// AddWeek materializes a new empty week after the month's highest
// existing week number and returns it.
func (s *WeeklyStore) AddWeek(ctx context.Context, monthID string) (int, error) {
	plans, err := s.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	next := 0
	for _, p := range plans {
		if p.MonthID == monthID && p.WeekNumber > next {
			next = p.WeekNumber
		}
	}
	next++

	plans = append(plans, model.NewWeeklyPlan(monthID, next))
	if err := s.db.SetValue(ctx, store.KeyWeeklyPlans, plans); err != nil {
		return 0, err
	}
	return next, nil
}

// DeleteWeek removes the (monthID, weekNumber) record entirely. Synced
// daily tasks pointing at it become orphans until the next cleanup
// pass purges them.
func (s *WeeklyStore) DeleteWeek(ctx context.Context, monthID string, weekNumber int) error {
	plans, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}

	idx := indexOfPlan(plans, monthID, weekNumber)
	if idx < 0 {
		return fmt.Errorf("weekly plan %s: %w", model.WeekPlanID(monthID, weekNumber), model.ErrNotFound)
	}
	plans = append(plans[:idx], plans[idx+1:]...)
	return s.db.SetValue(ctx, store.KeyWeeklyPlans, plans)
}

// AddGoal appends a goal to the (monthID, weekNumber) plan. Goal ids
// are timestamp-based.
func (s *WeeklyStore) AddGoal(ctx context.Context, monthID string, weekNumber int, text string) (model.Goal, error) {
	goal := model.Goal{ID: time.Now().UnixMilli(), Text: text}

	plan, err := s.Get(ctx, monthID, weekNumber)
	if err != nil {
		return model.Goal{}, err
	}
	goals := append(plan.Goals, goal)
	if err := s.Upsert(ctx, monthID, weekNumber, Patch{Goals: &goals}); err != nil {
		return model.Goal{}, err
	}
	return goal, nil
}

// ToggleGoal flips a goal's completed flag.
func (s *WeeklyStore) ToggleGoal(ctx context.Context, monthID string, weekNumber int, goalID int64) error {
	plan, err := s.Get(ctx, monthID, weekNumber)
	if err != nil {
		return err
	}

	found := false
	goals := make([]model.Goal, len(plan.Goals))
	for i, g := range plan.Goals {
		if g.ID == goalID {
			g.Completed = !g.Completed
			found = true
		}
		goals[i] = g
	}
	if !found {
		return fmt.Errorf("goal %d in %s: %w", goalID, plan.ID, model.ErrNotFound)
	}
	return s.Upsert(ctx, monthID, weekNumber, Patch{Goals: &goals})
}

// RemoveGoal deletes a goal by id.
func (s *WeeklyStore) RemoveGoal(ctx context.Context, monthID string, weekNumber int, goalID int64) error {
	plan, err := s.Get(ctx, monthID, weekNumber)
	if err != nil {
		return err
	}

	goals := make([]model.Goal, 0, len(plan.Goals))
	for _, g := range plan.Goals {
		if g.ID != goalID {
			goals = append(goals, g)
		}
	}
	if len(goals) == len(plan.Goals) {
		return fmt.Errorf("goal %d in %s: %w", goalID, plan.ID, model.ErrNotFound)
	}
	return s.Upsert(ctx, monthID, weekNumber, Patch{Goals: &goals})
}

// SetNotes replaces the free-text notes of a plan.
func (s *WeeklyStore) SetNotes(ctx context.Context, monthID string, weekNumber int, notes string) error {
	return s.Upsert(ctx, monthID, weekNumber, Patch{Notes: &notes})
}

// ReorderTopics moves the topic at from to position to within a plan,
// preserving the relative order of all other topics.
func (s *WeeklyStore) ReorderTopics(ctx context.Context, monthID string, weekNumber, from, to int) error {
	plans, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}

	idx := indexOfPlan(plans, monthID, weekNumber)
	if idx < 0 {
		return fmt.Errorf("weekly plan %s: %w", model.WeekPlanID(monthID, weekNumber), model.ErrNotFound)
	}

	topics, err := reorderTopics(plans[idx].Topics, from, to)
	if err != nil {
		return err
	}
	plans[idx].Topics = topics
	return s.db.SetValue(ctx, store.KeyWeeklyPlans, plans)
}

// === Pure helpers (shared with the sync engine) ===

// ApplyTopicAppend returns a copy of plans with topic appended to the
// (monthID, weekNumber) record, creating the record if absent.
func ApplyTopicAppend(plans []model.WeeklyPlan, monthID string, weekNumber int, topic model.Topic) []model.WeeklyPlan {
	out := clonePlans(plans)
	idx := indexOfPlan(out, monthID, weekNumber)
	if idx < 0 {
		out = append(out, model.NewWeeklyPlan(monthID, weekNumber))
		idx = len(out) - 1
	}
	out[idx].Topics = append(out[idx].Topics, topic)
	return out
}

// ApplyTopicRemoval returns a copy of plans with the topic at index
// removed from the (monthID, weekNumber) record.
func ApplyTopicRemoval(plans []model.WeeklyPlan, monthID string, weekNumber, index int) ([]model.WeeklyPlan, model.Topic, error) {
	out := clonePlans(plans)
	idx := indexOfPlan(out, monthID, weekNumber)
	if idx < 0 {
		return nil, model.Topic{}, fmt.Errorf("weekly plan %s: %w",
			model.WeekPlanID(monthID, weekNumber), model.ErrNotFound)
	}

	topics := out[idx].Topics
	if index < 0 || index >= len(topics) {
		return nil, model.Topic{}, fmt.Errorf("topic index %d in %s: %w",
			index, out[idx].ID, model.ErrIndexOutOfRange)
	}

	removed := topics[index]
	out[idx].Topics = append(topics[:index], topics[index+1:]...)
	return out, removed, nil
}

// FindPlanByID returns the plan with the given derived id.
func FindPlanByID(plans []model.WeeklyPlan, id string) (model.WeeklyPlan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return model.WeeklyPlan{}, false
}

func findPlan(plans []model.WeeklyPlan, monthID string, weekNumber int) (model.WeeklyPlan, bool) {
	if idx := indexOfPlan(plans, monthID, weekNumber); idx >= 0 {
		return plans[idx], true
	}
	return model.WeeklyPlan{}, false
}

func indexOfPlan(plans []model.WeeklyPlan, monthID string, weekNumber int) int {
	for i, p := range plans {
		if p.MonthID == monthID && p.WeekNumber == weekNumber {
			return i
		}
	}
	return -1
}

// reorderTopics splices the element at from out and back in at to.
// An invalid from index is an error; to is clamped.
func reorderTopics(topics []model.Topic, from, to int) ([]model.Topic, error) {
	if from < 0 || from >= len(topics) {
		return nil, fmt.Errorf("topic index %d: %w", from, model.ErrIndexOutOfRange)
	}
	if to < 0 {
		to = 0
	}
	if to >= len(topics) {
		to = len(topics) - 1
	}

	out := make([]model.Topic, len(topics))
	copy(out, topics)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)

	tail := make([]model.Topic, 0, len(out)+1)
	tail = append(tail, out[:to]...)
	tail = append(tail, moved)
	tail = append(tail, out[to:]...)
	return tail, nil
}

// clonePlans copies the collection and each record's topic and goal
// slices so callers can mutate freely.
func clonePlans(plans []model.WeeklyPlan) []model.WeeklyPlan {
	out := make([]model.WeeklyPlan, len(plans))
	copy(out, plans)
	for i := range out {
		topics := make([]model.Topic, len(out[i].Topics))
		copy(topics, out[i].Topics)
		out[i].Topics = topics

		goals := make([]model.Goal, len(out[i].Goals))
		copy(goals, out[i].Goals)
		out[i].Goals = goals
	}
	return out
}
