// Package sync implements the reconciliation engine that keeps the
// monthly pool, weekly plans, and daily task buckets mutually
// consistent. A topic lives in exactly one of the three collections;
// every transition here computes the full next state of the affected
// snapshots and writes them in a single store transaction.
package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/enesk/study-planner/internal/catalog"
	"github.com/enesk/study-planner/internal/model"
	"github.com/enesk/study-planner/internal/notify"
	"github.com/enesk/study-planner/internal/plan"
	"github.com/enesk/study-planner/internal/store"
	"github.com/enesk/study-planner/internal/week"
)

// Engine coordinates topic transitions between the catalog pool, the
// weekly plan store, and the daily plan store.
type Engine struct {
	catalog *catalog.Store
	weekly  *plan.WeeklyStore
	daily   *plan.DailyStore
	db      store.Store
	notify  notify.Notifier
	log     zerolog.Logger
}

// New creates a reconciliation engine over the given stores.
func New(cat *catalog.Store, weekly *plan.WeeklyStore, daily *plan.DailyStore, db store.Store, sink notify.Notifier, log zerolog.Logger) *Engine {
	return &Engine{
		catalog: cat,
		weekly:  weekly,
		daily:   daily,
		db:      db,
		notify:  sink,
		log:     log.With().Str("component", "sync").Logger(),
	}
}

// AssignToWeek moves the pooled topic at sourceIndex of a month's
// subject into the (monthID, weekNumber) weekly plan. The pool entry
// and the plan entry are written together: a topic is never visible in
// both, and never lost between them. Assignments are one-way; there is
// no inverse operation returning a weekly topic to the pool.
func (e *Engine) AssignToWeek(ctx context.Context, monthID string, weekNumber int, subject string, sourceIndex int) error {
	months, err := e.catalog.Months(ctx)
	if err != nil {
		return err
	}

	nextMonths, text, err := catalog.ApplyPoolRemoval(months, monthID, subject, sourceIndex)
	if err != nil {
		return err
	}

	plans, err := e.weekly.Snapshot(ctx)
	if err != nil {
		return err
	}
	if existing, ok := plan.FindPlanByID(plans, model.WeekPlanID(monthID, weekNumber)); ok {
		if existing.HasTopic(text, subject) {
			e.notify.Notify(ctx, model.NotifyWarning,
				fmt.Sprintf("\"%s\" konusu zaten %d. haftada", text, weekNumber))
			return nil
		}
	}

	topic := model.Topic{
		ID:         fmt.Sprintf("week-%d-%d", weekNumber, time.Now().UnixMilli()),
		Text:       text,
		Subject:    subject,
		MonthID:    monthID,
		WeekNumber: weekNumber,
	}
	nextPlans := plan.ApplyTopicAppend(plans, monthID, weekNumber, topic)

	err = e.db.SetValues(ctx, map[string]any{
		store.KeyMonthlyPlans: nextMonths,
		store.KeyWeeklyPlans:  nextPlans,
	})
	if err != nil {
		return fmt.Errorf("assigning %q to week %d: %w", text, weekNumber, err)
	}

	e.log.Debug().Str("topic", text).Str("month", monthID).Int("week", weekNumber).
		Msg("topic assigned to week")
	e.notify.Notify(ctx, model.NotifySuccess,
		fmt.Sprintf("\"%s\" konusu %d. haftaya eklendi", text, weekNumber))
	return nil
}

// AssignToDay moves a weekly topic into the bucket of a specific day.
// The owning plan is resolved from the target day through the week
// resolver, never trusted from caller state: the plan may have changed
// between render and drop. When the plan (or the topic inside it) can
// no longer be found, the daily task is still created without a
// removable source, so the cleanup pass will leave it alone, and a
// warning is surfaced.
func (e *Engine) AssignToDay(ctx context.Context, day time.Time, topicText string, sourceIndex int) error {
	dayKey, err := week.Key(day)
	if err != nil {
		return err
	}
	weekNumber, err := week.NumberInMonth(day)
	if err != nil {
		return err
	}

	daily, err := e.daily.Snapshot(ctx)
	if err != nil {
		return err
	}

	now := time.Now()

	month, err := e.catalog.MonthFor(ctx, day)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return err
	}
	if err == nil {
		planID := model.WeekPlanID(month.ID, weekNumber)
		plans, err := e.weekly.Snapshot(ctx)
		if err != nil {
			return err
		}

		if p, ok := plan.FindPlanByID(plans, planID); ok {
			removeIdx := resolveTopicIndex(p.Topics, topicText, sourceIndex)
			if removeIdx >= 0 {
				topic := p.Topics[removeIdx]
				task := plan.NewSyncedTask(topic, planID, removeIdx, now)
				daily[dayKey] = append(daily[dayKey], task)

				nextPlans, _, err := plan.ApplyTopicRemoval(plans, month.ID, weekNumber, removeIdx)
				if err != nil {
					return err
				}

				err = e.db.SetValues(ctx, map[string]any{
					store.KeyWeeklyPlans: nextPlans,
					store.KeyDailyPlans:  daily,
				})
				if err != nil {
					return fmt.Errorf("assigning %q to %s: %w", topicText, dayKey, err)
				}

				e.notify.Notify(ctx, model.NotifySuccess,
					fmt.Sprintf("\"%s\" konusu %s gününe eklendi", topicText, dayKey))
				return nil
			}
		}
	}

	// No resolvable source: keep the task, but without a weekPlanId so
	// cleanup treats it as freestanding.
	task := model.DailyTask{
		ID:         fmt.Sprintf("topic-%d-%s", now.UnixMilli(), shortSuffix()),
		Title:      topicText,
		FromWeekly: true,
		Category:   model.Categorize(topicText),
		CreatedAt:  now,
	}
	daily[dayKey] = append(daily[dayKey], task)

	if err := e.db.SetValue(ctx, store.KeyDailyPlans, daily); err != nil {
		return fmt.Errorf("assigning %q to %s: %w", topicText, dayKey, err)
	}

	e.log.Warn().Str("topic", topicText).Str("day", dayKey).Int("week", weekNumber).
		Msg("weekly plan not found for dropped topic; task created without source")
	e.notify.Notify(ctx, model.NotifyWarning,
		fmt.Sprintf("\"%s\" için haftalık plan bulunamadı; görev kaynaksız eklendi", topicText))
	return nil
}

// ReorderWeekTopics moves a topic within a weekly plan's ordered list.
func (e *Engine) ReorderWeekTopics(ctx context.Context, monthID string, weekNumber, from, to int) error {
	return e.weekly.ReorderTopics(ctx, monthID, weekNumber, from, to)
}

// resolveTopicIndex validates a caller-supplied index against the
// current topic list, falling back to a text search when the list
// changed between gesture start and drop.
func resolveTopicIndex(topics []model.Topic, text string, index int) int {
	if index >= 0 && index < len(topics) && topics[index].Text == text {
		return index
	}
	for i, t := range topics {
		if t.Text == text {
			return i
		}
	}
	return -1
}
