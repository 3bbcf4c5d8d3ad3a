package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/enesk/study-planner/internal/model"
	"github.com/enesk/study-planner/internal/plan"
	"github.com/enesk/study-planner/internal/store"
	"github.com/enesk/study-planner/internal/week"
)

// Stats summarizes one reconciliation run.
type Stats struct {
	Created int `json:"created"`
	Removed int `json:"removed"`
}

// ManualSync reconciles the daily buckets against the weekly plans in
// two passes. The forward pass materializes every weekly topic as a
// daily task, distributing topics round-robin across the plan's seven
// days; tasks that already exist (matched on weekPlanId plus original
// topic text) are skipped. The cleanup pass removes synced tasks whose
// source plan or topic no longer exists. Each pass writes at most once,
// and only when it changed something, so running the sync twice in a
// row is a no-op.
func (e *Engine) ManualSync(ctx context.Context) (Stats, error) {
	var stats Stats

	created, err := e.syncWeeklyToDaily(ctx)
	if err != nil {
		return stats, err
	}
	stats.Created = created

	removed, err := e.cleanupRemovedTopics(ctx)
	if err != nil {
		return stats, err
	}
	stats.Removed = removed

	if stats.Created > 0 || stats.Removed > 0 {
		e.notify.Notify(ctx, model.NotifySuccess,
			fmt.Sprintf("Senkronizasyon tamamlandı: %d eklendi, %d kaldırıldı", stats.Created, stats.Removed))
	} else {
		e.notify.Notify(ctx, model.NotifyInfo, "Planlar zaten güncel")
	}
	return stats, nil
}

func (e *Engine) syncWeeklyToDaily(ctx context.Context) (int, error) {
	plans, err := e.weekly.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	if len(plans) == 0 {
		return 0, nil
	}

	daily, err := e.daily.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	created := 0

	for _, p := range plans {
		if !p.Valid() {
			continue
		}

		month, err := e.catalog.Month(ctx, p.MonthID)
		if err != nil {
			e.log.Warn().Str("plan", p.ID).Str("month", p.MonthID).
				Msg("skipping plan with unknown month")
			continue
		}

		anchor := time.Date(month.Year, time.Month(month.Month), 1, 0, 0, 0, 0, time.Local).
			AddDate(0, 0, (p.WeekNumber-1)*7)
		dates, err := week.Dates(anchor)
		if err != nil {
			return created, fmt.Errorf("resolving dates for plan %s: %w", p.ID, err)
		}

		for i, topic := range p.Topics {
			day := dates[i%7]
			key, err := week.Key(day)
			if err != nil {
				return created, err
			}
			if hasSyncedTask(daily[key], p.ID, topic.Text) {
				continue
			}
			daily[key] = append(daily[key], plan.NewSyncedTask(topic, p.ID, i, now))
			created++
		}
	}

	if created == 0 {
		return 0, nil
	}
	if err := e.db.SetValue(ctx, store.KeyDailyPlans, daily); err != nil {
		return 0, fmt.Errorf("writing synced daily plans: %w", err)
	}
	e.log.Info().Int("created", created).Msg("weekly topics synced to daily plans")
	return created, nil
}

func (e *Engine) cleanupRemovedTopics(ctx context.Context) (int, error) {
	daily, err := e.daily.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	if len(daily) == 0 {
		return 0, nil
	}

	plans, err := e.weekly.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for key, tasks := range daily {
		kept := tasks[:0:0]
		for _, t := range tasks {
			if !t.Traceable() {
				kept = append(kept, t)
				continue
			}
			p, ok := plan.FindPlanByID(plans, t.WeekPlanID)
			if ok && planHasTopicText(p, t.OriginalTopic) {
				kept = append(kept, t)
				continue
			}
			removed++
		}
		if len(kept) != len(tasks) {
			daily[key] = kept
		}
	}

	if removed == 0 {
		return 0, nil
	}
	if err := e.db.SetValue(ctx, store.KeyDailyPlans, daily); err != nil {
		return 0, fmt.Errorf("writing cleaned daily plans: %w", err)
	}
	e.log.Info().Int("removed", removed).Msg("orphaned synced tasks removed")
	return removed, nil
}

func hasSyncedTask(tasks []model.DailyTask, planID, topicText string) bool {
	for _, t := range tasks {
		if t.WeekPlanID == planID && t.OriginalTopic == topicText {
			return true
		}
	}
	return false
}

func planHasTopicText(p model.WeeklyPlan, text string) bool {
	for _, t := range p.Topics {
		if t.Text == text {
			return true
		}
	}
	return false
}

func shortSuffix() string {
	return uuid.NewString()[:8]
}
