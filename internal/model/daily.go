package model

import "time"

// DailyTask is one entry inside a date-keyed bucket. Tasks either
// originate from direct user entry (FromWeekly false) or were synced
// out of a weekly plan (FromWeekly true), in which case WeekPlanID and
// OriginalTopic trace the task back to its origin.
type DailyTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`

	// FromWeekly marks tasks owned by the sync engine. They cannot be
	// deleted through the generic removal path or moved across days.
	FromWeekly bool `json:"fromWeekly"`

	// Provenance back-references, set when FromWeekly is true. A task
	// with FromWeekly set but an empty WeekPlanID lost its source at
	// creation time and behaves like a freestanding task during
	// cleanup.
	WeekPlanID    string `json:"weekPlanId,omitempty"`
	OriginalTopic string `json:"originalTopic,omitempty"`
	MonthID       string `json:"monthId,omitempty"`
	WeekNumber    int    `json:"weekNumber,omitempty"`
	Category      string `json:"category,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	SyncedAt  *time.Time `json:"syncedAt,omitempty"`
}

// Traceable reports whether the cleanup pass should verify this task
// against its owning weekly plan.
func (t DailyTask) Traceable() bool {
	return t.FromWeekly && t.WeekPlanID != ""
}

// DailyPlans maps canonical YYYY-MM-DD date keys to the ordered task
// list for that day. Order within a bucket is meaningful.
type DailyPlans map[string][]DailyTask
