package model

import "fmt"

// Topic is an atomic unit of study content. A topic lives in exactly
// one place at a time: the monthly pool, a weekly plan's topic list,
// or (as a provenance-tagged DailyTask) a day bucket.
type Topic struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Subject    string `json:"subject"`
	MonthID    string `json:"monthId"`
	WeekNumber int    `json:"weekNumber,omitempty"`
	Completed  bool   `json:"completed"`
}

// Goal is a user-defined weekly target. Goals are created, toggled,
// and deleted by direct user action only; the sync engine never
// touches them.
type Goal struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// WeeklyPlan holds the ordered topics, goals, and notes for one
// (month, week) pair. Topic order is meaningful: it is the display and
// drag order, and the sync pass distributes topics across the week's
// days by ordinal position.
type WeeklyPlan struct {
	ID         string  `json:"id"`
	MonthID    string  `json:"monthId"`
	WeekNumber int     `json:"weekNumber"`
	Topics     []Topic `json:"topics"`
	Goals      []Goal  `json:"goals"`
	Notes      string  `json:"notes"`
}

// WeekPlanID derives the stable identifier for a (month, week) pair.
func WeekPlanID(monthID string, weekNumber int) string {
	return fmt.Sprintf("%s-week-%d", monthID, weekNumber)
}

// NewWeeklyPlan returns the empty template record for a (month, week)
// pair. Stores hand this out instead of nil so callers can read
// without branching; it is only persisted on first write.
func NewWeeklyPlan(monthID string, weekNumber int) WeeklyPlan {
	return WeeklyPlan{
		ID:         WeekPlanID(monthID, weekNumber),
		MonthID:    monthID,
		WeekNumber: weekNumber,
		Topics:     []Topic{},
		Goals:      []Goal{},
	}
}

// HasTopic reports whether the plan already contains a topic with the
// given text and subject.
func (p WeeklyPlan) HasTopic(text, subject string) bool {
	for _, t := range p.Topics {
		if t.Text == text && t.Subject == subject {
			return true
		}
	}
	return false
}

// Valid reports whether the plan is a candidate for the forward sync
// pass: it must carry an id, a positive week number, and at least one
// topic.
func (p WeeklyPlan) Valid() bool {
	return p.ID != "" && p.WeekNumber >= 1 && len(p.Topics) > 0
}
