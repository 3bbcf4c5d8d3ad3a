package model

import (
	"sort"
	"time"
)

// Month is a catalog entry: the source of truth for a month's subjects
// and their not-yet-scheduled topics. The seed catalog installs these
// on first run; catalog editing operations mutate them afterwards.
type Month struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Year  int    `json:"year"`
	Month int    `json:"month"` // 1-12

	// Subjects maps a subject name to its ordered topic list. Subjects
	// whose list empties out through pool assignment are removed from
	// the map entirely.
	Subjects map[string][]string `json:"subjects"`

	// Goals are month-level goal texts, distinct from weekly plan goals.
	Goals []string `json:"goals,omitempty"`
}

// SubjectNames returns the month's subject names in sorted order, for
// deterministic pool iteration.
func (m Month) SubjectNames() []string {
	names := make([]string, 0, len(m.Subjects))
	for name := range m.Subjects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TopicCount returns the total number of pooled topics across all
// subjects.
func (m Month) TopicCount() int {
	count := 0
	for _, topics := range m.Subjects {
		count += len(topics)
	}
	return count
}

// Contains reports whether the given date falls inside this calendar
// month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && int(t.Month()) == m.Month
}
