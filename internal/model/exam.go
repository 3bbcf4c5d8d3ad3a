package model

import "time"

// Exam type constants.
const (
	ExamTypeTYT = "TYT"
	ExamTypeAYT = "AYT"
)

// ExamResult is one logged practice exam. Sections holds the net score
// per section; the key set depends on the exam type (TYT: turkce,
// sosyal, matematik, fen; AYT: mat, fiz, kim, bio for the science
// branch).
type ExamResult struct {
	ID      string `json:"id" db:"id"`
	Type    string `json:"type" db:"exam_type"`
	Branch  string `json:"branch,omitempty" db:"branch"`
	TakenOn string `json:"takenOn" db:"taken_on"` // canonical YYYY-MM-DD
	Name    string `json:"name" db:"name"`
	Notes   string `json:"notes" db:"notes"`

	Sections map[string]float64 `json:"sections" db:"-"`
	Total    float64            `json:"total" db:"total"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// SumSections returns the total net across all sections.
func (r ExamResult) SumSections() float64 {
	var sum float64
	for _, v := range r.Sections {
		sum += v
	}
	return sum
}
