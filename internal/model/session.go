package model

import "time"

// StudySession is one completed stopwatch run. Live stopwatch state
// (pause carry, laps) belongs to the presentation layer; only finished
// sessions are persisted.
type StudySession struct {
	ID        string    `json:"id" db:"id"`
	StartedAt time.Time `json:"startedAt" db:"started_at"`
	EndedAt   time.Time `json:"endedAt" db:"ended_at"`
	Duration  int64     `json:"durationMs" db:"duration_ms"` // milliseconds
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
