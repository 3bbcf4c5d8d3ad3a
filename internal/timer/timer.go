// Package timer records completed study stopwatch sessions.
package timer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/enesk/study-planner/internal/model"
	"github.com/enesk/study-planner/internal/store"
	"github.com/enesk/study-planner/internal/week"
)

// Service persists finished study sessions and aggregates them.
type Service struct {
	db  store.Store
	log zerolog.Logger
}

func NewService(db store.Store, log zerolog.Logger) *Service {
	return &Service{db: db, log: log.With().Str("component", "timer").Logger()}
}

// Save records a completed session. The duration is derived from the
// interval; an empty or inverted interval is rejected.
func (s *Service) Save(ctx context.Context, startedAt, endedAt time.Time) (model.StudySession, error) {
	if startedAt.IsZero() || endedAt.IsZero() {
		return model.StudySession{}, fmt.Errorf("session interval: %w", model.ErrInvalidDate)
	}
	d := endedAt.Sub(startedAt)
	if d <= 0 {
		return model.StudySession{}, fmt.Errorf("session ends %s before it starts", startedAt.Sub(endedAt))
	}

	sess := model.StudySession{
		ID:        uuid.NewString(),
		StartedAt: startedAt,
		EndedAt:   endedAt,
		Duration:  d.Milliseconds(),
		CreatedAt: time.Now(),
	}
	if err := s.db.CreateStudySession(ctx, sess); err != nil {
		return model.StudySession{}, err
	}
	s.log.Debug().Str("id", sess.ID).Int64("durationMs", sess.Duration).Msg("study session saved")
	return sess, nil
}

// List returns all recorded sessions in start order.
func (s *Service) List(ctx context.Context) ([]model.StudySession, error) {
	return s.db.GetStudySessions(ctx)
}

// Clear deletes the entire session history.
func (s *Service) Clear(ctx context.Context) error {
	return s.db.ClearStudySessions(ctx)
}

// TotalsByDay sums recorded durations per calendar day, keyed by the
// canonical YYYY-MM-DD date key of each session's start.
func (s *Service) TotalsByDay(ctx context.Context) (map[string]time.Duration, error) {
	sessions, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]time.Duration, len(sessions))
	for _, sess := range sessions {
		key, err := week.Key(sess.StartedAt)
		if err != nil {
			continue
		}
		totals[key] += time.Duration(sess.Duration) * time.Millisecond
	}
	return totals, nil
}
