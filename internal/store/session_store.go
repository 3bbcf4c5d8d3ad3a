package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/enesk/study-planner/internal/model"
)

// CreateStudySession inserts a completed stopwatch session.
func (s *SQLiteStore) CreateStudySession(ctx context.Context, sess model.StudySession) error {
	if sess.Duration <= 0 {
		return fmt.Errorf("study session duration must be positive")
	}
	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO study_sessions (id, started_at, ended_at, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		sess.ID, sess.StartedAt.UTC(), sess.EndedAt.UTC(), sess.Duration, sess.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("creating study session %s: %w", sess.ID, err)
	}
	return nil
}

// GetStudySessions retrieves all sessions ordered by start time.
func (s *SQLiteStore) GetStudySessions(ctx context.Context) ([]model.StudySession, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM study_sessions ORDER BY started_at",
	)
	if err != nil {
		return nil, fmt.Errorf("querying study sessions: %w", err)
	}
	defer rows.Close()

	var sessions []model.StudySession
	for rows.Next() {
		var sess model.StudySession
		var startedAt, endedAt, createdAt time.Time
		if err := rows.Scan(&sess.ID, &startedAt, &endedAt, &sess.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning study session row: %w", err)
		}
		sess.StartedAt = startedAt
		sess.EndedAt = endedAt
		sess.CreatedAt = createdAt
		sessions = append(sessions, sess)
	}

	return sessions, rows.Err()
}

// ClearStudySessions removes the entire session history.
func (s *SQLiteStore) ClearStudySessions(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM study_sessions"); err != nil {
		return fmt.Errorf("clearing study sessions: %w", err)
	}
	return nil
}
