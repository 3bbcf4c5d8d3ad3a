package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/enesk/study-planner/internal/model"
)

// CreateExamResult inserts a new practice exam record. Generates a
// UUID if ID is empty.
func (s *SQLiteStore) CreateExamResult(ctx context.Context, r model.ExamResult) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("exam name must not be empty")
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	sections, err := json.Marshal(r.Sections)
	if err != nil {
		return fmt.Errorf("marshaling sections for exam %s: %w", r.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO exam_results (
			id, exam_type, branch, taken_on, name, notes, sections, total, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Type, r.Branch, r.TakenOn, r.Name, r.Notes,
		string(sections), r.Total, r.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("creating exam result %s: %w", r.ID, err)
	}
	return nil
}

// GetExamResults retrieves exams of the given type ordered by the date
// they were taken, oldest first.
func (s *SQLiteStore) GetExamResults(ctx context.Context, examType string) ([]model.ExamResult, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM exam_results WHERE exam_type = ? ORDER BY taken_on, created_at",
		examType,
	)
	if err != nil {
		return nil, fmt.Errorf("querying exam results: %w", err)
	}
	defer rows.Close()

	var results []model.ExamResult
	for rows.Next() {
		r, err := scanExamResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

// DeleteExamResult removes an exam record by ID.
func (s *SQLiteStore) DeleteExamResult(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM exam_results WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting exam result %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("exam result %s: %w", id, model.ErrNotFound)
	}
	return nil
}

// scanExamResult scans an exam row from a sqlx.Rows result set.
func scanExamResult(rows *sqlx.Rows) (model.ExamResult, error) {
	var (
		r         model.ExamResult
		sections  string
		createdAt time.Time
	)

	err := rows.Scan(
		&r.ID, &r.Type, &r.Branch, &r.TakenOn, &r.Name, &r.Notes,
		&sections, &r.Total, &createdAt,
	)
	if err != nil {
		return model.ExamResult{}, fmt.Errorf("scanning exam result row: %w", err)
	}

	r.CreatedAt = createdAt
	if sections != "" {
		if err := json.Unmarshal([]byte(sections), &r.Sections); err != nil {
			return model.ExamResult{}, fmt.Errorf("unmarshaling sections: %w", err)
		}
	}

	return r, nil
}
