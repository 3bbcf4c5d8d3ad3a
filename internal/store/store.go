package store

import (
	"context"

	"github.com/enesk/study-planner/internal/model"
)

// Snapshot keys. Each logical store (catalog, weekly, daily) owns one
// key and is its sole writer; the sync engine composes multi-key
// transactions through SetValues when an operation must update two
// collections together.
const (
	KeyMonthlyPlans = "monthlyPlans"
	KeyWeeklyPlans  = "weeklyPlans"
	KeyDailyPlans   = "dailyPlans"
)

// Store defines the persistence interface: whole-collection JSON
// snapshots under stable string keys, plus relational tables for the
// notification feed, exam log, and study sessions.
type Store interface {
	// === Snapshots ===

	// GetValue unmarshals the snapshot stored under key into dest.
	// It reports false when the key has never been written; dest is
	// left untouched in that case.
	GetValue(ctx context.Context, key string, dest any) (bool, error)

	// SetValue replaces the snapshot under key with the JSON encoding
	// of value.
	SetValue(ctx context.Context, key string, value any) error

	// SetValues replaces several snapshots inside one transaction, so
	// a cross-collection operation is never partially visible.
	SetValues(ctx context.Context, values map[string]any) error

	// === Notifications ===

	CreateNotification(ctx context.Context, n model.Notification) error
	GetUnreadNotifications(ctx context.Context) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error

	// === Exam results ===

	CreateExamResult(ctx context.Context, r model.ExamResult) error
	GetExamResults(ctx context.Context, examType string) ([]model.ExamResult, error)
	DeleteExamResult(ctx context.Context, id string) error

	// === Study sessions ===

	CreateStudySession(ctx context.Context, s model.StudySession) error
	GetStudySessions(ctx context.Context) ([]model.StudySession, error)
	ClearStudySessions(ctx context.Context) error
}
