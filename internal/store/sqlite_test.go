package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enesk/study-planner/internal/model"
	"github.com/enesk/study-planner/internal/store"
	"github.com/enesk/study-planner/tests/testutil"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	plans := []model.WeeklyPlan{
		{
			ID:         "august-2025-week-1",
			MonthID:    "august-2025",
			WeekNumber: 1,
			Topics: []model.Topic{
				{ID: "week-1-1", Text: "Temel Kavramlar", Subject: "Matematik", MonthID: "august-2025", WeekNumber: 1},
			},
		},
	}
	require.NoError(t, s.SetValue(ctx, store.KeyWeeklyPlans, plans))

	var got []model.WeeklyPlan
	found, err := s.GetValue(ctx, store.KeyWeeklyPlans, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, plans, got)
}

func TestGetValueMissingKey(t *testing.T) {
	s := testutil.NewTestStore(t)

	var dest []model.WeeklyPlan
	found, err := s.GetValue(context.Background(), "no-such-key", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, dest)
}

func TestSetValueOverwrites(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetValue(ctx, store.KeyDailyPlans, map[string][]model.DailyTask{
		"2025-08-05": {{ID: "a", Title: "first"}},
	}))
	require.NoError(t, s.SetValue(ctx, store.KeyDailyPlans, map[string][]model.DailyTask{
		"2025-08-06": {{ID: "b", Title: "second"}},
	}))

	var got map[string][]model.DailyTask
	found, err := s.GetValue(ctx, store.KeyDailyPlans, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotContains(t, got, "2025-08-05", "snapshot writes replace, not merge")
	assert.Len(t, got["2025-08-06"], 1)
}

func TestSetValuesWritesAllKeys(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	err := s.SetValues(ctx, map[string]any{
		store.KeyMonthlyPlans: []model.Month{{ID: "august-2025", Name: "Ağustos", Year: 2025, Month: 8}},
		store.KeyWeeklyPlans:  []model.WeeklyPlan{{ID: "august-2025-week-1", MonthID: "august-2025", WeekNumber: 1}},
	})
	require.NoError(t, err)

	var months []model.Month
	found, err := s.GetValue(ctx, store.KeyMonthlyPlans, &months)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, months, 1)

	var plans []model.WeeklyPlan
	found, err = s.GetValue(ctx, store.KeyWeeklyPlans, &plans)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, plans, 1)
}

func TestNotificationLifecycle(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	n := model.Notification{Kind: model.NotifySuccess, Message: "senkronizasyon tamamlandı"}
	require.NoError(t, s.CreateNotification(ctx, n))

	unread, err := s.GetUnreadNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.NotEmpty(t, unread[0].ID)
	assert.Equal(t, model.NotifySuccess, unread[0].Kind)

	require.NoError(t, s.MarkNotificationRead(ctx, unread[0].ID))

	unread, err = s.GetUnreadNotifications(ctx)
	require.NoError(t, err)
	assert.Empty(t, unread)

	err = s.MarkNotificationRead(ctx, "missing-id")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestExamResultLifecycle(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	r := model.ExamResult{
		ID:      "exam-1",
		Type:    model.ExamTypeTYT,
		TakenOn: "2025-08-10",
		Name:    "3D Deneme 1",
		Sections: map[string]float64{
			"turkce":    32.5,
			"matematik": 28.25,
		},
		Total:     60.75,
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.CreateExamResult(ctx, r))

	results, err := s.GetExamResults(ctx, model.ExamTypeTYT)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, r.Sections, results[0].Sections)
	assert.InDelta(t, 60.75, results[0].Total, 0.001)

	other, err := s.GetExamResults(ctx, model.ExamTypeAYT)
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, s.DeleteExamResult(ctx, "exam-1"))
	results, err = s.GetExamResults(ctx, model.ExamTypeTYT)
	require.NoError(t, err)
	assert.Empty(t, results)

	err = s.DeleteExamResult(ctx, "exam-1")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestStudySessionLifecycle(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	start := time.Now().Add(-25 * time.Minute).Truncate(time.Second)
	sess := model.StudySession{
		ID:        "sess-1",
		StartedAt: start,
		EndedAt:   start.Add(25 * time.Minute),
		Duration:  (25 * time.Minute).Milliseconds(),
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.CreateStudySession(ctx, sess))

	sessions, err := s.GetStudySessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, sess.Duration, sessions[0].Duration)

	require.NoError(t, s.ClearStudySessions(ctx))
	sessions, err = s.GetStudySessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
