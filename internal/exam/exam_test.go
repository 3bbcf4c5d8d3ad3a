package exam_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enesk/study-planner/internal/exam"
	"github.com/enesk/study-planner/internal/model"
	"github.com/enesk/study-planner/tests/testutil"
)

func newService(t *testing.T) (*exam.Service, context.Context) {
	t.Helper()
	return exam.NewService(testutil.NewTestStore(t), testutil.Logger()), context.Background()
}

func TestAddComputesTotal(t *testing.T) {
	s, ctx := newService(t)

	r, err := s.Add(ctx, model.ExamResult{
		Type:    model.ExamTypeTYT,
		Name:    "3D Deneme 1",
		TakenOn: "2025-08-10",
		Sections: map[string]float64{
			"turkce":    30,
			"sosyal":    15,
			"matematik": 25.5,
			"fen":       12,
		},
		Total: 999, // caller-supplied totals are ignored
	})
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.InDelta(t, 82.5, r.Total, 0.001)

	results, err := s.List(ctx, model.ExamTypeTYT)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 82.5, results[0].Total, 0.001)
}

func TestAddValidation(t *testing.T) {
	s, ctx := newService(t)

	_, err := s.Add(ctx, model.ExamResult{Type: "LGS", Name: "x"})
	assert.Error(t, err)

	_, err = s.Add(ctx, model.ExamResult{Type: model.ExamTypeTYT})
	assert.Error(t, err, "name is required")

	_, err = s.Add(ctx, model.ExamResult{Type: model.ExamTypeTYT, Name: "x", TakenOn: "10.08.2025"})
	assert.ErrorIs(t, err, model.ErrInvalidDate)
}

func TestAddDefaultsTakenOnToToday(t *testing.T) {
	s, ctx := newService(t)

	r, err := s.Add(ctx, model.ExamResult{Type: model.ExamTypeAYT, Name: "deneme"})
	require.NoError(t, err)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, r.TakenOn)
}

func TestDelete(t *testing.T) {
	s, ctx := newService(t)

	r, err := s.Add(ctx, model.ExamResult{Type: model.ExamTypeTYT, Name: "deneme", TakenOn: "2025-08-01"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, r.ID))
	assert.ErrorIs(t, s.Delete(ctx, r.ID), model.ErrNotFound)
}

func TestTrendFor(t *testing.T) {
	s, ctx := newService(t)

	totals := []float64{60, 65, 70, 75, 80, 85, 90}
	for i, total := range totals {
		_, err := s.Add(ctx, model.ExamResult{
			Type:    model.ExamTypeTYT,
			Name:    fmt.Sprintf("deneme %d", i+1),
			TakenOn: fmt.Sprintf("2025-08-%02d", i+1),
			Sections: map[string]float64{
				"matematik": total / 2,
				"turkce":    total / 2,
			},
		})
		require.NoError(t, err)
	}

	trend, err := s.TrendFor(ctx, model.ExamTypeTYT)
	require.NoError(t, err)

	assert.Equal(t, 7, trend.Count)
	assert.InDelta(t, 75, trend.AverageAll, 0.001)
	assert.InDelta(t, 80, trend.AverageLast5, 0.001, "rolling window covers the five most recent exams")
	assert.InDelta(t, 90, trend.Best, 0.001)
	assert.InDelta(t, 37.5, trend.SectionMeans["matematik"], 0.001)
}

func TestTrendForEmptyType(t *testing.T) {
	s, ctx := newService(t)

	trend, err := s.TrendFor(ctx, model.ExamTypeAYT)
	require.NoError(t, err)
	assert.Zero(t, trend.Count)
	assert.Zero(t, trend.AverageAll)
	assert.Empty(t, trend.SectionMeans)
}
