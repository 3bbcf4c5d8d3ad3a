// Package exam tracks practice exam results and derives simple trend
// statistics from them.
package exam

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

// Service manages exam result entries.
type Service struct {
	db  store.Store
	log zerolog.Logger
}

func NewService(db store.Store, log zerolog.Logger) *Service {
	return &Service{db: db, log: log.With().Str("component", "exam").Logger()}
}

// Add validates and stores a new exam result. The total is always
// recomputed from the section nets; a caller-supplied total is ignored.
func (s *Service) Add(ctx context.Context, r model.ExamResult) (model.ExamResult, error) {
	if r.Type != model.ExamTypeTYT && r.Type != model.ExamTypeAYT {
		return model.ExamResult{}, fmt.Errorf("unknown exam type %q", r.Type)
	}
	if r.Name == "" {
		return model.ExamResult{}, fmt.Errorf("exam name is required")
	}
	if r.TakenOn != "" {
		if _, err := week.ParseKey(r.TakenOn); err != nil {
			return model.ExamResult{}, fmt.Errorf("exam date %q: %w", r.TakenOn, model.ErrInvalidDate)
		}
	} else {
		r.TakenOn = time.Now().Format("2006-01-02")
	}

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r.Total = r.SumSections()
	r.CreatedAt = time.Now()

	if err := s.db.CreateExamResult(ctx, r); err != nil {
		return model.ExamResult{}, err
	}
	s.log.Debug().Str("id", r.ID).Str("type", r.Type).Float64("total", r.Total).
		Msg("exam result recorded")
	return r, nil
}

// List returns all results of one exam type in chronological order.
func (s *Service) List(ctx context.Context, examType string) ([]model.ExamResult, error) {
	return s.db.GetExamResults(ctx, examType)
}

// Delete removes a logged result by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.db.DeleteExamResult(ctx, id)
}

// Trend holds rolling statistics over a type's logged results.
type Trend struct {
	Count        int                `json:"count"`
	AverageAll   float64            `json:"averageAll"`
	AverageLast5 float64            `json:"averageLast5"`
	SectionMeans map[string]float64 `json:"sectionMeans"`
	Best         float64            `json:"best"`
}

// TrendFor computes rolling averages and per-section means for one
// exam type. Results are assumed chronological, as List returns them.
func (s *Service) TrendFor(ctx context.Context, examType string) (Trend, error) {
	results, err := s.List(ctx, examType)
	if err != nil {
		return Trend{}, err
	}
	return computeTrend(results), nil
}

func computeTrend(results []model.ExamResult) Trend {
	t := Trend{Count: len(results), SectionMeans: map[string]float64{}}
	if len(results) == 0 {
		return t
	}

	sectionTotals := map[string]float64{}
	sectionCounts := map[string]int{}
	var sum float64
	for _, r := range results {
		sum += r.Total
		if r.Total > t.Best {
			t.Best = r.Total
		}
		for name, net := range r.Sections {
			sectionTotals[name] += net
			sectionCounts[name]++
		}
	}
	t.AverageAll = sum / float64(len(results))

	last := results
	if len(last) > 5 {
		last = last[len(last)-5:]
	}
	var lastSum float64
	for _, r := range last {
		lastSum += r.Total
	}
	t.AverageLast5 = lastSum / float64(len(last))

	for name, total := range sectionTotals {
		t.SectionMeans[name] = total / float64(sectionCounts[name])
	}
	return t
}
