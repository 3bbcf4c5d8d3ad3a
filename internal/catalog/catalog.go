// Package catalog manages the month-indexed topic catalog: the seeded
// subject/topic lists that feed the monthly pool, plus the simple
// editing operations that mutate them.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/enesk/study-planner/internal/model"
	"github.com/enesk/study-planner/internal/store"
)

// Store owns the monthlyPlans snapshot. It is the sole writer of that
// key outside of the sync engine's composed transactions.
type Store struct {
	db  store.Store
	log zerolog.Logger
}

// New creates a catalog store backed by db.
func New(db store.Store, log zerolog.Logger) *Store {
	return &Store{db: db, log: log.With().Str("component", "catalog").Logger()}
}

// EnsureSeed installs the seed catalog if no monthly plans have ever
// been written. Subsequent runs leave the user's copy alone.
func (s *Store) EnsureSeed(ctx context.Context) error {
	var months []model.Month
	found, err := s.db.GetValue(ctx, store.KeyMonthlyPlans, &months)
	if err != nil {
		return fmt.Errorf("checking catalog: %w", err)
	}
	if found {
		return nil
	}

	seed := seedMonths()
	if err := s.db.SetValue(ctx, store.KeyMonthlyPlans, seed); err != nil {
		return fmt.Errorf("installing seed catalog: %w", err)
	}
	s.log.Info().Int("months", len(seed)).Msg("seed catalog installed")
	return nil
}

// Months returns all catalog months in stored order.
func (s *Store) Months(ctx context.Context) ([]model.Month, error) {
	var months []model.Month
	if _, err := s.db.GetValue(ctx, store.KeyMonthlyPlans, &months); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return months, nil
}

// Month returns the catalog entry with the given id.
func (s *Store) Month(ctx context.Context, monthID string) (model.Month, error) {
	months, err := s.Months(ctx)
	if err != nil {
		return model.Month{}, err
	}
	for _, m := range months {
		if m.ID == monthID {
			return m, nil
		}
	}
	return model.Month{}, fmt.Errorf("month %s: %w", monthID, model.ErrNotFound)
}

// MonthFor returns the catalog entry covering the given calendar date.
func (s *Store) MonthFor(ctx context.Context, t time.Time) (model.Month, error) {
	months, err := s.Months(ctx)
	if err != nil {
		return model.Month{}, err
	}
	for _, m := range months {
		if m.Contains(t) {
			return m, nil
		}
	}
	return model.Month{}, fmt.Errorf("month covering %s: %w",
		t.Format("2006-01"), model.ErrNotFound)
}

// Pool derives the monthly pool for a month: per-subject topic records
// with synthesized ids. Subjects with empty topic lists are omitted.
func (s *Store) Pool(ctx context.Context, monthID string) (map[string][]model.Topic, error) {
	m, err := s.Month(ctx, monthID)
	if err != nil {
		return nil, err
	}

	pool := make(map[string][]model.Topic)
	for _, subject := range m.SubjectNames() {
		texts := m.Subjects[subject]
		if len(texts) == 0 {
			continue
		}
		topics := make([]model.Topic, len(texts))
		for i, text := range texts {
			topics[i] = model.Topic{
				ID:      fmt.Sprintf("%s-%s-%s-%d", monthID, subject, text, i),
				Text:    text,
				Subject: subject,
				MonthID: monthID,
			}
		}
		pool[subject] = topics
	}
	return pool, nil
}

// AddSubject creates an empty subject bucket in a month.
func (s *Store) AddSubject(ctx context.Context, monthID, subject string) error {
	return s.mutateMonth(ctx, monthID, func(m *model.Month) error {
		if m.Subjects == nil {
			m.Subjects = make(map[string][]string)
		}
		if _, exists := m.Subjects[subject]; exists {
			return fmt.Errorf("subject %s already exists in %s", subject, monthID)
		}
		m.Subjects[subject] = []string{}
		return nil
	})
}

// RemoveSubject deletes a subject and all its pooled topics.
func (s *Store) RemoveSubject(ctx context.Context, monthID, subject string) error {
	return s.mutateMonth(ctx, monthID, func(m *model.Month) error {
		if _, exists := m.Subjects[subject]; !exists {
			return fmt.Errorf("subject %s in %s: %w", subject, monthID, model.ErrNotFound)
		}
		delete(m.Subjects, subject)
		return nil
	})
}

// AddTopic appends a topic text to a subject's pool list, creating the
// subject if needed.
func (s *Store) AddTopic(ctx context.Context, monthID, subject, text string) error {
	return s.mutateMonth(ctx, monthID, func(m *model.Month) error {
		if m.Subjects == nil {
			m.Subjects = make(map[string][]string)
		}
		m.Subjects[subject] = append(m.Subjects[subject], text)
		return nil
	})
}

// RemoveTopicAt removes and returns the pooled topic text at index
// within a subject. When the subject's list empties out, the subject
// key is dropped entirely.
func (s *Store) RemoveTopicAt(ctx context.Context, monthID, subject string, index int) (string, error) {
	var removed string
	err := s.mutateMonth(ctx, monthID, func(m *model.Month) error {
		texts, exists := m.Subjects[subject]
		if !exists {
			return fmt.Errorf("subject %s in %s: %w", subject, monthID, model.ErrNotFound)
		}
		if index < 0 || index >= len(texts) {
			return fmt.Errorf("topic index %d in %s/%s: %w",
				index, monthID, subject, model.ErrIndexOutOfRange)
		}
		removed = texts[index]
		texts = append(texts[:index], texts[index+1:]...)
		if len(texts) == 0 {
			delete(m.Subjects, subject)
		} else {
			m.Subjects[subject] = texts
		}
		return nil
	})
	return removed, err
}

// TopicCount returns the number of pooled topics remaining in a month.
func (s *Store) TopicCount(ctx context.Context, monthID string) (int, error) {
	m, err := s.Month(ctx, monthID)
	if err != nil {
		return 0, err
	}
	return m.TopicCount(), nil
}

// ApplyPoolRemoval returns a copy of months with the topic at index
// removed from monthID/subject, dropping the subject key when its list
// empties. It is a pure helper: the sync engine uses it to compose the
// catalog's half of a cross-store transaction.
func ApplyPoolRemoval(months []model.Month, monthID, subject string, index int) ([]model.Month, string, error) {
	out := cloneMonths(months)
	for i := range out {
		if out[i].ID != monthID {
			continue
		}
		texts, exists := out[i].Subjects[subject]
		if !exists {
			return nil, "", fmt.Errorf("subject %s in %s: %w", subject, monthID, model.ErrNotFound)
		}
		if index < 0 || index >= len(texts) {
			return nil, "", fmt.Errorf("topic index %d in %s/%s: %w",
				index, monthID, subject, model.ErrIndexOutOfRange)
		}
		removed := texts[index]
		texts = append(texts[:index], texts[index+1:]...)
		if len(texts) == 0 {
			delete(out[i].Subjects, subject)
		} else {
			out[i].Subjects[subject] = texts
		}
		return out, removed, nil
	}
	return nil, "", fmt.Errorf("month %s: %w", monthID, model.ErrNotFound)
}

// mutateMonth loads the catalog, applies fn to the month with the
// given id, and writes the full snapshot back in one store write.
func (s *Store) mutateMonth(ctx context.Context, monthID string, fn func(*model.Month) error) error {
	months, err := s.Months(ctx)
	if err != nil {
		return err
	}
	for i := range months {
		if months[i].ID != monthID {
			continue
		}
		if err := fn(&months[i]); err != nil {
			return err
		}
		return s.db.SetValue(ctx, store.KeyMonthlyPlans, months)
	}
	return fmt.Errorf("month %s: %w", monthID, model.ErrNotFound)
}

// cloneMonths deep-copies the catalog far enough that subject maps and
// topic slices can be mutated without aliasing the input.
func cloneMonths(months []model.Month) []model.Month {
	out := make([]model.Month, len(months))
	copy(out, months)
	for i := range out {
		subjects := make(map[string][]string, len(out[i].Subjects))
		for name, texts := range out[i].Subjects {
			copied := make([]string, len(texts))
			copy(copied, texts)
			subjects[name] = copied
		}
		out[i].Subjects = subjects
	}
	return out
}
