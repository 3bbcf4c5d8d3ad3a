package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enesk/study-planner/internal/catalog"
	"github.com/enesk/study-planner/internal/model"
	"github.com/enesk/study-planner/tests/testutil"
)

func newCatalog(t *testing.T) (*catalog.Store, context.Context) {
	t.Helper()
	s := testutil.NewTestStore(t)
	cat := catalog.New(s, testutil.Logger())
	ctx := context.Background()
	require.NoError(t, cat.EnsureSeed(ctx))
	return cat, ctx
}

func TestEnsureSeedInstallsOnce(t *testing.T) {
	cat, ctx := newCatalog(t)

	months, err := cat.Months(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, months)
	assert.Equal(t, "august-2025", months[0].ID)

	// A user edit must survive a second seed attempt.
	require.NoError(t, cat.AddTopic(ctx, "august-2025", "Matematik", "Özel Konu"))
	require.NoError(t, cat.EnsureSeed(ctx))

	m, err := cat.Month(ctx, "august-2025")
	require.NoError(t, err)
	assert.Contains(t, m.Subjects["Matematik"], "Özel Konu")
}

func TestMonthLookup(t *testing.T) {
	cat, ctx := newCatalog(t)

	m, err := cat.Month(ctx, "september-2025")
	require.NoError(t, err)
	assert.Equal(t, 2025, m.Year)
	assert.Equal(t, 9, m.Month)

	_, err = cat.Month(ctx, "january-1999")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestMonthFor(t *testing.T) {
	cat, ctx := newCatalog(t)

	m, err := cat.MonthFor(ctx, time.Date(2025, time.August, 15, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, "august-2025", m.ID)

	_, err = cat.MonthFor(ctx, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local))
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestPoolSynthesizesTopics(t *testing.T) {
	cat, ctx := newCatalog(t)

	pool, err := cat.Pool(ctx, "august-2025")
	require.NoError(t, err)
	require.Contains(t, pool, "Matematik")

	topics := pool["Matematik"]
	require.NotEmpty(t, topics)
	for i, topic := range topics {
		assert.NotEmpty(t, topic.ID)
		assert.Equal(t, "Matematik", topic.Subject)
		assert.Equal(t, "august-2025", topic.MonthID)
		assert.Equal(t, topics[i].Text, topic.Text)
	}
}

func TestSubjectEditing(t *testing.T) {
	cat, ctx := newCatalog(t)

	require.NoError(t, cat.AddSubject(ctx, "august-2025", "Tarih"))
	assert.Error(t, cat.AddSubject(ctx, "august-2025", "Tarih"), "duplicate subject is rejected")

	require.NoError(t, cat.AddTopic(ctx, "august-2025", "Tarih", "İlk Çağ"))
	pool, err := cat.Pool(ctx, "august-2025")
	require.NoError(t, err)
	assert.Len(t, pool["Tarih"], 1)

	require.NoError(t, cat.RemoveSubject(ctx, "august-2025", "Tarih"))
	pool, err = cat.Pool(ctx, "august-2025")
	require.NoError(t, err)
	assert.NotContains(t, pool, "Tarih")

	err = cat.RemoveSubject(ctx, "august-2025", "Tarih")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRemoveTopicAtDropsEmptiedSubject(t *testing.T) {
	cat, ctx := newCatalog(t)

	require.NoError(t, cat.AddSubject(ctx, "august-2025", "Felsefe"))
	require.NoError(t, cat.AddTopic(ctx, "august-2025", "Felsefe", "Bilgi Felsefesi"))

	removed, err := cat.RemoveTopicAt(ctx, "august-2025", "Felsefe", 0)
	require.NoError(t, err)
	assert.Equal(t, "Bilgi Felsefesi", removed)

	m, err := cat.Month(ctx, "august-2025")
	require.NoError(t, err)
	assert.NotContains(t, m.Subjects, "Felsefe")

	_, err = cat.RemoveTopicAt(ctx, "august-2025", "Matematik", 999)
	assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
}

func TestApplyPoolRemovalIsPure(t *testing.T) {
	months := []model.Month{{
		ID:    "august-2025",
		Year:  2025,
		Month: 8,
		Subjects: map[string][]string{
			"Matematik": {"Temel Kavramlar", "Sayı Basamakları"},
		},
	}}

	out, removed, err := catalog.ApplyPoolRemoval(months, "august-2025", "Matematik", 0)
	require.NoError(t, err)
	assert.Equal(t, "Temel Kavramlar", removed)
	assert.Equal(t, []string{"Sayı Basamakları"}, out[0].Subjects["Matematik"])
	assert.Equal(t, []string{"Temel Kavramlar", "Sayı Basamakları"}, months[0].Subjects["Matematik"],
		"input must not be mutated")

	out, _, err = catalog.ApplyPoolRemoval(out, "august-2025", "Matematik", 0)
	require.NoError(t, err)
	assert.NotContains(t, out[0].Subjects, "Matematik", "emptied subject key is dropped")

	_, _, err = catalog.ApplyPoolRemoval(months, "missing-month", "Matematik", 0)
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, _, err = catalog.ApplyPoolRemoval(months, "august-2025", "Edebiyat", 0)
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, _, err = catalog.ApplyPoolRemoval(months, "august-2025", "Matematik", 2)
	assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
}
