package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/de-tools/plan-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBuilder struct {
	failOn   string
	eventsAt func(date time.Time) []domain.Event
}

func (s stubBuilder) BuildDay(
	_ context.Context,
	date time.Time,
	_ domain.BudgetRecord,
	_ domain.DailyFinancialMetrics,
	_ domain.ActivityGoals,
) ([]domain.Event, error) {
	if date.Format("2006-01-02") == s.failOn {
		return nil, errors.New("collaborator failure")
	}
	if s.eventsAt != nil {
		return s.eventsAt(date), nil
	}
	return []domain.Event{{
		Title: "Daily Planning",
		Date:  date,
		Start: date.Add(9 * time.Hour),
		End:   date.Add(10 * time.Hour),
	}}, nil
}

func TestGenerate_EndBeforeStart(t *testing.T) {
	w := NewWalker(stubBuilder{})
	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, -1)

	col, err := w.Generate(context.Background(), start, end, domain.BudgetRecord{}, domain.ActivityGoals{})

	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Nil(t, col, "no partial calendar for an invalid range")
}

func TestGenerate_RangeBound(t *testing.T) {
	w := NewWalker(stubBuilder{})
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)

	t.Run("181 day span aborts before producing events", func(t *testing.T) {
		col, err := w.Generate(context.Background(), start, start.AddDate(0, 0, 181),
			domain.BudgetRecord{}, domain.ActivityGoals{})

		assert.ErrorIs(t, err, ErrInvalidRange)
		assert.Nil(t, col)
	})

	t.Run("exactly 180 day span succeeds", func(t *testing.T) {
		col, err := w.Generate(context.Background(), start, start.AddDate(0, 0, 180),
			domain.BudgetRecord{}, domain.ActivityGoals{})

		require.NoError(t, err)
		assert.Equal(t, 181, col.Len(), "one event per date, range inclusive")
	})
}

func TestGenerate_EventsInDateOrder(t *testing.T) {
	w := NewWalker(stubBuilder{})
	start := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 2)

	col, err := w.Generate(context.Background(), start, end, domain.BudgetRecord{}, domain.ActivityGoals{})

	require.NoError(t, err)
	events := col.Events()
	require.Len(t, events, 3)
	for i := 1; i < len(events); i++ {
		assert.True(t, events[i-1].Start.Before(events[i].Start))
	}
}

func TestGenerate_SingleBadDayDoesNotAbort(t *testing.T) {
	w := NewWalker(stubBuilder{failOn: "2025-03-04"})
	start := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 2)

	col, err := w.Generate(context.Background(), start, end, domain.BudgetRecord{}, domain.ActivityGoals{})

	require.NoError(t, err)
	require.Equal(t, 2, col.Len(), "failing day contributes zero events")

	dates := []string{
		col.Events()[0].Date.Format("2006-01-02"),
		col.Events()[1].Date.Format("2006-01-02"),
	}
	assert.Equal(t, []string{"2025-03-03", "2025-03-05"}, dates)
}

func TestGenerate_SingleDayRange(t *testing.T) {
	w := NewWalker(stubBuilder{})
	day := time.Date(2025, time.March, 3, 15, 30, 0, 0, time.Local)

	col, err := w.Generate(context.Background(), day, day, domain.BudgetRecord{}, domain.ActivityGoals{})

	require.NoError(t, err)
	assert.Equal(t, 1, col.Len(), "timestamps are truncated to dates before walking")
}

func TestGenerate_FreshCollectionPerRun(t *testing.T) {
	w := NewWalker(stubBuilder{})
	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.Local)

	first, err := w.Generate(context.Background(), day, day, domain.BudgetRecord{}, domain.ActivityGoals{})
	require.NoError(t, err)
	second, err := w.Generate(context.Background(), day, day, domain.BudgetRecord{}, domain.ActivityGoals{})
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 1, second.Len())
}
