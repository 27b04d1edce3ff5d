package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/plan-atlas/pkg/models/domain"
	"github.com/de-tools/plan-atlas/pkg/services/finance"
)

// MaxRangeDays bounds the synthesis horizon to roughly six months.
const MaxRangeDays = 180

// ErrInvalidRange is returned before any event is produced when the range
// is reversed or exceeds the horizon. There is never a partial calendar for
// an invalid range.
var ErrInvalidRange = errors.New("planner: invalid date range")

// Walker runs one complete synthesis pass over an inclusive date range.
type Walker interface {
	Generate(
		ctx context.Context,
		start, end time.Time,
		rec domain.BudgetRecord,
		goals domain.ActivityGoals,
	) (*domain.CalendarCollection, error)
}

type walker struct {
	builder Builder
}

func NewWalker(builder Builder) Walker {
	return &walker{builder: builder}
}

// Generate validates the range, walks it date by date invoking the daily
// builder, and appends each day's events in order to a fresh collection
// owned by this run. A failure while building a single day is logged and
// contributes zero events; it never aborts the walk.
func (w *walker) Generate(
	ctx context.Context,
	start, end time.Time,
	rec domain.BudgetRecord,
	goals domain.ActivityGoals,
) (*domain.CalendarCollection, error) {
	logger := zerolog.Ctx(ctx)

	start = midnight(start)
	end = midnight(end)

	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date %s is before start date %s",
			ErrInvalidRange, end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	if days := spanDays(start, end); days > MaxRangeDays {
		return nil, fmt.Errorf("%w: %d days exceeds the %d day maximum",
			ErrInvalidRange, days, MaxRangeDays)
	}

	metrics := finance.DailyMetrics(finance.Project(rec))
	collection := domain.NewCalendarCollection()

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		events, err := w.builder.BuildDay(ctx, date, rec, metrics, goals)
		if err != nil {
			logger.Error().
				Err(err).
				Str("date", date.Format("2006-01-02")).
				Msg("day plan failed, continuing with zero events for this date")
			continue
		}
		collection.Append(events...)
	}

	logger.Info().
		Str("start", start.Format("2006-01-02")).
		Str("end", end.Format("2006-01-02")).
		Int("events", collection.Len()).
		Msg("calendar synthesis complete")

	return collection, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// spanDays counts whole days between two midnights by calendar arithmetic,
// so a DST transition inside the range cannot skew the bound.
func spanDays(start, end time.Time) int {
	days := 0
	for date := start; date.Before(end); date = date.AddDate(0, 0, 1) {
		days++
	}
	return days
}
