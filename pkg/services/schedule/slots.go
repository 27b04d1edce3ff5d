package schedule

import (
	"errors"
	"time"

	"github.com/de-tools/plan-atlas/pkg/models/domain"
)

// ErrNoSlot is returned when every anchor conflicts with the work window.
// Callers treat it as "skip this event for this day", not as a failure.
var ErrNoSlot = errors.New("schedule: no slot available")

// The three fixed anchor times tried in order. This is a deliberate small
// search, not a free-busy solver: it trades completeness for predictability.
var anchors = []domain.ClockTime{
	{Hour: 7, Minute: 0},
	{Hour: 12, Minute: 0},
	{Hour: 18, Minute: 0},
}

// InsideWork reports whether the instant falls within the schedule's work
// day: the weekday must be active and the time of day must lie in
// [start, end] inclusive. A nil schedule never matches.
func InsideWork(t time.Time, ws *domain.WorkSchedule) bool {
	if !ws.ActiveOn(t.Weekday()) {
		return false
	}

	start, end := WorkBounds(ws)
	minutes := t.Hour()*60 + t.Minute()
	return start.Minutes() <= minutes && minutes <= end.Minutes()
}

// FindSlot returns the first anchor on the given date for which neither the
// anchor instant nor the anchor plus the requested duration falls inside
// the work day. The schedule must already be validated (or nil).
func FindSlot(date time.Time, durationHours float64, ws *domain.WorkSchedule) (time.Time, error) {
	for _, anchor := range anchors {
		start := time.Date(date.Year(), date.Month(), date.Day(),
			anchor.Hour, anchor.Minute, 0, 0, date.Location())
		end := start.Add(time.Duration(durationHours * float64(time.Hour)))

		if !InsideWork(start, ws) && !InsideWork(end, ws) {
			return start, nil
		}
	}

	return time.Time{}, ErrNoSlot
}
