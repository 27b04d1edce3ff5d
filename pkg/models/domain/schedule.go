package domain

import (
	"fmt"
	"time"
)

// ClockTime is a time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns the offset from midnight in whole minutes.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// TimeInterval is a half-open [Start, End) span within a single day.
type TimeInterval struct {
	Start ClockTime
	End   ClockTime
}

// WorkSchedule describes recurring work hours. Times are kept in their raw
// "HH:MM" form; bounds and duration are checked by the schedule validator,
// not enforced at construction.
type WorkSchedule struct {
	Days      []time.Weekday
	StartTime string
	EndTime   string
	Breaks    []TimeInterval
}

// ActiveOn reports whether the schedule covers the given weekday.
func (w *WorkSchedule) ActiveOn(day time.Weekday) bool {
	if w == nil {
		return false
	}
	for _, d := range w.Days {
		if d == day {
			return true
		}
	}
	return false
}
