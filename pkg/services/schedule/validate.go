package schedule

import (
	"github.com/de-tools/plan-atlas/pkg/models/domain"
	"github.com/de-tools/plan-atlas/pkg/services/timeparse"
)

// Work-hour policy: the slot finder must never be handed a degenerate
// exclusion window.
const (
	earliestWorkHour = 6
	latestWorkHour   = 22
	minWorkHours     = 4.0
	maxWorkHours     = 12.0
)

// ValidateWork sanity-checks a work schedule's bounds and duration.
// It returns the schedule unchanged when it passes, and nil when the start
// is before 06:00, the end is after 22:00, the duration falls outside
// [4h, 12h], or either time fails to parse. A nil result means "treat the
// schedule as absent".
func ValidateWork(ws *domain.WorkSchedule) *domain.WorkSchedule {
	if ws == nil {
		return nil
	}

	startRaw := ws.StartTime
	if startRaw == "" {
		startRaw = "09:00"
	}
	endRaw := ws.EndTime
	if endRaw == "" {
		endRaw = "17:00"
	}

	start := timeparse.Clock(startRaw)
	end := timeparse.Clock(endRaw)
	if start.Fallback || end.Fallback {
		return nil
	}

	if start.Value.Hour < earliestWorkHour || end.Value.Hour > latestWorkHour {
		return nil
	}

	duration := float64(end.Value.Minutes()-start.Value.Minutes()) / 60
	if duration < minWorkHours || duration > maxWorkHours {
		return nil
	}

	return ws
}

// WorkBounds returns the parsed start and end times of a schedule,
// substituting the 09:00-17:00 defaults for absent fields. Call only on
// schedules that passed ValidateWork.
func WorkBounds(ws *domain.WorkSchedule) (start, end domain.ClockTime) {
	startRaw := ws.StartTime
	if startRaw == "" {
		startRaw = "09:00"
	}
	endRaw := ws.EndTime
	if endRaw == "" {
		endRaw = "17:00"
	}
	return timeparse.Clock(startRaw).Value, timeparse.Clock(endRaw).Value
}
