package planner

import (
	"time"

	"github.com/de-tools/plan-atlas/pkg/models/domain"
)

// Cadence predicates decide whether a goal is due on a given date. They are
// named functions rather than inline conditionals so the policy stays
// independently testable and replaceable.

// DueDaily matches every date.
func DueDaily(time.Time) bool { return true }

// DueWeekly matches the first day of the reference week, i.e. Monday.
func DueWeekly(date time.Time) bool {
	return date.Weekday() == time.Monday
}

// DueBiweekly matches the first Monday of the month.
func DueBiweekly(date time.Time) bool {
	return date.Weekday() == time.Monday && date.Day() <= 7
}

// DueOnDays matches dates whose weekday is in the goal's day set.
func DueOnDays(date time.Time, days []time.Weekday) bool {
	for _, d := range days {
		if d == date.Weekday() {
			return true
		}
	}
	return false
}

// GoalDue applies the predicate matching the goal's cadence.
func GoalDue(goal domain.ActivityGoal, date time.Time) bool {
	switch goal.Frequency {
	case domain.FrequencyDaily:
		return DueDaily(date)
	case domain.FrequencyWeekly:
		return DueWeekly(date)
	case domain.FrequencyBiweekly:
		return DueBiweekly(date)
	case domain.FrequencySpecificDays:
		return DueOnDays(date, goal.Days)
	default:
		return false
	}
}
