// Package planner is the calendar-synthesis core: it composes a candidate
// event list for each date, resolves it into a conflict-free set via greedy
// first-fit placement, and walks an inclusive date range accumulating the
// result into one collection.
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/plan-atlas/pkg/models/domain"
	"github.com/de-tools/plan-atlas/pkg/services/schedule"
	"github.com/de-tools/plan-atlas/pkg/services/timeparse"
	"github.com/de-tools/plan-atlas/pkg/services/workout"
)

const (
	financialReviewHours = 0.5
	workoutHours         = 1.0
	defaultActivityHours = 1.0
)

// Builder produces the ordered, pairwise non-overlapping event set for one
// calendar date.
type Builder interface {
	BuildDay(
		ctx context.Context,
		date time.Time,
		rec domain.BudgetRecord,
		metrics domain.DailyFinancialMetrics,
		goals domain.ActivityGoals,
	) ([]domain.Event, error)
}

type builder struct {
	workouts workout.Suggester
}

func NewBuilder(workouts workout.Suggester) Builder {
	return &builder{workouts: workouts}
}

// BuildDay runs the five-step pass for a single date: work block, financial
// review, workout, goal-driven activities. Candidates whose slot request is
// denied, or whose granted anchor is already claimed by an earlier candidate,
// are dropped silently for the day. The work block is seeded first and never
// overlap-checked; it defines the exclusion window for everything else.
func (b *builder) BuildDay(
	ctx context.Context,
	date time.Time,
	rec domain.BudgetRecord,
	metrics domain.DailyFinancialMetrics,
	goals domain.ActivityGoals,
) ([]domain.Event, error) {
	logger := zerolog.Ctx(ctx)

	ws := schedule.ValidateWork(goals.WorkSchedule)
	if goals.WorkSchedule != nil && ws == nil {
		logger.Warn().
			Str("date", date.Format("2006-01-02")).
			Msg("work schedule outside policy, treating as absent")
	}

	var events []domain.Event

	// Earlier candidates win a contested anchor: goals are processed in
	// input order and a later event overlapping an already placed one is
	// rejected here.
	place := func(ev domain.Event) {
		for _, other := range events {
			if schedule.Overlaps(ev.Start, ev.End, other.Start, other.End) {
				logger.Debug().
					Str("date", date.Format("2006-01-02")).
					Str("title", ev.Title).
					Msg("anchor already claimed, dropping event")
				return
			}
		}
		events = append(events, ev)
	}

	if ws.ActiveOn(date.Weekday()) {
		start, end := schedule.WorkBounds(ws)
		events = append(events, domain.Event{
			Title:       "Work",
			Date:        date,
			Start:       clockOn(date, start),
			End:         clockOn(date, end),
			Description: "Work hours",
			Category:    domain.CategoryWork,
			Priority:    domain.PriorityHigh,
		})
	}

	if !rec.Empty() {
		if slot, err := schedule.FindSlot(date, financialReviewHours, ws); err == nil {
			place(domain.Event{
				Title:       "Financial Summary - " + date.Format("January 02"),
				Date:        date,
				Start:       slot,
				End:         slot.Add(30 * time.Minute),
				Description: financialSummary(date, metrics),
				Category:    domain.CategoryFinancial,
				Priority:    domain.PriorityHigh,
				Financial: &domain.FinancialDetails{
					Type:           domain.FinancialBudgetReview,
					Amount:         metrics.DailyBudget,
					DueDate:        date,
					AccountBalance: rec.StartingBalance,
					Notes:          "Daily financial review",
				},
			})
		} else {
			logger.Debug().
				Str("date", date.Format("2006-01-02")).
				Msg("no slot for financial review")
		}
	}

	if hasWorkoutPreferences(goals.WorkoutPreferences) {
		plan, err := b.workouts.Suggest(goals.WorkoutPreferences)
		if err != nil {
			return nil, fmt.Errorf("workout suggestions: %w", err)
		}

		if slot, err := schedule.FindSlot(date, workoutHours, ws); err == nil {
			place(domain.Event{
				Title:       "Workout - " + date.Format("January 02"),
				Date:        date,
				Start:       slot,
				End:         slot.Add(time.Hour),
				Description: plan.Describe(date),
				Category:    domain.CategoryWorkout,
				Priority:    domain.PriorityMedium,
			})
		} else {
			logger.Debug().
				Str("date", date.Format("2006-01-02")).
				Msg("no slot for workout")
		}
	}

	for _, goal := range goals.Goals {
		if !GoalDue(goal, date) {
			continue
		}

		duration := defaultActivityHours
		if goal.Duration != "" {
			duration = timeparse.Duration(goal.Duration).Value
		}

		slot, err := schedule.FindSlot(date, duration, ws)
		if err != nil {
			logger.Debug().
				Str("date", date.Format("2006-01-02")).
				Str("goal", goalTitle(goal)).
				Msg("no slot for activity")
			continue
		}

		place(domain.Event{
			Title:       goalTitle(goal),
			Date:        date,
			Start:       slot,
			End:         slot.Add(time.Duration(duration * float64(time.Hour))),
			Description: goal.Details,
			Category:    goalCategory(goal),
			Priority:    goal.Priority,
			Activity:    goalMetadata(goal),
		})
	}

	return events, nil
}

func clockOn(date time.Time, c domain.ClockTime) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, date.Location())
}

func hasWorkoutPreferences(prefs domain.WorkoutPreferences) bool {
	return prefs.Location != "" || prefs.Experience != "" || len(prefs.Equipment) > 0
}

func goalTitle(goal domain.ActivityGoal) string {
	if goal.Title != "" {
		return goal.Title
	}
	if goal.Type != "" {
		return goal.Type
	}
	return "Activity"
}

// goalCategory maps a goal onto the closed event category set. The goal's
// own category labels (health, education, ...) mostly fall outside it, so
// the goal type is consulted before settling on "other".
func goalCategory(goal domain.ActivityGoal) domain.EventCategory {
	if c := domain.NormalizeCategory(goal.Category); c != domain.CategoryOther {
		return c
	}
	return domain.NormalizeCategory(goal.Type)
}

func goalMetadata(goal domain.ActivityGoal) *domain.ActivityDetails {
	if goal.Extra != nil {
		return goal.Extra
	}
	if goal.Type == "" && goal.PreferredTime == "" && goal.Notes == "" {
		return nil
	}
	return &domain.ActivityDetails{
		Type:          goal.Type,
		PreferredTime: string(goal.PreferredTime),
		Notes:         goal.Notes,
	}
}

// financialSummary renders the day's metrics: dollar figures to two decimal
// places, progress percentages to one.
func financialSummary(date time.Time, m domain.DailyFinancialMetrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Financial Summary for %s:\n", date.Format("January 02, 2006"))
	fmt.Fprintf(&b, "- Daily Budget: $%.2f\n", m.DailyBudget)
	fmt.Fprintf(&b, "- Daily Expenses: $%.2f\n", m.DailyExpenses)
	fmt.Fprintf(&b, "- Daily Savings: $%.2f\n", m.DailySavings)
	fmt.Fprintf(&b, "- Discretionary Spending: $%.2f\n", m.DiscretionarySpending)

	if m.EmergencyFundProgress != nil || m.DebtPayoffProgress != nil {
		b.WriteString("\nProgress Towards Goals:\n")
		if m.EmergencyFundProgress != nil {
			fmt.Fprintf(&b, "- Emergency Fund: %.1f%%\n", *m.EmergencyFundProgress*100)
		}
		if m.DebtPayoffProgress != nil {
			fmt.Fprintf(&b, "- Debt Payoff: %.1f%%\n", *m.DebtPayoffProgress*100)
		}
	}

	return b.String()
}
