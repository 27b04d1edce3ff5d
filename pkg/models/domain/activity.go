package domain

import "time"

type PreferredTime string

const (
	PreferredMorning   PreferredTime = "morning"
	PreferredAfternoon PreferredTime = "afternoon"
	PreferredEvening   PreferredTime = "evening"
)

// ActivityGoal is one recurring activity the user wants scheduled.
// Days is only consulted when Frequency is specific_days.
type ActivityGoal struct {
	Title         string
	Type          string
	Frequency     Frequency
	Days          []time.Weekday
	Details       string
	Duration      string
	PreferredTime PreferredTime
	Category      string
	Priority      Priority
	Dependencies  []string
	Notes         string
	Extra         *ActivityDetails
}

type WorkoutPreferences struct {
	Location   string
	Experience string
	Equipment  []string
}

type Preferences struct {
	MealTimes    []string
	WorkoutTimes []string
	Other        string
}

// ActivityGoals is the structured activity input for one synthesis run.
type ActivityGoals struct {
	Goals              []ActivityGoal
	Preferences        Preferences
	WorkoutPreferences WorkoutPreferences
	WorkSchedule       *WorkSchedule
}
