package api

// Wire shapes for budget and activity records. These mirror the JSON the
// extraction collaborator produces and the web layer accepts: snake_case
// keys, "YYYY-MM-DD" dates, "HH:MM" times, "1h"/"30m" durations.

type Income struct {
	Source    string  `json:"source,omitempty"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
	NextDate  string  `json:"next_date,omitempty"`
	Category  string  `json:"category,omitempty"`
}

type Bill struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	DueDate   string  `json:"due_date,omitempty"`
	Frequency string  `json:"frequency"`
	Category  string  `json:"category,omitempty"`
}

type Expense struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency,omitempty"`
	Category  string  `json:"category,omitempty"`
}

type FinancialGoal struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
	TargetDate   string  `json:"target_date,omitempty"`
	Priority     string  `json:"priority,omitempty"`
}

type BudgetInfo struct {
	StartingBalance  float64         `json:"starting_balance"`
	Income           Income          `json:"income"`
	Bills            []Bill          `json:"bills"`
	SavingsGoal      float64         `json:"savings_goal"`
	EmergencyFund    float64         `json:"emergency_fund"`
	DebtPayoff       float64         `json:"debt_payoff,omitempty"`
	AdditionalIncome []Income        `json:"additional_income"`
	Expenses         []Expense       `json:"expenses"`
	FinancialGoals   []FinancialGoal `json:"financial_goals"`
}

type Goal struct {
	Title         string   `json:"title,omitempty"`
	Type          string   `json:"type"`
	Frequency     string   `json:"frequency"`
	Days          []string `json:"days,omitempty"`
	Details       string   `json:"details,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	PreferredTime string   `json:"preferred_time,omitempty"`
	Category      string   `json:"category,omitempty"`
	Priority      string   `json:"priority,omitempty"`
	Dependencies  []string `json:"dependencies,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

type Preferences struct {
	MealTimes        []string `json:"meal_times,omitempty"`
	WorkoutTimes     []string `json:"workout_times,omitempty"`
	OtherPreferences string   `json:"other_preferences,omitempty"`
}

type WorkoutPreferences struct {
	Location           string   `json:"location,omitempty"`
	ExperienceLevel    string   `json:"experience_level,omitempty"`
	AvailableEquipment []string `json:"available_equipment,omitempty"`
}

type Break struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type WorkSchedule struct {
	Days      []string `json:"days"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Breaks    []Break  `json:"breaks,omitempty"`
}

type ActivityGoalsInfo struct {
	Goals              []Goal             `json:"goals"`
	Preferences        Preferences        `json:"preferences"`
	WorkoutPreferences WorkoutPreferences `json:"workout_preferences"`
	WorkSchedule       *WorkSchedule      `json:"work_schedule,omitempty"`
}
