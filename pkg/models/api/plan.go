package api

// Request and response payloads for the planner web API.

type ParseRequest struct {
	Input string `json:"input"`
}

type ParseBudgetResponse struct {
	Success    bool        `json:"success"`
	Error      string      `json:"error,omitempty"`
	BudgetInfo *BudgetInfo `json:"budget_info,omitempty"`
}

type ParseActivitiesResponse struct {
	Success       bool               `json:"success"`
	Error         string             `json:"error,omitempty"`
	ActivityGoals *ActivityGoalsInfo `json:"activity_goals,omitempty"`
}

type GeneratePlanRequest struct {
	StartDate     string            `json:"start_date"`
	EndDate       string            `json:"end_date"`
	BudgetInfo    BudgetInfo        `json:"budget_info"`
	ActivityGoals ActivityGoalsInfo `json:"activity_goals"`
}

type BrainDumpRequest struct {
	Input     string `json:"input"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// StatusResponse is the uniform success/error envelope.
type StatusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SubActivity and PlannedEvent describe the brain-dump extraction output:
// a day template of events the engine turns into goal-driven activities.

type SubActivity struct {
	Name        string `json:"name"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

type ActivityDetails struct {
	Type          string        `json:"type,omitempty"`
	PreferredTime string        `json:"preferred_time,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	SubActivities []SubActivity `json:"sub_activities,omitempty"`
}

type PlannedEvent struct {
	Title           string           `json:"title"`
	Time            string           `json:"time"`
	Duration        string           `json:"duration"`
	Description     string           `json:"description,omitempty"`
	Category        string           `json:"category,omitempty"`
	Priority        string           `json:"priority,omitempty"`
	ActivityDetails *ActivityDetails `json:"activity_details,omitempty"`
}

type BrainDumpPlan struct {
	Events       []PlannedEvent `json:"events"`
	WorkSchedule *WorkSchedule  `json:"work_schedule,omitempty"`
}
