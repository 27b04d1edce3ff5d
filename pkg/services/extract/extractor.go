package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/de-tools/plan-atlas/pkg/models/api"
)

// Extractor converts free-form text into structured records. Every method
// either returns a record with all fields populated (defaults applied for
// anything the text underspecifies) or an explicit error.
type Extractor interface {
	ExtractBudget(ctx context.Context, text string) (*api.BudgetInfo, error)
	ExtractActivities(ctx context.Context, text string) (*api.ActivityGoalsInfo, error)
	ExtractBrainDump(ctx context.Context, text string) (*api.BrainDumpPlan, error)
	Advise(ctx context.Context, financialSummary string) (string, error)
}

type llmExtractor struct {
	chat *ChatClient
}

// NewExtractor wraps a chat client. The client must be non-nil.
func NewExtractor(chat *ChatClient) Extractor {
	return &llmExtractor{chat: chat}
}

// Completions regularly wrap JSON in markdown fences despite instructions.
var fenceRe = regexp.MustCompile("```json\\s*|\\s*```")

func stripFences(s string) string {
	return fenceRe.ReplaceAllString(s, "")
}

const budgetSystemPrompt = "You are a financial information parser. " +
	"Return only valid JSON, no additional text. Make sure to include all " +
	"required fields with appropriate default values if not provided."

const budgetPrompt = `Parse the following user input and extract key financial information.
Return ONLY a valid JSON object with this structure, no additional text:
{
  "starting_balance": float,
  "income": {"amount": float, "frequency": "biweekly" or "monthly", "next_date": "YYYY-MM-DD", "source": string},
  "bills": [{"name": string, "amount": float, "due_date": "YYYY-MM-DD", "frequency": "monthly" or "biweekly", "category": "housing"|"transportation"|"utilities"|"insurance"|"other"}],
  "savings_goal": float,
  "emergency_fund": float,
  "additional_income": [{"source": string, "amount": float, "frequency": "monthly" or "biweekly", "next_date": "YYYY-MM-DD", "category": "child_support"|"freelance"|"investments"|"other"}],
  "expenses": [{"name": string, "amount": float, "frequency": "monthly" or "biweekly", "category": "groceries"|"entertainment"|"shopping"|"other"}],
  "financial_goals": [{"name": string, "target_amount": float, "target_date": "YYYY-MM-DD", "priority": "high"|"medium"|"low"}]
}

User input: %s`

func (e *llmExtractor) ExtractBudget(ctx context.Context, text string) (*api.BudgetInfo, error) {
	raw, err := e.chat.Complete(ctx, budgetSystemPrompt, fmt.Sprintf(budgetPrompt, text), 1000, 0.3)
	if err != nil {
		return nil, err
	}

	var info api.BudgetInfo
	if err := json.Unmarshal([]byte(stripFences(raw)), &info); err != nil {
		return nil, fmt.Errorf("extract: budget response is not valid JSON: %w", err)
	}

	applyBudgetDefaults(&info)
	return &info, nil
}

const activitiesSystemPrompt = "You are an activity goals parser. " +
	"Return only valid JSON, no additional text. Make sure to include all " +
	"required fields with appropriate default values if not provided."

const activitiesPrompt = `Parse the following user input and extract the user's goals and preferences.
Return ONLY a valid JSON object with this structure, no additional text:
{
  "goals": [{"title": string, "type": "meal_planning"|"workout"|"learning"|"hobby"|"other", "frequency": "daily"|"weekly"|"specific_days", "days": ["monday", ...], "details": string, "duration": "1h"|"30m"|..., "preferred_time": "morning"|"afternoon"|"evening", "category": "health"|"education"|"family"|"personal"|"work", "priority": "high"|"medium"|"low", "dependencies": [string], "notes": string}],
  "preferences": {"meal_times": ["breakfast","lunch","dinner"], "workout_times": ["morning","afternoon","evening"], "other_preferences": string},
  "workout_preferences": {"location": "gym"|"home", "experience_level": "beginner"|"intermediate"|"advanced", "available_equipment": [string]},
  "work_schedule": {"days": ["monday", ...], "start_time": "HH:MM", "end_time": "HH:MM", "breaks": [{"start": "HH:MM", "end": "HH:MM"}]}
}

User input: %s`

func (e *llmExtractor) ExtractActivities(ctx context.Context, text string) (*api.ActivityGoalsInfo, error) {
	raw, err := e.chat.Complete(ctx, activitiesSystemPrompt, fmt.Sprintf(activitiesPrompt, text), 1000, 0.3)
	if err != nil {
		return nil, err
	}

	var info api.ActivityGoalsInfo
	if err := json.Unmarshal([]byte(stripFences(raw)), &info); err != nil {
		return nil, fmt.Errorf("extract: activities response is not valid JSON: %w", err)
	}

	applyActivityDefaults(&info)
	return &info, nil
}

const brainDumpSystemPrompt = "You are a calendar planning assistant. " +
	"Create a detailed schedule from unstructured input. Return only valid JSON."

const brainDumpPrompt = `Analyze the following user input and create a detailed calendar plan.
Return ONLY a valid JSON object with this structure, no additional text:
{
  "events": [{"title": string, "time": "HH:MM", "duration": "1h"|"30m", "description": string, "category": "work"|"meal"|"workout"|"learning"|"hobby"|"other", "priority": "high"|"medium"|"low", "activity_details": {"type": string, "preferred_time": "morning"|"afternoon"|"evening", "notes": string, "sub_activities": [{"name": string, "duration": "1h"|"30m", "description": string}]}}],
  "work_schedule": {"days": ["monday", ...], "start_time": "HH:MM", "end_time": "HH:MM", "breaks": [{"start": "HH:MM", "end": "HH:MM"}]}
}

Identify all activities mentioned, block out work hours, space events
throughout the day, and ensure no overlapping events.

User input: %s`

func (e *llmExtractor) ExtractBrainDump(ctx context.Context, text string) (*api.BrainDumpPlan, error) {
	raw, err := e.chat.Complete(ctx, brainDumpSystemPrompt, fmt.Sprintf(brainDumpPrompt, text), 2000, 0.7)
	if err != nil {
		return nil, err
	}

	var plan api.BrainDumpPlan
	if err := json.Unmarshal([]byte(stripFences(raw)), &plan); err != nil {
		return nil, fmt.Errorf("extract: brain dump response is not valid JSON: %w", err)
	}
	if len(plan.Events) == 0 {
		return nil, fmt.Errorf("extract: no events recognized in input")
	}

	applyBrainDumpDefaults(&plan)
	return &plan, nil
}

const adviseSystemPrompt = "You are a personal finance assistant. " +
	"Keep the response concise and focused on key points."

const advisePrompt = `Generate a clear and insightful financial summary based on the following details:
%s
Provide a friendly assessment of the balance and offer advice on staying on track with savings.`

func (e *llmExtractor) Advise(ctx context.Context, financialSummary string) (string, error) {
	return e.chat.Complete(ctx, adviseSystemPrompt, fmt.Sprintf(advisePrompt, financialSummary), 500, 0.4)
}

// Best-effort defaulting: a record always leaves the extractor with every
// field populated, exactly once, before anything downstream reads it.

func applyBudgetDefaults(info *api.BudgetInfo) {
	if info.Income.Frequency == "" {
		info.Income.Frequency = "monthly"
	}
	if info.Income.NextDate == "" {
		info.Income.NextDate = time.Now().Format("2006-01-02")
	}
	if info.Income.Source == "" {
		info.Income.Source = "primary"
	}
	if info.Bills == nil {
		info.Bills = []api.Bill{}
	}
	if info.AdditionalIncome == nil {
		info.AdditionalIncome = []api.Income{}
	}
	if info.Expenses == nil {
		info.Expenses = []api.Expense{}
	}
	if info.FinancialGoals == nil {
		info.FinancialGoals = []api.FinancialGoal{}
	}
}

func applyActivityDefaults(info *api.ActivityGoalsInfo) {
	if info.Goals == nil {
		info.Goals = []api.Goal{}
	}
	for i := range info.Goals {
		applyGoalDefaults(&info.Goals[i])
	}

	if info.Preferences.MealTimes == nil {
		info.Preferences.MealTimes = []string{"breakfast", "lunch", "dinner"}
	}
	if info.Preferences.WorkoutTimes == nil {
		info.Preferences.WorkoutTimes = []string{"morning", "afternoon", "evening"}
	}
}

func applyGoalDefaults(goal *api.Goal) {
	if goal.Type == "" {
		goal.Type = "other"
	}
	if goal.Frequency == "" {
		goal.Frequency = "daily"
	}
	if goal.Days == nil {
		goal.Days = []string{}
	}
	if goal.Duration == "" {
		goal.Duration = "1h"
	}
	if goal.PreferredTime == "" {
		goal.PreferredTime = "morning"
	}
	if goal.Category == "" {
		goal.Category = "personal"
	}
	if goal.Priority == "" {
		goal.Priority = "medium"
	}
	if goal.Dependencies == nil {
		goal.Dependencies = []string{}
	}
}

func applyBrainDumpDefaults(plan *api.BrainDumpPlan) {
	for i := range plan.Events {
		ev := &plan.Events[i]
		if ev.Title == "" {
			ev.Title = "Untitled Event"
		}
		if ev.Time == "" {
			ev.Time = "09:00"
		}
		if ev.Duration == "" {
			ev.Duration = "1h"
		}
		if ev.Category == "" {
			ev.Category = "other"
		}
		if ev.Priority == "" {
			ev.Priority = "medium"
		}
	}
}
