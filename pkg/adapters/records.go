package adapters

import (
	"strings"
	"time"

	"github.com/de-tools/plan-atlas/pkg/models/api"
	"github.com/de-tools/plan-atlas/pkg/models/domain"
	"github.com/de-tools/plan-atlas/pkg/services/timeparse"
)

const dateLayout = "2006-01-02"

// parseDate is tolerant: an absent or malformed date maps to the zero time,
// which downstream code treats as "not specified".
func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// MapWeekdaysApiToDomain resolves lowercase day names, silently dropping
// anything unrecognized.
func MapWeekdaysApiToDomain(days []string) []time.Weekday {
	res := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(d))]; ok {
			res = append(res, wd)
		}
	}
	return res
}

func MapIncomeApiToDomain(i api.Income) domain.IncomeSource {
	return domain.IncomeSource{
		Source:    i.Source,
		Amount:    i.Amount,
		Frequency: domain.ParseFrequency(i.Frequency),
		NextDate:  parseDate(i.NextDate),
	}
}

func MapBudgetInfoApiToDomain(info api.BudgetInfo) domain.BudgetRecord {
	rec := domain.BudgetRecord{
		StartingBalance: info.StartingBalance,
		Income:          MapIncomeApiToDomain(info.Income),
		SavingsGoal:     info.SavingsGoal,
		EmergencyFund:   info.EmergencyFund,
		DebtPayoff:      info.DebtPayoff,
	}
	for _, b := range info.Bills {
		rec.Bills = append(rec.Bills, domain.Bill{
			Name:      b.Name,
			Amount:    b.Amount,
			DueDate:   parseDate(b.DueDate),
			Frequency: domain.ParseFrequency(b.Frequency),
			Category:  b.Category,
		})
	}
	for _, i := range info.AdditionalIncome {
		rec.AdditionalIncome = append(rec.AdditionalIncome, MapIncomeApiToDomain(i))
	}
	for _, e := range info.Expenses {
		rec.Expenses = append(rec.Expenses, domain.ExpenseItem{
			Name:      e.Name,
			Amount:    e.Amount,
			Frequency: domain.ParseFrequency(e.Frequency),
			Category:  e.Category,
		})
	}
	for _, g := range info.FinancialGoals {
		rec.FinancialGoals = append(rec.FinancialGoals, domain.FinancialGoal{
			Name:         g.Name,
			TargetAmount: g.TargetAmount,
			TargetDate:   parseDate(g.TargetDate),
			Priority:     domain.NormalizePriority(g.Priority),
		})
	}
	return rec
}

func MapWorkScheduleApiToDomain(ws *api.WorkSchedule) *domain.WorkSchedule {
	if ws == nil {
		return nil
	}
	res := &domain.WorkSchedule{
		Days:      MapWeekdaysApiToDomain(ws.Days),
		StartTime: ws.StartTime,
		EndTime:   ws.EndTime,
	}
	for _, b := range ws.Breaks {
		res.Breaks = append(res.Breaks, domain.TimeInterval{
			Start: timeparse.Clock(b.Start).Value,
			End:   timeparse.Clock(b.End).Value,
		})
	}
	return res
}

func MapGoalApiToDomain(g api.Goal) domain.ActivityGoal {
	return domain.ActivityGoal{
		Title:         g.Title,
		Type:          g.Type,
		Frequency:     domain.ParseFrequency(g.Frequency),
		Days:          MapWeekdaysApiToDomain(g.Days),
		Details:       g.Details,
		Duration:      g.Duration,
		PreferredTime: domain.PreferredTime(g.PreferredTime),
		Category:      g.Category,
		Priority:      domain.NormalizePriority(g.Priority),
		Dependencies:  g.Dependencies,
		Notes:         g.Notes,
	}
}

func MapActivityGoalsApiToDomain(info api.ActivityGoalsInfo) domain.ActivityGoals {
	res := domain.ActivityGoals{
		Preferences: domain.Preferences{
			MealTimes:    info.Preferences.MealTimes,
			WorkoutTimes: info.Preferences.WorkoutTimes,
			Other:        info.Preferences.OtherPreferences,
		},
		WorkoutPreferences: domain.WorkoutPreferences{
			Location:   info.WorkoutPreferences.Location,
			Experience: info.WorkoutPreferences.ExperienceLevel,
			Equipment:  info.WorkoutPreferences.AvailableEquipment,
		},
		WorkSchedule: MapWorkScheduleApiToDomain(info.WorkSchedule),
	}
	for _, g := range info.Goals {
		res.Goals = append(res.Goals, MapGoalApiToDomain(g))
	}
	return res
}

func MapActivityDetailsApiToDomain(d *api.ActivityDetails) *domain.ActivityDetails {
	if d == nil {
		return nil
	}
	res := &domain.ActivityDetails{
		Type:          d.Type,
		PreferredTime: d.PreferredTime,
		Notes:         d.Notes,
	}
	for _, s := range d.SubActivities {
		res.SubActivities = append(res.SubActivities, domain.SubActivity{
			Name:        s.Name,
			Duration:    s.Duration,
			Description: s.Description,
		})
	}
	return res
}

// MapBrainDumpPlanApiToDomain turns the extracted day template into activity
// goals: every planned event repeats daily across the requested range, and
// the extracted work schedule rides along for slot placement.
func MapBrainDumpPlanApiToDomain(plan api.BrainDumpPlan) domain.ActivityGoals {
	res := domain.ActivityGoals{
		WorkSchedule: MapWorkScheduleApiToDomain(plan.WorkSchedule),
	}
	for _, ev := range plan.Events {
		goalType := ev.Category
		if ev.ActivityDetails != nil && ev.ActivityDetails.Type != "" {
			goalType = ev.ActivityDetails.Type
		}
		res.Goals = append(res.Goals, domain.ActivityGoal{
			Title:     ev.Title,
			Type:      goalType,
			Frequency: domain.FrequencyDaily,
			Details:   ev.Description,
			Duration:  ev.Duration,
			Category:  ev.Category,
			Priority:  domain.NormalizePriority(ev.Priority),
			Extra:     MapActivityDetailsApiToDomain(ev.ActivityDetails),
		})
	}
	return res
}
