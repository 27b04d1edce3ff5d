// Package workout builds deterministic exercise plans keyed on training
// location, experience level, and available equipment.
package workout

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/plan-atlas/pkg/models/domain"
)

// Exercise is one entry of a plan section. Sets/Reps/Duration are free-form
// quantifiers; whichever are set get rendered.
type Exercise struct {
	Name        string
	Sets        string
	Reps        string
	Duration    string
	Description string
}

// Plan is a full session: warm-up, main workout, cool-down.
type Plan struct {
	WarmUp   []Exercise
	Main     []Exercise
	CoolDown []Exercise
}

// Suggester produces a session plan for the given preferences.
type Suggester interface {
	Suggest(prefs domain.WorkoutPreferences) (Plan, error)
}

type suggester struct{}

func NewSuggester() Suggester {
	return &suggester{}
}

func (s *suggester) Suggest(prefs domain.WorkoutPreferences) (Plan, error) {
	plan := Plan{
		WarmUp: []Exercise{
			{Name: "Light Cardio", Duration: "5-10 minutes", Description: "Walking, jogging, or cycling"},
			{Name: "Dynamic Stretches", Duration: "5 minutes", Description: "Arm circles, leg swings, hip circles"},
		},
		CoolDown: []Exercise{
			{Name: "Static stretching", Duration: "5-10 minutes", Description: "Focus on major muscle groups used in the workout"},
			{Name: "Deep breathing", Duration: "2-3 minutes", Description: "Relaxation and recovery"},
		},
	}

	plan.Main = mainExercises(prefs.Location, prefs.Experience)
	plan.Main = append(plan.Main, equipmentExercises(prefs.Equipment)...)

	return plan, nil
}

func mainExercises(location, experience string) []Exercise {
	if location == "gym" {
		switch experience {
		case "beginner":
			return []Exercise{
				{Name: "Machine-based exercises", Sets: "3", Reps: "12-15", Description: "Start with lighter weights and focus on form"},
				{Name: "Bodyweight exercises", Sets: "3", Reps: "10-12", Description: "Push-ups, squats, planks"},
			}
		case "intermediate":
			return []Exercise{
				{Name: "Compound exercises", Sets: "4", Reps: "8-12", Description: "Squats, deadlifts, bench press"},
				{Name: "Isolation exercises", Sets: "3", Reps: "10-12", Description: "Bicep curls, tricep extensions, lateral raises"},
			}
		default:
			return []Exercise{
				{Name: "Advanced compound movements", Sets: "5", Reps: "6-8", Description: "Heavy squats, deadlifts, overhead press"},
				{Name: "Supersets", Sets: "4", Reps: "8-12", Description: "Combined exercises for intensity"},
			}
		}
	}

	switch experience {
	case "beginner":
		return []Exercise{
			{Name: "Basic bodyweight exercises", Sets: "3", Reps: "10-12", Description: "Push-ups, squats, planks"},
			{Name: "Mobility work", Sets: "2", Duration: "30 seconds each", Description: "Hip mobility, shoulder mobility"},
		}
	case "intermediate":
		return []Exercise{
			{Name: "Advanced bodyweight exercises", Sets: "4", Reps: "8-12", Description: "Diamond push-ups, Bulgarian split squats"},
			{Name: "Circuit training", Sets: "3", Duration: "45 seconds each", Description: "High-intensity bodyweight movements"},
		}
	default:
		return []Exercise{
			{Name: "Complex movements", Sets: "5", Reps: "6-8", Description: "Pistol squats, handstand push-ups"},
			{Name: "HIIT intervals", Sets: "4", Duration: "30 seconds work, 15 seconds rest", Description: "High-intensity interval training"},
		}
	}
}

func equipmentExercises(equipment []string) []Exercise {
	var out []Exercise
	for _, item := range equipment {
		switch item {
		case "dumbbells":
			out = append(out, Exercise{Name: "Dumbbell exercises", Sets: "3-4", Reps: "10-12", Description: "Rows, presses, curls"})
		case "resistance_bands":
			out = append(out, Exercise{Name: "Resistance band exercises", Sets: "3-4", Reps: "12-15", Description: "Band pull-aparts, band squats"})
		case "pull_up_bar":
			out = append(out, Exercise{Name: "Pull-up variations", Sets: "3-4", Reps: "6-10", Description: "Pull-ups, chin-ups, hanging leg raises"})
		case "yoga_mat":
			out = append(out, Exercise{Name: "Core work", Sets: "3", Duration: "45 seconds each", Description: "Planks, crunches, mountain climbers"})
		}
	}
	return out
}

// quantifiers joins whichever of sets/reps/duration are present.
func (e Exercise) quantifiers() string {
	var parts []string
	for _, q := range []string{e.Sets, e.Reps, e.Duration} {
		if q != "" {
			parts = append(parts, q)
		}
	}
	return strings.Join(parts, " ")
}

func renderSection(b *strings.Builder, title string, exercises []Exercise) {
	b.WriteString(title)
	b.WriteString(":\n")
	for _, e := range exercises {
		fmt.Fprintf(b, "- %s: %s - %s\n", e.Name, e.quantifiers(), e.Description)
	}
}

// Describe renders the plan into the event description format.
func (p Plan) Describe(date time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Workout Plan for %s:\n\n", date.Format("January 02, 2006"))
	renderSection(&b, "Warmup", p.WarmUp)
	b.WriteString("\n")
	renderSection(&b, "Main Workout", p.Main)
	b.WriteString("\n")
	renderSection(&b, "Cooldown", p.CoolDown)
	return b.String()
}
