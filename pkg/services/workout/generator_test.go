package workout

import (
	"testing"
	"time"

	"github.com/de-tools/plan-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest_GymIntermediate(t *testing.T) {
	s := NewSuggester()

	plan, err := s.Suggest(domain.WorkoutPreferences{
		Location:   "gym",
		Experience: "intermediate",
	})

	require.NoError(t, err)
	require.Len(t, plan.Main, 2)
	assert.Equal(t, "Compound exercises", plan.Main[0].Name)
	assert.Len(t, plan.WarmUp, 2)
	assert.Len(t, plan.CoolDown, 2)
}

func TestSuggest_HomeDefaultsToAdvanced(t *testing.T) {
	s := NewSuggester()

	plan, err := s.Suggest(domain.WorkoutPreferences{
		Location:   "home",
		Experience: "advanced",
	})

	require.NoError(t, err)
	require.Len(t, plan.Main, 2)
	assert.Equal(t, "Complex movements", plan.Main[0].Name)
}

func TestSuggest_EquipmentExtendsMainWorkout(t *testing.T) {
	s := NewSuggester()

	plan, err := s.Suggest(domain.WorkoutPreferences{
		Location:   "gym",
		Experience: "beginner",
		Equipment:  []string{"dumbbells", "pull_up_bar", "unknown_gear"},
	})

	require.NoError(t, err)
	require.Len(t, plan.Main, 4)
	assert.Equal(t, "Dumbbell exercises", plan.Main[2].Name)
	assert.Equal(t, "Pull-up variations", plan.Main[3].Name)
}

func TestSuggest_Deterministic(t *testing.T) {
	s := NewSuggester()
	prefs := domain.WorkoutPreferences{Location: "gym", Experience: "beginner", Equipment: []string{"yoga_mat"}}

	first, err := s.Suggest(prefs)
	require.NoError(t, err)
	second, err := s.Suggest(prefs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDescribe(t *testing.T) {
	s := NewSuggester()
	plan, err := s.Suggest(domain.WorkoutPreferences{Location: "gym", Experience: "intermediate"})
	require.NoError(t, err)

	desc := plan.Describe(time.Date(2025, time.March, 3, 0, 0, 0, 0, time.Local))

	assert.Contains(t, desc, "Workout Plan for March 03, 2025:")
	assert.Contains(t, desc, "Warmup:")
	assert.Contains(t, desc, "Main Workout:")
	assert.Contains(t, desc, "Cooldown:")
	assert.Contains(t, desc, "- Compound exercises: 4 8-12 - Squats, deadlifts, bench press")
	assert.Contains(t, desc, "- Light Cardio: 5-10 minutes - Walking, jogging, or cycling")
}
