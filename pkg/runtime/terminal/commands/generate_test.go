package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/plan-atlas/pkg/models/api"
	"github.com/de-tools/plan-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/plan-atlas/pkg/services/planner"
	"github.com/de-tools/plan-atlas/pkg/services/workout"
	"github.com/de-tools/plan-atlas/pkg/store/progress"
)

func writeJSONFile(t *testing.T, dir, name string, v any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestGenerateCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	budgetPath := writeJSONFile(t, dir, "budget.json", api.BudgetInfo{
		StartingBalance: 2500,
		Income:          api.Income{Amount: 4000, Frequency: "monthly", NextDate: "2025-03-14"},
		SavingsGoal:     1000,
		EmergencyFund:   5000,
	})
	goalsPath := writeJSONFile(t, dir, "goals.json", api.ActivityGoalsInfo{
		Goals: []api.Goal{
			{Title: "Read", Type: "learning", Frequency: "daily", Duration: "30m", Category: "learning", Priority: "medium"},
		},
		WorkSchedule: &api.WorkSchedule{
			Days:      []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
			StartTime: "09:00",
			EndTime:   "17:00",
		},
	})

	outPath := filepath.Join(dir, "out.ics")
	progressPath := filepath.Join(dir, "progress.json")

	var sb strings.Builder
	walker := planner.NewWalker(planner.NewBuilder(workout.NewSuggester()))
	cmd := NewGenerateCmd(walker, export.NewReporter(&sb))
	cmd.SetArgs([]string{
		"--budget", budgetPath,
		"--goals", goalsPath,
		"--from", "2025-03-03",
		"--to", "2025-03-09",
		"--out", outPath,
		"--progress", progressPath,
	})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")
	assert.Contains(t, string(data), "SUMMARY:Work")
	assert.Contains(t, string(data), "SUMMARY:Financial Summary - March 03")
	// the daily reading goal contests the same morning anchor as the
	// financial review and loses, every day of the range
	assert.NotContains(t, string(data), "SUMMARY:Read")

	out := sb.String()
	assert.Contains(t, out, "Calendar Plan: 2025-03-03 to 2025-03-09")
	assert.Contains(t, out, "7 days")

	store, err := progress.NewStore(progressPath)
	require.NoError(t, err)
	snap := store.Current()
	assert.Equal(t, 1, snap.PayPeriodCounter)
	assert.Equal(t, 2500.0, snap.CurrentBalance)
}

func TestGenerateCmd_RejectsBadDates(t *testing.T) {
	var sb strings.Builder
	walker := planner.NewWalker(planner.NewBuilder(workout.NewSuggester()))
	cmd := NewGenerateCmd(walker, export.NewReporter(&sb))
	cmd.SetArgs([]string{"--from", "yesterday", "--to", "2025-03-09"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	assert.ErrorContains(t, err, "invalid --from date")
}

func TestGenerateCmd_ReversedRange(t *testing.T) {
	var sb strings.Builder
	walker := planner.NewWalker(planner.NewBuilder(workout.NewSuggester()))
	cmd := NewGenerateCmd(walker, export.NewReporter(&sb))
	cmd.SetArgs([]string{"--from", "2025-03-09", "--to", "2025-03-03"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	assert.ErrorIs(t, err, planner.ErrInvalidRange)
}
