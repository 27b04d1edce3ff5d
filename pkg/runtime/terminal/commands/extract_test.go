package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/plan-atlas/pkg/models/api"
)

type stubExtractor struct {
	budget     *api.BudgetInfo
	activities *api.ActivityGoalsInfo
	err        error
}

func (s *stubExtractor) ExtractBudget(context.Context, string) (*api.BudgetInfo, error) {
	return s.budget, s.err
}

func (s *stubExtractor) ExtractActivities(context.Context, string) (*api.ActivityGoalsInfo, error) {
	return s.activities, s.err
}

func (s *stubExtractor) ExtractBrainDump(context.Context, string) (*api.BrainDumpPlan, error) {
	return nil, s.err
}

func (s *stubExtractor) Advise(context.Context, string) (string, error) {
	return "", s.err
}

func TestExtractCmd_BudgetToFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("I make 4000 a month"), 0o644))
	outPath := filepath.Join(dir, "budget.json")

	cmd := NewExtractCmd(&stubExtractor{
		budget: &api.BudgetInfo{StartingBalance: 1200, Income: api.Income{Amount: 4000, Frequency: "monthly"}},
	})
	cmd.SetArgs([]string{"--input", inputPath, "--kind", "budget", "--out", outPath})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"starting_balance": 1200`)
	assert.Contains(t, string(data), `"frequency": "monthly"`)
}

func TestExtractCmd_ActivitiesToStdout(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("run daily"), 0o644))

	cmd := NewExtractCmd(&stubExtractor{
		activities: &api.ActivityGoalsInfo{Goals: []api.Goal{{Title: "Run", Type: "workout", Frequency: "daily"}}},
	})
	var sb strings.Builder
	cmd.SetOut(&sb)
	cmd.SetArgs([]string{"--input", inputPath, "--kind", "activities"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, sb.String(), `"title": "Run"`)
}

func TestExtractCmd_UnknownKind(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("x"), 0o644))

	cmd := NewExtractCmd(&stubExtractor{})
	cmd.SetArgs([]string{"--input", inputPath, "--kind", "meals"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	assert.ErrorContains(t, cmd.Execute(), "unknown record kind")
}

func TestExtractCmd_NotConfigured(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("x"), 0o644))

	cmd := NewExtractCmd(nil)
	cmd.SetArgs([]string{"--input", inputPath})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	assert.ErrorContains(t, cmd.Execute(), "extraction is not configured")
}
