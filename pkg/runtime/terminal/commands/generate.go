package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/de-tools/plan-atlas/pkg/adapters"
	icsexport "github.com/de-tools/plan-atlas/pkg/export"
	"github.com/de-tools/plan-atlas/pkg/models/api"
	"github.com/de-tools/plan-atlas/pkg/models/domain"
	"github.com/de-tools/plan-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/plan-atlas/pkg/services/planner"
	"github.com/de-tools/plan-atlas/pkg/store/progress"
)

const dateLayout = "2006-01-02"

type GenerateCmd struct {
	budgetPath   string
	goalsPath    string
	from         string
	to           string
	out          string
	progressPath string
	walker       planner.Walker
	reporter     *export.Reporter
}

func NewGenerateCmd(walker planner.Walker, reporter *export.Reporter) *cobra.Command {
	gc := &GenerateCmd{walker: walker, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a calendar plan from budget and activity records",
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.budgetPath, "budget", "", "Path to the budget record JSON file")
	cmd.Flags().StringVar(&gc.goalsPath, "goals", "", "Path to the activity goals JSON file")
	cmd.Flags().StringVar(&gc.from, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gc.to, "to", "", "Range end, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gc.out, "out", "financial_calendar.ics", "Output calendar path")
	cmd.Flags().StringVar(&gc.progressPath, "progress", "", "Pay-cycle progress file (skipped when empty)")

	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, _ []string) error {
	start, err := time.Parse(dateLayout, gc.from)
	if err != nil {
		return fmt.Errorf("invalid --from date %q, expected YYYY-MM-DD", gc.from)
	}
	end, err := time.Parse(dateLayout, gc.to)
	if err != nil {
		return fmt.Errorf("invalid --to date %q, expected YYYY-MM-DD", gc.to)
	}

	var rec domain.BudgetRecord
	if gc.budgetPath != "" {
		var info api.BudgetInfo
		if err := readJSONFile(gc.budgetPath, &info); err != nil {
			return fmt.Errorf("failed to read budget record: %w", err)
		}
		rec = adapters.MapBudgetInfoApiToDomain(info)
	}

	var goals domain.ActivityGoals
	if gc.goalsPath != "" {
		var info api.ActivityGoalsInfo
		if err := readJSONFile(gc.goalsPath, &info); err != nil {
			return fmt.Errorf("failed to read activity goals: %w", err)
		}
		goals = adapters.MapActivityGoalsApiToDomain(info)
	}

	col, err := gc.walker.Generate(cmd.Context(), start, end, rec, goals)
	if err != nil {
		return fmt.Errorf("failed to generate plan: %w", err)
	}

	if err := icsexport.WriteFile(gc.out, col); err != nil {
		return err
	}

	if gc.progressPath != "" && !rec.Empty() {
		store, err := progress.NewStore(gc.progressPath)
		if err != nil {
			return err
		}
		if _, err := store.Advance(rec.Income.NextDate, rec.StartingBalance); err != nil {
			return err
		}
	}

	return gc.reporter.Handle(domain.BuildRunReport(start, end, col))
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
