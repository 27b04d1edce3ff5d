package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/de-tools/plan-atlas/pkg/adapters"
	icsexport "github.com/de-tools/plan-atlas/pkg/export"
	"github.com/de-tools/plan-atlas/pkg/models/domain"
	"github.com/de-tools/plan-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/plan-atlas/pkg/services/extract"
	"github.com/de-tools/plan-atlas/pkg/services/planner"
)

type BrainDumpCmd struct {
	inputPath string
	from      string
	to        string
	out       string
	extractor extract.Extractor
	walker    planner.Walker
	reporter  *export.Reporter
}

func NewBrainDumpCmd(extractor extract.Extractor, walker planner.Walker, reporter *export.Reporter) *cobra.Command {
	bc := &BrainDumpCmd{extractor: extractor, walker: walker, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "braindump",
		Short: "Turn a free-form text file into a calendar plan",
		RunE:  bc.run,
	}

	cmd.Flags().StringVar(&bc.inputPath, "input", "", "Path to the free-form text file")
	cmd.Flags().StringVar(&bc.from, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&bc.to, "to", "", "Range end, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&bc.out, "out", "financial_calendar.ics", "Output calendar path")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (bc *BrainDumpCmd) run(cmd *cobra.Command, _ []string) error {
	if bc.extractor == nil {
		return fmt.Errorf("extraction is not configured, set the API key environment variable")
	}

	start, err := time.Parse(dateLayout, bc.from)
	if err != nil {
		return fmt.Errorf("invalid --from date %q, expected YYYY-MM-DD", bc.from)
	}
	end, err := time.Parse(dateLayout, bc.to)
	if err != nil {
		return fmt.Errorf("invalid --to date %q, expected YYYY-MM-DD", bc.to)
	}

	text, err := os.ReadFile(bc.inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	plan, err := bc.extractor.ExtractBrainDump(cmd.Context(), string(text))
	if err != nil {
		return fmt.Errorf("failed to extract plan: %w", err)
	}

	goals := adapters.MapBrainDumpPlanApiToDomain(*plan)
	col, err := bc.walker.Generate(cmd.Context(), start, end, domain.BudgetRecord{}, goals)
	if err != nil {
		return fmt.Errorf("failed to generate plan: %w", err)
	}

	if err := icsexport.WriteFile(bc.out, col); err != nil {
		return err
	}

	return bc.reporter.Handle(domain.BuildRunReport(start, end, col))
}
