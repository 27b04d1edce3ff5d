package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/de-tools/plan-atlas/pkg/adapters"
	"github.com/de-tools/plan-atlas/pkg/models/api"
	"github.com/de-tools/plan-atlas/pkg/models/domain"
	"github.com/de-tools/plan-atlas/pkg/services/extract"
	"github.com/de-tools/plan-atlas/pkg/services/finance"
)

type AdviseCmd struct {
	budgetPath string
	extractor  extract.Extractor
}

func NewAdviseCmd(extractor extract.Extractor) *cobra.Command {
	ac := &AdviseCmd{extractor: extractor}
	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Summarize a budget record and get spending advice",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.budgetPath, "budget", "", "Path to the budget record JSON file")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func (ac *AdviseCmd) run(cmd *cobra.Command, _ []string) error {
	if ac.extractor == nil {
		return fmt.Errorf("extraction is not configured, set the API key environment variable")
	}

	var info api.BudgetInfo
	if err := readJSONFile(ac.budgetPath, &info); err != nil {
		return fmt.Errorf("failed to read budget record: %w", err)
	}
	rec := adapters.MapBudgetInfoApiToDomain(info)
	figures := finance.Project(rec)

	advice, err := ac.extractor.Advise(cmd.Context(), weeklySummary(rec, figures))
	if err != nil {
		return fmt.Errorf("failed to get advice: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), advice)
	return nil
}

func weeklySummary(rec domain.BudgetRecord, f domain.WeeklyFigures) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Starting balance: $%.2f\n", rec.StartingBalance)
	fmt.Fprintf(&b, "Weekly income: $%.2f\n", f.Income)
	fmt.Fprintf(&b, "Weekly expenses: $%.2f\n", f.ExpensesTotal)
	fmt.Fprintf(&b, "Weekly savings: $%.2f\n", f.Savings)
	fmt.Fprintf(&b, "Weekly discretionary: $%.2f\n", f.Discretionary)
	if f.EmergencyFundProgress != nil {
		fmt.Fprintf(&b, "Emergency fund progress: %.1f%%\n", *f.EmergencyFundProgress*100)
	}
	if f.DebtPayoffProgress != nil {
		fmt.Fprintf(&b, "Debt payoff progress: %.1f%%\n", *f.DebtPayoffProgress*100)
	}
	return b.String()
}
