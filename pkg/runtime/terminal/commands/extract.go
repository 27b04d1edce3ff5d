package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/plan-atlas/pkg/services/extract"
)

type ExtractCmd struct {
	inputPath string
	kind      string
	out       string
	extractor extract.Extractor
}

func NewExtractCmd(extractor extract.Extractor) *cobra.Command {
	ec := &ExtractCmd{extractor: extractor}
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a structured record from free-form text",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.inputPath, "input", "", "Path to the free-form text file")
	cmd.Flags().StringVar(&ec.kind, "kind", "budget", "Record kind: budget or activities")
	cmd.Flags().StringVar(&ec.out, "out", "", "Output JSON path (stdout when empty)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (ec *ExtractCmd) run(cmd *cobra.Command, _ []string) error {
	if ec.extractor == nil {
		return fmt.Errorf("extraction is not configured, set the API key environment variable")
	}

	text, err := os.ReadFile(ec.inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var record any
	switch ec.kind {
	case "budget":
		record, err = ec.extractor.ExtractBudget(cmd.Context(), string(text))
	case "activities":
		record, err = ec.extractor.ExtractActivities(cmd.Context(), string(text))
	default:
		return fmt.Errorf("unknown record kind %q, expected budget or activities", ec.kind)
	}
	if err != nil {
		return fmt.Errorf("failed to extract %s record: %w", ec.kind, err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if ec.out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	return os.WriteFile(ec.out, append(data, '\n'), 0o644)
}
