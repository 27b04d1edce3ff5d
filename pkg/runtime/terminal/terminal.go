package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/plan-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/plan-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/plan-atlas/pkg/services/extract"
	"github.com/de-tools/plan-atlas/pkg/services/planner"
)

// CLI represents the command-line interface
type CLI struct {
	walker    planner.Walker
	extractor extract.Extractor
	reporter  *export.Reporter
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Walker    planner.Walker
	Extractor extract.Extractor
	Output    io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		walker:    opts.Walker,
		extractor: opts.Extractor,
		reporter:  export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planatlas",
		Short: "Calendar plan synthesis tool",
	}

	cmd.AddCommand(commands.NewGenerateCmd(cli.walker, cli.reporter))
	cmd.AddCommand(commands.NewExtractCmd(cli.extractor))
	cmd.AddCommand(commands.NewBrainDumpCmd(cli.extractor, cli.walker, cli.reporter))
	cmd.AddCommand(commands.NewAdviseCmd(cli.extractor))

	return cmd
}
