package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/placement-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/placement-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/placement-atlas/pkg/services/catalog"
	"github.com/de-tools/placement-atlas/pkg/services/placement"
)

// CLI represents the command-line interface
type CLI struct {
	catalog   *catalog.Catalog
	estimator placement.Service
	reporter  *export.Reporter
	output    io.Writer
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Catalog   *catalog.Catalog
	Estimator placement.Service
	Output    io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		catalog:   opts.Catalog,
		estimator: opts.Estimator,
		reporter:  export.NewReporter(opts.Output),
		output:    opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "atlas",
		Short: "Compute placement comparison tool",
	}

	cmd.AddCommand(commands.NewNodesCmd(cli.catalog, cli.output))
	cmd.AddCommand(commands.NewWorkloadsCmd(cli.catalog, cli.output))
	cmd.AddCommand(commands.NewEstimateCmd(cli.catalog, cli.estimator, cli.reporter))
	cmd.AddCommand(commands.NewPlanCmd(cli.output))

	return cmd
}
