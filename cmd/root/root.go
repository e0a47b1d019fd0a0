// Package root contains the root command for the application.
package root

import (
	"context"

	"github.com/spf13/cobra"

	"minibank/statement-analyzer/internal/config"
	"minibank/statement-analyzer/internal/container"
)

// Cmd is the root command.
var Cmd = &cobra.Command{
	Use:   "statement-analyzer",
	Short: "Ingest bank statement exports, categorize transactions, and summarize spending.",
	Long: `statement-analyzer normalizes bank statement exports in CSV or JSON form
into canonical transactions, assigns each a spending/income category via an
ordered keyword rule cascade (optionally backed by an external classifier),
and stores the result. Each upload replaces the previous statement.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnv()
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// BuildContainer loads configuration and wires the application container.
// Subcommands call this at the start of their RunE and close the returned
// container when done.
func BuildContainer(ctx context.Context) (*container.Container, error) {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, err
	}
	return container.NewContainer(ctx, cfg)
}
