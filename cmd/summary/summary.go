// Package summary prints per-category totals for the current statement.
package summary

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"minibank/statement-analyzer/cmd/root"
)

// Cmd is the summary command.
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-category totals for the current transaction set",
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.BuildContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	totals, err := c.Store().Summarize(cmd.Context())
	if err != nil {
		return err
	}

	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tTOTAL")
	grandTotal := decimal.Zero
	for _, category := range categories {
		fmt.Fprintf(w, "%s\t%s\n", category, totals[category].StringFixed(2))
		grandTotal = grandTotal.Add(totals[category])
	}
	fmt.Fprintf(w, "TOTAL\t%s\n", grandTotal.StringFixed(2))
	return w.Flush()
}
