// Package list prints the current transaction set, optionally exporting it
// to a canonical CSV file.
package list

import (
	"fmt"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"minibank/statement-analyzer/cmd/root"
	"minibank/statement-analyzer/internal/fileutils"
	"minibank/statement-analyzer/internal/logging"
	"minibank/statement-analyzer/internal/models"
)

var outputFile string

// Cmd is the list command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "Show the current transaction set in insertion order",
	RunE:  run,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the transactions to a CSV file instead of stdout")
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.BuildContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	transactions, err := c.Store().ListAll(cmd.Context())
	if err != nil {
		return err
	}

	if outputFile != "" {
		return writeCSV(c.Logger(), transactions, outputFile)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tAMOUNT\tCATEGORY")
	for _, t := range transactions {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			t.ID, t.Date, t.Description, t.Amount.StringFixed(2), t.Category)
	}
	return w.Flush()
}

func writeCSV(log logging.Logger, transactions []models.Transaction, path string) error {
	file, err := fileutils.CreateFile(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if err := gocsv.Marshal(transactions, file); err != nil {
		return fmt.Errorf("write transactions to CSV: %w", err)
	}

	log.Info("transactions exported",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return nil
}
