// Package ingest implements the upload path: parse a statement file,
// run the ingestion pipeline, and replace the stored transaction set.
package ingest

import (
	"fmt"

	"github.com/spf13/cobra"

	"minibank/statement-analyzer/cmd/root"
	"minibank/statement-analyzer/internal/batch"
	"minibank/statement-analyzer/internal/fileutils"
	"minibank/statement-analyzer/internal/logging"
	"minibank/statement-analyzer/internal/models"
	"minibank/statement-analyzer/internal/parser"
)

var (
	inputFile string
	inputDir  string
	format    string
)

// Cmd is the ingest command.
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest statement exports (CSV or JSON), replacing the stored transactions",
	RunE:  run,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Statement file to ingest (.csv or .json)")
	Cmd.Flags().StringVarP(&inputDir, "dir", "d", "", "Ingest every statement file in a directory as one batch")
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Force input format (csv or json) instead of inferring from the extension")
	Cmd.MarkFlagsOneRequired("input", "dir")
	Cmd.MarkFlagsMutuallyExclusive("input", "dir")
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.BuildContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	source := inputFile
	if inputDir != "" {
		source = inputDir
	}
	log := c.Logger().WithField(logging.FieldFile, source)

	var rows []models.RawRow
	if inputDir != "" {
		rows, err = batch.NewAggregator(c.Logger()).CollectRows(inputDir)
	} else {
		rows, err = parseFile(c.Logger(), inputFile)
	}
	if err != nil {
		// Format errors are batch-fatal: the store is never touched.
		return err
	}

	transactions, err := c.Ingest(cmd.Context(), rows)
	if err != nil {
		return err
	}

	log.Info("statement ingested",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	fmt.Fprintf(cmd.OutOrStdout(), "Ingested %d transactions from %s\n", len(transactions), source)
	return nil
}

func parseFile(log logging.Logger, path string) ([]models.RawRow, error) {
	var (
		p   parser.Parser
		err error
	)
	if format != "" {
		p, err = parser.New(parser.Format(format), log)
	} else {
		p, err = parser.ForFile(path, log)
	}
	if err != nil {
		return nil, err
	}

	file, err := fileutils.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open statement file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return p.Parse(file)
}
