// Package batch aggregates rows from every statement export in a directory
// so they can be ingested as a single replacement batch.
package batch

import (
	"fmt"
	"path/filepath"

	"minibank/statement-analyzer/internal/fileutils"
	"minibank/statement-analyzer/internal/logging"
	"minibank/statement-analyzer/internal/models"
	"minibank/statement-analyzer/internal/parser"
)

// Aggregator collects raw rows across multiple statement files.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates an Aggregator.
func NewAggregator(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Aggregator{logger: logger}
}

// CollectRows parses every CSV and JSON file directly inside dirPath and
// returns their rows in filename order. A file that fails to parse is
// skipped with a warning so one bad export does not sink the whole batch;
// a directory with no statement files at all is an error.
func (a *Aggregator) CollectRows(dirPath string) ([]models.RawRow, error) {
	files, err := fileutils.ListStatementFiles(dirPath)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no statement files (.csv or .json) in %s", dirPath)
	}

	var rows []models.RawRow
	parsed := 0
	for _, file := range files {
		fileRows, err := a.parseFile(file)
		if err != nil {
			a.logger.WithError(err).Warn("skipping unparseable statement file",
				logging.Field{Key: logging.FieldFile, Value: filepath.Base(file)})
			continue
		}

		a.logger.Debug("collected rows from file",
			logging.Field{Key: logging.FieldFile, Value: filepath.Base(file)},
			logging.Field{Key: logging.FieldCount, Value: len(fileRows)})
		rows = append(rows, fileRows...)
		parsed++
	}

	if parsed == 0 {
		return nil, fmt.Errorf("none of the %d statement files in %s could be parsed", len(files), dirPath)
	}

	a.logger.Info("aggregated statement files",
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: "files", Value: parsed})
	return rows, nil
}

func (a *Aggregator) parseFile(path string) ([]models.RawRow, error) {
	p, err := parser.ForFile(path, a.logger)
	if err != nil {
		return nil, err
	}

	file, err := fileutils.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	return p.Parse(file)
}
