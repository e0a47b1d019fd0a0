package parser

import (
	"io"

	"github.com/gocarina/gocsv"

	"minibank/statement-analyzer/internal/logging"
	"minibank/statement-analyzer/internal/models"
	"minibank/statement-analyzer/internal/parsererror"
)

// CSVParser parses delimited-text statements. Header names are taken as-is
// and become RawRow keys; the normalizer downstream deals with casing and
// synonyms, so no schema is assumed here.
type CSVParser struct {
	logger logging.Logger
}

// NewCSVParser creates a CSV parser.
func NewCSVParser(logger logging.Logger) *CSVParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CSVParser{logger: logger}
}

// Parse reads header-keyed CSV rows. An empty input yields zero rows, not an
// error; structurally broken CSV (e.g. inconsistent field counts) is a
// format error.
func (p *CSVParser) Parse(r io.Reader) ([]models.RawRow, error) {
	maps, err := gocsv.CSVToMaps(r)
	if err != nil {
		p.logger.WithError(err).Error("failed to parse CSV input")
		return nil, &parsererror.InvalidFormatError{
			Source:         "reader",
			ExpectedFormat: "CSV",
			Msg:            "content is not parsable as delimited text",
			Err:            err,
		}
	}

	rows := make([]models.RawRow, 0, len(maps))
	for _, m := range maps {
		rows = append(rows, models.RawRow(m))
	}

	p.logger.Debug("parsed CSV input",
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}
