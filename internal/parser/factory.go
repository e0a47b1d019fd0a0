package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"minibank/statement-analyzer/internal/logging"
)

// Format identifies a supported statement file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// New returns the parser for the given format.
func New(format Format, logger logging.Logger) (Parser, error) {
	switch format {
	case FormatCSV:
		return NewCSVParser(logger), nil
	case FormatJSON:
		return NewJSONParser(logger), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: csv, json)", format)
	}
}

// ForFile picks a parser from the file extension. Only .csv and .json are
// accepted, matching the upload contract.
func ForFile(path string, logger logging.Logger) (Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSVParser(logger), nil
	case ".json":
		return NewJSONParser(logger), nil
	default:
		return nil, fmt.Errorf("unsupported file type %q: only CSV and JSON are allowed", filepath.Ext(path))
	}
}
