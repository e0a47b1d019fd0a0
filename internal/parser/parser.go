// Package parser turns uploaded statement files into raw rows. The pipeline
// downstream is agnostic to the source format; everything format-specific
// lives here.
package parser

import (
	"io"

	"minibank/statement-analyzer/internal/models"
)

// Parser reads an uploaded statement and yields its raw rows.
//
// Implementations return *parsererror.InvalidFormatError when the content is
// not parsable as their format at all; they never yield partial rows
// alongside an error.
type Parser interface {
	Parse(r io.Reader) ([]models.RawRow, error)
}
