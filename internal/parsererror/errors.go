// Package parsererror defines the typed errors surfaced across the
// ingestion and persistence boundaries.
package parsererror

import "fmt"

// InvalidFormatError means the uploaded content could not be parsed as any
// supported tabular format. It is batch-fatal: no partial rows are yielded
// and the store is never touched.
type InvalidFormatError struct {
	Source         string // file path or "reader" when parsing a stream
	ExpectedFormat string
	Msg            string
	Err            error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s input from %s: %s: %v",
			e.ExpectedFormat, e.Source, e.Msg, e.Err)
	}
	return fmt.Sprintf("invalid %s input from %s: %s", e.ExpectedFormat, e.Source, e.Msg)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// ParseError records a field-level parsing failure. Field failures are never
// batch-fatal; this type exists for diagnostics and logging.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// PersistenceError means a store operation failed. ReplaceAll failures roll
// back, so the previous transaction set remains intact.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
