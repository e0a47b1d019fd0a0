package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minibank/statement-analyzer/internal/logging"
	"minibank/statement-analyzer/internal/parsererror"
)

func TestJSONParserParse(t *testing.T) {
	input := `[
		{"Date": "2024-01-05", "Description": "Monthly Salary Credit", "deposit": 50000},
		{"date": "2024-01-06", "transaction_remarks": "Grocery Store Purchase", "Amount": "-1200"}
	]`

	p := NewJSONParser(&logging.MockLogger{})
	rows, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Numeric JSON values keep their literal form
	assert.Equal(t, "50000", rows[0]["deposit"])
	assert.Equal(t, "Monthly Salary Credit", rows[0]["Description"])
	assert.Equal(t, "-1200", rows[1]["Amount"])
}

func TestJSONParserScalarCoercion(t *testing.T) {
	input := `[{"a": 12.50, "b": true, "c": null, "d": "text"}]`

	p := NewJSONParser(&logging.MockLogger{})
	rows, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "12.50", rows[0]["a"])
	assert.Equal(t, "true", rows[0]["b"])
	assert.Equal(t, "", rows[0]["c"])
	assert.Equal(t, "text", rows[0]["d"])
}

func TestJSONParserEmptyArray(t *testing.T) {
	p := NewJSONParser(&logging.MockLogger{})
	rows, err := p.Parse(strings.NewReader("[]"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestJSONParserNotAnArray(t *testing.T) {
	p := NewJSONParser(&logging.MockLogger{})
	rows, err := p.Parse(strings.NewReader(`{"Date": "2024-01-05"}`))

	assert.Nil(t, rows)
	var formatErr *parsererror.InvalidFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "JSON", formatErr.ExpectedFormat)
}

func TestJSONParserGarbage(t *testing.T) {
	p := NewJSONParser(&logging.MockLogger{})
	_, err := p.Parse(strings.NewReader("Date,Description\n2024,csv actually\n"))

	var formatErr *parsererror.InvalidFormatError
	require.True(t, errors.As(err, &formatErr))
}

func TestFactory(t *testing.T) {
	log := &logging.MockLogger{}

	p, err := New(FormatCSV, log)
	require.NoError(t, err)
	assert.IsType(t, &CSVParser{}, p)

	p, err = New(FormatJSON, log)
	require.NoError(t, err)
	assert.IsType(t, &JSONParser{}, p)

	_, err = New("xml", log)
	assert.ErrorContains(t, err, "unsupported format")
}

func TestForFile(t *testing.T) {
	log := &logging.MockLogger{}

	p, err := ForFile("/uploads/statement.CSV", log)
	require.NoError(t, err)
	assert.IsType(t, &CSVParser{}, p)

	p, err = ForFile("statement.json", log)
	require.NoError(t, err)
	assert.IsType(t, &JSONParser{}, p)

	_, err = ForFile("statement.xlsx", log)
	assert.ErrorContains(t, err, "only CSV and JSON")
}
