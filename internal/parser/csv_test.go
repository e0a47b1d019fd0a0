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

func TestCSVParserParse(t *testing.T) {
	input := strings.Join([]string{
		"Date,Description,withdrawal,deposit",
		"2024-01-05,Monthly Salary Credit,,50000",
		"2024-01-06,Grocery Store Purchase,1200,",
	}, "\n")

	p := NewCSVParser(&logging.MockLogger{})
	rows, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-01-05", rows[0]["Date"])
	assert.Equal(t, "Monthly Salary Credit", rows[0]["Description"])
	assert.Equal(t, "", rows[0]["withdrawal"])
	assert.Equal(t, "50000", rows[0]["deposit"])
	assert.Equal(t, "1200", rows[1]["withdrawal"])
}

func TestCSVParserHeadersKeptVerbatim(t *testing.T) {
	input := "transaction_remarks,Amount\nGrocery Store Purchase,-1200\n"

	p := NewCSVParser(&logging.MockLogger{})
	rows, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	value, ok := rows[0].Lookup("transaction_remarks")
	assert.True(t, ok)
	assert.Equal(t, "Grocery Store Purchase", value)
}

func TestCSVParserEmptyInput(t *testing.T) {
	p := NewCSVParser(&logging.MockLogger{})
	rows, err := p.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCSVParserHeaderOnly(t *testing.T) {
	p := NewCSVParser(&logging.MockLogger{})
	rows, err := p.Parse(strings.NewReader("Date,Description,Amount\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCSVParserMalformedInput(t *testing.T) {
	// Second data row has a field count that disagrees with the header
	input := "Date,Description\n2024-01-05,ok\n2024-01-06,broken,extra,fields\n"

	p := NewCSVParser(&logging.MockLogger{})
	rows, err := p.Parse(strings.NewReader(input))

	assert.Nil(t, rows)
	var formatErr *parsererror.InvalidFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "CSV", formatErr.ExpectedFormat)
}
