package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain integer", "50000", "50000"},
		{"negative", "-1200", "-1200"},
		{"decimal point", "12.34", "12.34"},
		{"comma decimal separator", "12,34", "12.34"},
		{"currency symbol", "CHF 99.90", "99.9"},
		{"thousands apostrophe", "1'234.56", "1234.56"},
		{"empty string", "", "0"},
		{"whitespace only", "   ", "0"},
		{"non-numeric", "abc", "0"},
		{"lone minus", "-", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want, err := decimal.NewFromString(tc.want)
			assert.NoError(t, err)
			got := ParseAmount(tc.input)
			assert.True(t, want.Equal(got), "ParseAmount(%q) = %s, want %s", tc.input, got, want)
		})
	}
}
