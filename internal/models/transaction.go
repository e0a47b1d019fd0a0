// Package models provides the data structures used throughout the application.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is the canonical record produced by the ingestion pipeline
// and persisted by the store. Every field is always populated; empty string
// and zero are valid defaults for malformed source data.
type Transaction struct {
	ID          int64           `csv:"Id"`          // Assigned by the store at insert time
	Date        string          `csv:"Date"`        // Stored as provided by the source, opaque if unparsable
	Description string          `csv:"Description"` // Free text, possibly empty
	Amount      decimal.Decimal `csv:"Amount"`      // Negative = outflow, positive = inflow
	Category    string          `csv:"Category"`    // Rule-assigned or carried over from the source row
}

// ParseAmount parses a string amount to decimal.Decimal, tolerating the
// formatting noise found in statement exports: comma decimal separators,
// currency symbols, spaces and thousands separators. Non-numeric or empty
// input parses to zero rather than failing, so a single bad cell never
// aborts a batch.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	if amount == "" {
		return decimal.Zero
	}

	// Normalize comma decimal separators before stripping the rest
	amount = strings.ReplaceAll(amount, ",", ".")
	amount = strings.ReplaceAll(amount, " ", "")
	for _, sym := range []string{"CHF", "EUR", "USD", "INR", "$", "€", "₹"} {
		amount = strings.ReplaceAll(amount, sym, "")
	}
	// Thousands separators
	amount = strings.ReplaceAll(amount, "'", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
