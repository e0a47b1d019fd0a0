// Package normalize maps heterogeneous statement-export fields onto the
// canonical transaction fields and resolves the signed amount from whatever
// sign convention the source used.
package normalize

import (
	"github.com/shopspring/decimal"

	"minibank/statement-analyzer/internal/models"
)

// FieldMap holds the prioritized synonym lists used to locate each canonical
// field in a raw row. Order matters: the first matching synonym wins.
type FieldMap struct {
	Description []string
	Date        []string
	Withdrawal  []string
	Deposit     []string
	Amount      []string
	Category    []string
}

// DefaultFieldMap returns the synonym sets observed across common bank
// statement exports.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		Description: []string{"description", "transaction_remarks", "note", "details", "memo", "narration"},
		Date:        []string{"date", "transaction_date", "value_date", "txn_date"},
		Withdrawal:  []string{"withdrawal", "withdrawal_amount", "debit"},
		Deposit:     []string{"deposit", "deposit_amount", "credit_amount"},
		Amount:      []string{"amount", "transaction_amount", "value"},
		Category:    []string{"category"},
	}
}

// Normalizer resolves canonical field values from raw rows. Normalization
// never fails: missing or malformed fields degrade to defined defaults.
type Normalizer struct {
	fields FieldMap
}

// New creates a Normalizer with the given field map. Empty synonym lists
// fall back to the defaults.
func New(fields FieldMap) *Normalizer {
	defaults := DefaultFieldMap()
	if len(fields.Description) == 0 {
		fields.Description = defaults.Description
	}
	if len(fields.Date) == 0 {
		fields.Date = defaults.Date
	}
	if len(fields.Withdrawal) == 0 {
		fields.Withdrawal = defaults.Withdrawal
	}
	if len(fields.Deposit) == 0 {
		fields.Deposit = defaults.Deposit
	}
	if len(fields.Amount) == 0 {
		fields.Amount = defaults.Amount
	}
	if len(fields.Category) == 0 {
		fields.Category = defaults.Category
	}
	return &Normalizer{fields: fields}
}

// Description returns the first matching description value, or "".
func (n *Normalizer) Description(row models.RawRow) string {
	value, _ := row.Lookup(n.fields.Description...)
	return value
}

// Date returns the first matching date value as provided by the source, or
// "". Unparsable dates are preserved as opaque strings, not rejected.
func (n *Normalizer) Date(row models.RawRow) string {
	value, _ := row.Lookup(n.fields.Date...)
	return value
}

// Category returns a category already carried by the source row, or "".
func (n *Normalizer) Category(row models.RawRow) string {
	value, _ := row.Lookup(n.fields.Category...)
	return value
}

// ResolveAmount derives a single signed amount from the row.
//
// Separate debit/credit columns are treated as more authoritative than a
// generic amount column when both exist, which is the common layout in
// statement exports:
//  1. non-zero withdrawal field  -> -|withdrawal|
//  2. non-zero deposit field     -> +|deposit|
//  3. unified amount field       -> parsed value, sign preserved, 0 if unparsable
//  4. nothing matched            -> 0
func (n *Normalizer) ResolveAmount(row models.RawRow) decimal.Decimal {
	if raw, ok := row.Lookup(n.fields.Withdrawal...); ok {
		if w := models.ParseAmount(raw); !w.IsZero() {
			return w.Abs().Neg()
		}
	}
	if raw, ok := row.Lookup(n.fields.Deposit...); ok {
		if d := models.ParseAmount(raw); !d.IsZero() {
			return d.Abs()
		}
	}
	if raw, ok := row.Lookup(n.fields.Amount...); ok {
		return models.ParseAmount(raw)
	}
	return decimal.Zero
}
