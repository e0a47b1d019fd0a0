// Package store persists canonical transactions in SQLite and computes
// per-category aggregates. Each upload fully replaces the previous
// transaction set; there is no merge and no history.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"minibank/statement-analyzer/internal/logging"
	"minibank/statement-analyzer/internal/models"
	"minibank/statement-analyzer/internal/parsererror"
)

// Amounts are stored as decimal strings, not floats, so totals survive the
// round trip exactly.
const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	date        TEXT NOT NULL,
	description TEXT NOT NULL,
	amount      TEXT NOT NULL,
	category    TEXT NOT NULL
);
`

// TransactionStore is the persistence backend for canonical transactions.
type TransactionStore struct {
	db     *sql.DB
	logger logging.Logger
}

// Open opens (or creates) the SQLite database at path and ensures the
// schema exists. Use ":memory:" for an ephemeral store.
func Open(path string, logger logging.Logger) (*TransactionStore, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	logger.Debug("transaction store opened",
		logging.Field{Key: logging.FieldDatabase, Value: path})

	return &TransactionStore{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *TransactionStore) Close() error {
	return s.db.Close()
}

// ReplaceAll discards the previous transaction set and persists the new one
// as a single SQL transaction. Readers never observe a mixed or partially
// inserted state: either the whole batch commits or the previous set
// remains intact.
func (s *TransactionStore) ReplaceAll(ctx context.Context, transactions []models.Transaction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &parsererror.PersistenceError{Op: "replace-all", Err: err}
	}
	defer tx.Rollback() //nolint:errcheck // rollback is a no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM transactions"); err != nil {
		return &parsererror.PersistenceError{Op: "replace-all", Err: err}
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (date, description, amount, category)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return &parsererror.PersistenceError{Op: "replace-all", Err: err}
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			s.logger.WithError(err).Warn("failed to close insert statement")
		}
	}()

	for _, t := range transactions {
		if _, err := stmt.ExecContext(ctx, t.Date, t.Description, t.Amount.String(), t.Category); err != nil {
			return &parsererror.PersistenceError{Op: "replace-all", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &parsererror.PersistenceError{Op: "replace-all", Err: err}
	}

	s.logger.Info("transaction set replaced",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return nil
}

// ListAll returns the current transaction set in insertion order.
func (s *TransactionStore) ListAll(ctx context.Context) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, description, amount, category
		FROM transactions
		ORDER BY id
	`)
	if err != nil {
		return nil, &parsererror.PersistenceError{Op: "list-all", Err: err}
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.WithError(err).Warn("failed to close result set")
		}
	}()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var amount string
		if err := rows.Scan(&t.ID, &t.Date, &t.Description, &amount, &t.Category); err != nil {
			return nil, &parsererror.PersistenceError{Op: "list-all", Err: err}
		}
		t.Amount = models.ParseAmount(amount)
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &parsererror.PersistenceError{Op: "list-all", Err: err}
	}

	return transactions, nil
}

// Summarize groups the current transaction set by category and sums the
// signed amounts with decimal precision. Categories with no transactions
// are absent from the result.
func (s *TransactionStore) Summarize(ctx context.Context) (map[string]decimal.Decimal, error) {
	transactions, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		summary[t.Category] = summary[t.Category].Add(t.Amount)
	}
	return summary, nil
}
