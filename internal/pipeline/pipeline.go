// Package pipeline orchestrates ingestion: raw rows from a format parser
// are normalized, their signed amount resolved, and a category assigned,
// yielding canonical transactions ready for persistence.
package pipeline

import (
	"context"

	"minibank/statement-analyzer/internal/categorizer"
	"minibank/statement-analyzer/internal/logging"
	"minibank/statement-analyzer/internal/models"
	"minibank/statement-analyzer/internal/normalize"
	"minibank/statement-analyzer/internal/textutils"
)

// Pipeline is a pure transformation from raw rows to canonical
// transactions. It performs no I/O of its own; classification calls made by
// the categorizer are bounded by its per-call timeout.
type Pipeline struct {
	normalizer  *normalize.Normalizer
	categorizer *categorizer.Categorizer
	logger      logging.Logger
}

// New creates a Pipeline from its two collaborators.
func New(n *normalize.Normalizer, c *categorizer.Categorizer, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Pipeline{
		normalizer:  n,
		categorizer: c,
		logger:      logger,
	}
}

// Ingest converts raw rows to canonical transactions. Rows are processed
// independently: malformed fields degrade to defaults and never abort the
// batch. Empty input yields empty output.
func (p *Pipeline) Ingest(ctx context.Context, rows []models.RawRow) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(rows))

	for i, row := range rows {
		description := textutils.CleanDescription(p.normalizer.Description(row))
		date := p.normalizer.Date(row)
		amount := p.normalizer.ResolveAmount(row)

		// A category already carried by the source row is kept verbatim;
		// the classifier only fills in missing ones.
		category := p.normalizer.Category(row)
		if category == "" {
			category = p.categorizer.Categorize(ctx, description)
		}

		p.logger.Debug("row ingested",
			logging.Field{Key: logging.FieldRow, Value: i},
			logging.Field{Key: logging.FieldCategory, Value: category})

		transactions = append(transactions, models.Transaction{
			Date:        date,
			Description: description,
			Amount:      amount,
			Category:    category,
		})
	}

	p.logger.Info("ingestion complete",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions
}
