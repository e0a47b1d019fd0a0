// Package container provides dependency injection for the application.
// It centralizes the creation and wiring of all components, making their
// relationships explicit and testable.
package container

import (
	"context"
	"fmt"
	"time"

	"minibank/statement-analyzer/internal/categorizer"
	"minibank/statement-analyzer/internal/config"
	"minibank/statement-analyzer/internal/logging"
	"minibank/statement-analyzer/internal/models"
	"minibank/statement-analyzer/internal/normalize"
	"minibank/statement-analyzer/internal/pipeline"
	"minibank/statement-analyzer/internal/store"
)

// Container holds all application dependencies. Fields are private; access
// goes through getters so nothing can be rewired after construction.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	store       *store.TransactionStore
	classifier  categorizer.Classifier
	categorizer *categorizer.Categorizer
	pipeline    *pipeline.Pipeline

	closers []func() error
}

// NewContainer creates and wires all application dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	c := &Container{logger: logger, config: cfg}

	rules := categorizer.DefaultRules()
	if cfg.Rules.File != "" {
		loaded, err := categorizer.LoadRules(cfg.Rules.File)
		if err != nil {
			return nil, fmt.Errorf("load rule table: %w", err)
		}
		rules = loaded
		logger.Info("rule table loaded",
			logging.Field{Key: logging.FieldFile, Value: cfg.Rules.File},
			logging.Field{Key: logging.FieldCount, Value: len(rules)})
	}

	classifier, err := c.buildClassifier(ctx, rules)
	if err != nil {
		return nil, err
	}
	c.classifier = classifier

	cat := categorizer.NewCategorizer(rules, classifier, logger)
	cat.SetFallbackCategory(cfg.Classifier.FallbackCategory)
	if cfg.Classifier.TimeoutSeconds > 0 {
		cat.SetClassifierTimeout(time.Duration(cfg.Classifier.TimeoutSeconds) * time.Second)
	}
	c.categorizer = cat

	transactionStore, err := store.Open(cfg.Storage.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("open transaction store: %w", err)
	}
	c.store = transactionStore
	c.closers = append(c.closers, transactionStore.Close)

	c.pipeline = pipeline.New(normalize.New(normalize.FieldMap{}), cat, logger)

	return c, nil
}

func (c *Container) buildClassifier(ctx context.Context, rules []categorizer.Rule) (categorizer.Classifier, error) {
	if !c.config.Classifier.Enabled {
		c.logger.Info("external classification disabled")
		return nil, nil
	}

	switch c.config.Classifier.Provider {
	case "remote":
		c.logger.Info("external classification enabled",
			logging.Field{Key: logging.FieldProvider, Value: "remote"})
		return categorizer.NewRemoteClassifier(c.config.Classifier.Endpoint, c.logger), nil

	case "gemini":
		categories := make([]string, 0, len(rules)+1)
		for _, rule := range rules {
			categories = append(categories, rule.Category)
		}
		categories = append(categories, c.config.Classifier.FallbackCategory)

		gemini, err := categorizer.NewGeminiClassifier(
			ctx,
			c.config.Classifier.APIKey,
			c.config.Classifier.Model,
			categories,
			c.logger,
		)
		if err != nil {
			return nil, fmt.Errorf("create gemini classifier: %w", err)
		}
		c.closers = append(c.closers, gemini.Close)
		c.logger.Info("external classification enabled",
			logging.Field{Key: logging.FieldProvider, Value: "gemini"})
		return gemini, nil

	default:
		return nil, fmt.Errorf("unknown classifier provider %q", c.config.Classifier.Provider)
	}
}

// Logger returns the application logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Config returns the application configuration.
func (c *Container) Config() *config.Config { return c.config }

// Store returns the transaction store.
func (c *Container) Store() *store.TransactionStore { return c.store }

// Categorizer returns the category classifier.
func (c *Container) Categorizer() *categorizer.Categorizer { return c.categorizer }

// Pipeline returns the ingestion pipeline.
func (c *Container) Pipeline() *pipeline.Pipeline { return c.pipeline }

// Ingest runs the full upload path: raw rows through the pipeline, then an
// atomic replace of the stored transaction set. On any persistence failure
// the previous set remains intact.
func (c *Container) Ingest(ctx context.Context, rows []models.RawRow) ([]models.Transaction, error) {
	transactions := c.pipeline.Ingest(ctx, rows)
	if err := c.store.ReplaceAll(ctx, transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// Close releases all resources held by the container.
func (c *Container) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
