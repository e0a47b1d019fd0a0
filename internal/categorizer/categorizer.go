// Package categorizer assigns a spending/income category to a transaction
// description using two methods:
//  1. An ordered, case-insensitive keyword rule cascade (first match wins)
//  2. An optional external classifier consulted only when no rule matches
//
// Categorization is total: it always yields a non-empty category, falling
// back to a configurable default when neither method produces one.
package categorizer

import (
	"context"
	"strings"
	"time"

	"minibank/statement-analyzer/internal/logging"
	"minibank/statement-analyzer/internal/models"
	"minibank/statement-analyzer/internal/textutils"
)

// DefaultClassifierTimeout bounds a single external classification call.
const DefaultClassifierTimeout = 5 * time.Second

// Rule maps a set of keyword triggers to a category. A description matches
// when it contains any keyword as a case-insensitive substring.
type Rule struct {
	Keywords []string `yaml:"keywords"`
	Category string   `yaml:"category"`
}

// Categorizer evaluates the rule cascade and, when configured, delegates
// unmatched descriptions to an external classifier.
type Categorizer struct {
	rules      []Rule
	classifier Classifier
	fallback   string
	timeout    time.Duration
	logger     logging.Logger
}

// NewCategorizer creates a Categorizer with an explicit, ordered rule list.
// classifier may be nil, in which case unmatched descriptions resolve
// directly to the fallback category.
func NewCategorizer(rules []Rule, classifier Classifier, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Categorizer{
		rules:      rules,
		classifier: classifier,
		fallback:   models.CategoryMiscellaneous,
		timeout:    DefaultClassifierTimeout,
		logger:     logger,
	}
}

// SetFallbackCategory overrides the category returned when nothing matches.
// Empty values are ignored so the categorizer stays total.
func (c *Categorizer) SetFallbackCategory(category string) {
	if category != "" {
		c.fallback = category
	}
}

// SetClassifierTimeout overrides the per-call external classifier timeout.
func (c *Categorizer) SetClassifierTimeout(timeout time.Duration) {
	if timeout > 0 {
		c.timeout = timeout
	}
}

// Categorize returns the category for a transaction description. It never
// fails and never returns an empty string: classifier errors and timeouts
// are absorbed and resolve to the fallback category.
func (c *Categorizer) Categorize(ctx context.Context, description string) string {
	if category, found := c.matchRules(description); found {
		return category
	}

	if c.classifier == nil || strings.TrimSpace(description) == "" {
		return c.fallback
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	category, err := c.classifier.Classify(callCtx, description)
	if err != nil {
		c.logger.WithError(err).Debug("external classification failed, using fallback",
			logging.Field{Key: logging.FieldCategory, Value: c.fallback})
		return c.fallback
	}
	if strings.TrimSpace(category) == "" {
		return c.fallback
	}
	return category
}

// matchRules walks the cascade in order and returns the first match.
func (c *Categorizer) matchRules(description string) (string, bool) {
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if textutils.ContainsFold(description, keyword) {
				return rule.Category, true
			}
		}
	}
	return "", false
}
