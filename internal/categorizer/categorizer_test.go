package categorizer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"minibank/statement-analyzer/internal/logging"
	"minibank/statement-analyzer/internal/models"
)

// stubClassifier is a controllable Classifier for tests.
type stubClassifier struct {
	category string
	err      error
	delay    time.Duration
	calls    int
}

func (s *stubClassifier) Classify(ctx context.Context, description string) (string, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.category, s.err
}

func TestCategorizeRuleTable(t *testing.T) {
	c := NewCategorizer(DefaultRules(), nil, &logging.MockLogger{})
	ctx := context.Background()

	tests := []struct {
		description string
		want        string
	}{
		{"Monthly Salary Credit", models.CategoryIncome},
		{"BONUS payout Q4", models.CategoryIncome},
		{"Home loan EMI March", models.CategoryEMI},
		{"Utility payment received", models.CategoryEMI},
		{"Grocery Store Purchase", models.CategoryGroceries},
		{"weekly groceries run", models.CategoryGroceries},
		{"Dining out with friends", models.CategoryEntertainment},
		{"PIZZA PALACE 42", models.CategoryEntertainment},
		{"Electricity board", models.CategoryBills},
		{"annual maintenance fee", models.CategoryBills},
		{"ATM Withdrawal Main St", models.CategoryATMWithdrawal},
		{"Unrecognized Vendor XYZ", models.CategoryMiscellaneous},
		{"", models.CategoryMiscellaneous},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Categorize(ctx, tc.description))
		})
	}
}

func TestCategorizeRulePrecedence(t *testing.T) {
	c := NewCategorizer(DefaultRules(), nil, &logging.MockLogger{})

	// "salary" (rule 1) must shadow "loan" (rule 2)
	assert.Equal(t, models.CategoryIncome,
		c.Categorize(context.Background(), "salary used to repay loan"))

	// "store" (rule 3) must shadow "bill" (rule 5)
	assert.Equal(t, models.CategoryGroceries,
		c.Categorize(context.Background(), "store bill"))
}

func TestCategorizeIsTotal(t *testing.T) {
	c := NewCategorizer(nil, nil, &logging.MockLogger{})

	for _, description := range []string{"", "   ", "no keywords here", "ünïcodé"} {
		got := c.Categorize(context.Background(), description)
		assert.NotEmpty(t, got)
		assert.Equal(t, models.CategoryMiscellaneous, got)
	}
}

func TestCategorizeInjectedRules(t *testing.T) {
	rules := []Rule{
		{Keywords: []string{"fuel", "petrol"}, Category: "Transport"},
		{Keywords: []string{"salary"}, Category: "Wages"},
	}
	c := NewCategorizer(rules, nil, &logging.MockLogger{})

	assert.Equal(t, "Transport", c.Categorize(context.Background(), "Petrol pump"))
	assert.Equal(t, "Wages", c.Categorize(context.Background(), "salary credit"))
	// Default table is not consulted when an explicit one is injected
	assert.Equal(t, models.CategoryMiscellaneous,
		c.Categorize(context.Background(), "grocery store"))
}

func TestCategorizeClassifierConsultedOnlyWhenNoRuleMatches(t *testing.T) {
	stub := &stubClassifier{category: "Travel"}
	c := NewCategorizer(DefaultRules(), stub, &logging.MockLogger{})

	assert.Equal(t, models.CategoryIncome,
		c.Categorize(context.Background(), "Monthly Salary Credit"))
	assert.Zero(t, stub.calls)

	assert.Equal(t, "Travel",
		c.Categorize(context.Background(), "IRCTC ticket booking"))
	assert.Equal(t, 1, stub.calls)
}

func TestCategorizeClassifierFailureFallsBack(t *testing.T) {
	stub := &stubClassifier{err: errors.New("service down")}
	c := NewCategorizer(DefaultRules(), stub, &logging.MockLogger{})

	assert.Equal(t, models.CategoryMiscellaneous,
		c.Categorize(context.Background(), "Unrecognized Vendor XYZ"))
}

func TestCategorizeClassifierEmptyResultFallsBack(t *testing.T) {
	stub := &stubClassifier{category: "   "}
	c := NewCategorizer(DefaultRules(), stub, &logging.MockLogger{})

	assert.Equal(t, models.CategoryMiscellaneous,
		c.Categorize(context.Background(), "Unrecognized Vendor XYZ"))
}

func TestCategorizeClassifierTimeoutFallsBack(t *testing.T) {
	stub := &stubClassifier{category: "Travel", delay: 500 * time.Millisecond}
	c := NewCategorizer(DefaultRules(), stub, &logging.MockLogger{})
	c.SetClassifierTimeout(10 * time.Millisecond)

	start := time.Now()
	got := c.Categorize(context.Background(), "Unrecognized Vendor XYZ")
	assert.Equal(t, models.CategoryMiscellaneous, got)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestCategorizeEmptyDescriptionSkipsClassifier(t *testing.T) {
	stub := &stubClassifier{category: "Travel"}
	c := NewCategorizer(DefaultRules(), stub, &logging.MockLogger{})

	assert.Equal(t, models.CategoryMiscellaneous, c.Categorize(context.Background(), ""))
	assert.Zero(t, stub.calls)
}

func TestSetFallbackCategory(t *testing.T) {
	c := NewCategorizer(DefaultRules(), nil, &logging.MockLogger{})
	c.SetFallbackCategory("Other")
	assert.Equal(t, "Other", c.Categorize(context.Background(), "Unrecognized Vendor XYZ"))

	// Empty override is ignored, categorization stays total
	c.SetFallbackCategory("")
	assert.Equal(t, "Other", c.Categorize(context.Background(), "Unrecognized Vendor XYZ"))
}
