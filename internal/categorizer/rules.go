package categorizer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"minibank/statement-analyzer/internal/models"
)

// DefaultRules returns the built-in rule cascade. The order is significant:
// earlier rules shadow later ones, so "Salary Credit" classifies as Income
// even though "credit" alone would also be an Income trigger.
func DefaultRules() []Rule {
	return []Rule{
		{Keywords: []string{"salary", "credit", "bonus"}, Category: models.CategoryIncome},
		{Keywords: []string{"emi", "loan", "payment"}, Category: models.CategoryEMI},
		{Keywords: []string{"grocery", "groceries", "store"}, Category: models.CategoryGroceries},
		{Keywords: []string{"dining", "restaurant", "pizza"}, Category: models.CategoryEntertainment},
		{Keywords: []string{"electricity", "bill", "fee"}, Category: models.CategoryBills},
		{Keywords: []string{"atm withdrawal"}, Category: models.CategoryATMWithdrawal},
	}
}

// rulesFile is the YAML shape of a rule table on disk:
//
//	categories:
//	  - category: Income
//	    keywords: [salary, credit, bonus]
type rulesFile struct {
	Categories []Rule `yaml:"categories"`
}

// LoadRules reads an ordered rule table from a YAML file. Rules without a
// category or without keywords are rejected rather than silently skipped,
// so a typo in the file cannot quietly disable a rule.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read rules file %s: %w", path, err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("could not parse rules file %s: %w", path, err)
	}

	for i, rule := range file.Categories {
		if rule.Category == "" {
			return nil, fmt.Errorf("rules file %s: rule %d has no category", path, i+1)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("rules file %s: rule %d (%s) has no keywords", path, i+1, rule.Category)
		}
	}

	return file.Categories, nil
}
