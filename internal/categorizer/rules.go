package categorizer

import (
	"context"
	"strings"

	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/models"
	"askbudget/budget-buddy/internal/store"
)

// Rule maps a category to the keyword substrings that select it.
type Rule struct {
	Category models.Category
	Keywords []string
}

// rules is evaluated top to bottom; the first rule with a matching keyword wins.
var rules = []Rule{
	{models.CategoryFood, []string{"swiggy", "zomato", "dominos", "ubereats"}},
	{models.CategoryRent, []string{"rent", "landlord", "flat"}},
	{models.CategoryShopping, []string{"amazon", "flipkart", "myntra"}},
	{models.CategoryTravel, []string{"ola", "uber", "irctc", "makemytrip"}},
	{models.CategoryUtilities, []string{"electricity", "water", "gas", "bbps"}},
	{models.CategorySubscriptions, []string{"netflix", "prime", "spotify", "hotstar"}},
	{models.CategorySalary, []string{"salary", "credited", "payroll"}},
}

// RuleBasedCategory classifies a description by keyword substring. It is
// pure and always returns a label, "other" when nothing matches.
func RuleBasedCategory(description string) models.Category {
	d := strings.ToLower(description)
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(d, kw) {
				return r.Category
			}
		}
	}
	return models.CategoryOther
}

// RuleStrategy is the last layer of the pipeline and never declines.
// Its answer is written to the cache so later lookups stop at the cache layer.
type RuleStrategy struct {
	cache  store.MappingStore
	logger logging.Logger
}

// NewRuleStrategy creates a RuleStrategy. cache may be nil.
func NewRuleStrategy(cache store.MappingStore, logger logging.Logger) *RuleStrategy {
	return &RuleStrategy{cache: cache, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *RuleStrategy) Name() string {
	return StrategyRule
}

// Categorize implements CategorizationStrategy.
func (s *RuleStrategy) Categorize(ctx context.Context, tx models.Transaction) (string, bool, error) {
	category := string(RuleBasedCategory(tx.Description))

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldDescription, Value: tx.Description},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Debug("Transaction categorized using keyword rules")

	cacheResult(s.cache, s.logger, s.Name(), tx.Description, category)
	return category, true, nil
}

// cacheResult stores a computed label. A failed write only costs a repeat
// computation later, so it is logged and otherwise ignored.
func cacheResult(cache store.MappingStore, logger logging.Logger, strategy, description, category string) {
	if cache == nil || strings.TrimSpace(description) == "" {
		return
	}
	if err := cache.Set(description, category); err != nil {
		logger.WithError(err).Warn("Failed to cache category",
			logging.Field{Key: logging.FieldStrategy, Value: strategy},
			logging.Field{Key: logging.FieldDescription, Value: description})
	}
}
