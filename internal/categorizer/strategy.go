package categorizer

import (
	"context"

	"askbudget/budget-buddy/internal/models"
)

// CategorizationStrategy is one layer of the resolution pipeline.
type CategorizationStrategy interface {
	// Categorize returns the label for tx and true, or false when this layer
	// has no answer. An error also counts as no answer; the pipeline moves on.
	Categorize(ctx context.Context, tx models.Transaction) (string, bool, error)

	// Name returns the name of this strategy for logging and debugging purposes.
	Name() string
}

// Strategy names
const (
	StrategyOverride = "Override"
	StrategyCache    = "Cache"
	StrategyAI       = "AI"
	StrategyRule     = "Rule"
)
