package categorizer

import (
	"context"
	"strings"

	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/models"
	"askbudget/budget-buddy/internal/store"
)

// LookupStrategy answers from a mapping store keyed by the trimmed description.
// It backs both the user override layer and the cache layer.
type LookupStrategy struct {
	name   string
	store  store.MappingStore
	logger logging.Logger
}

// NewOverrideStrategy looks descriptions up in the user mapping store.
func NewOverrideStrategy(mappings store.MappingStore, logger logging.Logger) *LookupStrategy {
	return &LookupStrategy{name: StrategyOverride, store: mappings, logger: logger}
}

// NewCacheStrategy looks descriptions up in the category cache.
func NewCacheStrategy(cache store.MappingStore, logger logging.Logger) *LookupStrategy {
	return &LookupStrategy{name: StrategyCache, store: cache, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *LookupStrategy) Name() string {
	return s.name
}

// Categorize implements CategorizationStrategy.
func (s *LookupStrategy) Categorize(ctx context.Context, tx models.Transaction) (string, bool, error) {
	if s.store == nil {
		return "", false, nil
	}
	key := strings.TrimSpace(tx.Description)
	if key == "" {
		return "", false, nil
	}

	label, found, err := s.store.Get(key)
	if err != nil {
		return "", false, err
	}
	label = strings.TrimSpace(label)
	if !found || label == "" {
		return "", false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.name},
		logging.Field{Key: logging.FieldDescription, Value: key},
		logging.Field{Key: logging.FieldCategory, Value: label},
	).Debug("Transaction categorized from stored mapping")

	return label, true, nil
}
