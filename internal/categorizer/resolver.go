// Package categorizer assigns a spending category to each transaction by
// consulting, in order, user overrides, the category cache, the remote
// classification service and the keyword rules.
package categorizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/models"
	"askbudget/budget-buddy/internal/store"
)

// Resolver runs the categorization layers for each transaction.
type Resolver struct {
	mappings   store.MappingStore
	strategies []CategorizationStrategy
	logger     logging.Logger
}

// NewResolver wires the four layers. service may be nil, in which case the
// AI layer always declines and the keyword rules answer.
func NewResolver(mappings, cache store.MappingStore, service ClassificationService, timeout time.Duration, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	return &Resolver{
		mappings: mappings,
		strategies: []CategorizationStrategy{
			NewOverrideStrategy(mappings, logger),
			NewCacheStrategy(cache, logger),
			NewAIStrategy(service, cache, timeout, logger),
			NewRuleStrategy(cache, logger),
		},
		logger: logger,
	}
}

// ResolveCategory returns the category for tx. The result is never empty.
func (r *Resolver) ResolveCategory(ctx context.Context, tx models.Transaction) string {
	var results StrategyResults

	for _, strategy := range r.strategies {
		category, found, err := strategy.Categorize(ctx, tx)
		found = found && err == nil && strings.TrimSpace(category) != ""
		results.Add(strategy.Name(), category, found, err)
		if found {
			break
		}
	}

	log := r.logger.WithField(logging.FieldDescription, tx.Description)
	if errs := results.GetErrors(); len(errs) > 0 {
		log.WithError(errors.Join(errs...)).Debug("Categorization layers failed",
			logging.Field{Key: logging.FieldStrategy, Value: results.Summary()})
	}

	best, ok := results.GetBestResult()
	if !ok {
		// Only reachable if the rule layer was removed from the pipeline.
		return string(RuleBasedCategory(tx.Description))
	}

	log.Debug("Resolved category",
		logging.Field{Key: logging.FieldCategory, Value: best.Category},
		logging.Field{Key: logging.FieldStrategy, Value: results.Summary()})
	return best.Category
}

// ResolveBatch fills in the Category of every transaction, in place and in
// order, and returns the same slice.
func (r *Resolver) ResolveBatch(ctx context.Context, transactions []models.Transaction) []models.Transaction {
	start := time.Now()
	for i := range transactions {
		transactions[i].Category = r.ResolveCategory(ctx, transactions[i])
	}

	r.logger.Info("Categorized transactions",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
	return transactions
}

// SetOverride records a user-chosen category for a vendor description.
// Later resolutions of exactly that description return the override.
func (r *Resolver) SetOverride(vendor, category string) error {
	vendor = strings.TrimSpace(vendor)
	label := models.NormalizeLabel(category)
	if vendor == "" {
		return fmt.Errorf("vendor must not be empty")
	}
	if label == "" {
		return fmt.Errorf("category must not be empty")
	}
	if r.mappings == nil {
		return fmt.Errorf("no mapping store configured")
	}

	if err := r.mappings.Set(vendor, label); err != nil {
		return fmt.Errorf("failed to save override for %q: %w", vendor, err)
	}

	r.logger.Info("Saved category override",
		logging.Field{Key: logging.FieldDescription, Value: vendor},
		logging.Field{Key: logging.FieldCategory, Value: label})
	return nil
}

// GetOverride returns the user override for vendor, if any.
func (r *Resolver) GetOverride(vendor string) (string, bool) {
	vendor = strings.TrimSpace(vendor)
	if r.mappings == nil || vendor == "" {
		return "", false
	}
	label, found, err := r.mappings.Get(vendor)
	if err != nil {
		r.logger.WithError(err).Warn("Failed to read category override",
			logging.Field{Key: logging.FieldDescription, Value: vendor})
		return "", false
	}
	if !found || strings.TrimSpace(label) == "" {
		return "", false
	}
	return label, true
}

// Overrides returns every stored user override.
func (r *Resolver) Overrides() (map[string]string, error) {
	if r.mappings == nil {
		return map[string]string{}, nil
	}
	return r.mappings.All()
}
