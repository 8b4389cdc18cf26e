package categorizer

import (
	"fmt"
	"strings"
)

// StrategyResult records one strategy attempt.
type StrategyResult struct {
	Strategy string
	Category string
	Found    bool
	Error    error
}

// StrategyResults aggregates the attempts made for one transaction.
type StrategyResults struct {
	Results []StrategyResult
}

// Add appends an attempt.
func (sr *StrategyResults) Add(strategy, category string, found bool, err error) {
	sr.Results = append(sr.Results, StrategyResult{
		Strategy: strategy,
		Category: category,
		Found:    found,
		Error:    err,
	})
}

// GetBestResult returns the first successful result.
func (sr StrategyResults) GetBestResult() (StrategyResult, bool) {
	for _, r := range sr.Results {
		if r.Found && r.Error == nil {
			return r, true
		}
	}
	return StrategyResult{}, false
}

// GetErrors returns all errors encountered during strategy execution
func (sr StrategyResults) GetErrors() []error {
	var errs []error
	for _, result := range sr.Results {
		if result.Error != nil {
			errs = append(errs, fmt.Errorf("%s strategy: %w", result.Strategy, result.Error))
		}
	}
	return errs
}

// Summary renders the attempts as "Override:no_match, Cache:success".
func (sr StrategyResults) Summary() string {
	parts := make([]string, 0, len(sr.Results))
	for _, result := range sr.Results {
		status := "failed"
		if result.Found {
			status = "success"
		} else if result.Error == nil {
			status = "no_match"
		}
		parts = append(parts, fmt.Sprintf("%s:%s", result.Strategy, status))
	}
	return strings.Join(parts, ", ")
}
