package categorizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyResults(t *testing.T) {
	var results StrategyResults
	results.Add(StrategyOverride, "", false, nil)
	results.Add(StrategyCache, "", false, errors.New("unreadable"))
	results.Add(StrategyRule, "food", true, nil)

	best, ok := results.GetBestResult()
	require.True(t, ok)
	assert.Equal(t, StrategyRule, best.Strategy)
	assert.Equal(t, "food", best.Category)

	errs := results.GetErrors()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Cache strategy: unreadable")

	assert.Equal(t, "Override:no_match, Cache:failed, Rule:success", results.Summary())
}

func TestStrategyResults_Empty(t *testing.T) {
	var results StrategyResults

	_, ok := results.GetBestResult()
	assert.False(t, ok)
	assert.Empty(t, results.GetErrors())
	assert.Equal(t, "", results.Summary())
}
