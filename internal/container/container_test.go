package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"askbudget/budget-buddy/internal/categorizer"
	"askbudget/budget-buddy/internal/config"
	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/models"
	"askbudget/budget-buddy/internal/pdfparser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Data.Directory = t.TempDir()
	return cfg
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      func(t *testing.T) *config.Config
		expectError bool
		wantService bool
	}{
		{
			name:        "nil config",
			config:      func(t *testing.T) *config.Config { return nil },
			expectError: true,
		},
		{
			name:   "AI disabled",
			config: testConfig,
		},
		{
			name: "AI enabled without key",
			config: func(t *testing.T) *config.Config {
				cfg := testConfig(t)
				cfg.AI.Enabled = true
				cfg.AI.APIKey = ""
				return cfg
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(context.Background(), tt.config(t), WithLogger(logging.NewMockLogger()))
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)

			assert.NotNil(t, c.GetLogger())
			assert.NotNil(t, c.GetConfig())
			assert.NotNil(t, c.GetParser())
			assert.NotNil(t, c.GetResolver())
			assert.NotNil(t, c.GetCacheStore())
			assert.NotNil(t, c.GetMappingsStore())
			assert.Equal(t, tt.wantService, c.GetClassificationService() != nil)
			assert.NoError(t, c.Close())
		})
	}
}

func TestContainer_InjectedService(t *testing.T) {
	service := categorizer.NewMockClassificationService("travel")
	c, err := NewContainer(context.Background(), testConfig(t),
		WithLogger(logging.NewMockLogger()),
		WithClassificationService(service))
	require.NoError(t, err)

	assert.Same(t, service, c.GetClassificationService())

	tx := models.Transaction{Description: "Some Cab Co", TxnType: models.TxnTypeDebit}
	assert.Equal(t, "travel", c.GetResolver().ResolveCategory(context.Background(), tx))
	assert.Equal(t, 1, service.CallCount())
}

func TestContainer_StoresUseDataDirectory(t *testing.T) {
	cfg := testConfig(t)
	c, err := NewContainer(context.Background(), cfg, WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)

	require.NoError(t, c.GetResolver().SetOverride("Landlord Transfer", "rent"))
	tx := models.Transaction{Description: "Swiggy", TxnType: models.TxnTypeDebit}
	assert.Equal(t, "food", c.GetResolver().ResolveCategory(context.Background(), tx))

	_, err = os.Stat(filepath.Join(cfg.Data.Directory, "category_mappings.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(cfg.Data.Directory, "category_cache.json"))
	assert.NoError(t, err)
}

func TestContainer_InjectedTextExtractor(t *testing.T) {
	text := "Apr 05, 2024\n10:12 am\nDEBIT\n₹1,250.00\nPaid to Swiggy\n"
	extractor := pdfparser.NewMockPDFExtractor(text, nil)
	c, err := NewContainer(context.Background(), testConfig(t),
		WithLogger(logging.NewMockLogger()),
		WithTextExtractor(extractor))
	require.NoError(t, err)

	txs, err := c.GetParser().Parse(context.Background(), []byte("%PDF"), "phonepe")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "2024-04-05", txs[0].Date)
	assert.Equal(t, 1, extractor.CallCount())
}

func TestNewContainer_AIEnabledWithoutKeyFallsBackToRules(t *testing.T) {
	cfg := testConfig(t)
	cfg.AI.Enabled = true
	cfg.AI.APIKey = ""
	logger := logging.NewMockLogger()

	c, err := NewContainer(context.Background(), cfg, WithLogger(logger))
	require.NoError(t, err)

	assert.Nil(t, c.GetClassificationService())
	assert.True(t, logger.HasEntry("WARN", "AI categorization enabled but no API key set, using keyword rules only"))
	assert.NoError(t, c.Close())
}
