package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  string
		hasError  bool
	}{
		{"Simple decimal", "123.45", "123.45", false},
		{"Integer", "100", "100", false},
		{"One fraction digit", "99.5", "99.5", false},
		{"Thousands separators", "1,23,456.78", "123456.78", false},
		{"Rupee symbol", "₹1,250.00", "1250", false},
		{"Surrounding spaces", "  42.10 ", "42.1", false},
		{"Negative", "-123.45", "", true},
		{"Three fraction digits", "1.234", "", true},
		{"Malformed decimal", "123.45.67", "", true},
		{"Non-numeric", "abc", "", true},
		{"Empty", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseAmount(tc.amountStr)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			expected := decimal.RequireFromString(tc.expected)
			assert.True(t, expected.Equal(result), "expected %s but got %s", expected.String(), result.String())
		})
	}
}

func TestStripHelpers(t *testing.T) {
	assert.Equal(t, "Paid 1,250.00", StripCurrencySymbols("Paid ₹1,250.00"))
	assert.Equal(t, "no symbols", StripCurrencySymbols("no symbols"))
	assert.Equal(t, "1250.00", StripThousandsSeparators("1,250.00"))
	assert.Equal(t, "100000", StripThousandsSeparators("1,00,000"))
}
