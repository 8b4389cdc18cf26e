// Package currencyutils cleans the amount text printed on statements and
// converts it to decimal values.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// RupeeSymbol is removed from statement text before pattern matching.
const RupeeSymbol = "₹"

// ThousandsSeparator is the grouping character used by Indian statements.
const ThousandsSeparator = ","

var amountRe = regexp.MustCompile(`^\d+(?:\.\d{1,2})?$`)

// StripCurrencySymbols removes every rupee symbol from text.
func StripCurrencySymbols(text string) string {
	return strings.ReplaceAll(text, RupeeSymbol, "")
}

// StripThousandsSeparators removes every grouping comma from text.
func StripThousandsSeparators(text string) string {
	return strings.ReplaceAll(text, ThousandsSeparator, "")
}

// ParseAmount converts a printed amount such as "1,250.50" into a decimal.
// The result is non-negative with at most two fraction digits; anything else is an error.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(StripThousandsSeparators(StripCurrencySymbols(amountStr)))
	if !amountRe.MatchString(cleaned) {
		return decimal.Zero, fmt.Errorf("invalid amount '%s'", amountStr)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}
