// Package phonepeparser extracts transactions from PhonePe statement text.
package phonepeparser

import (
	"regexp"
	"strings"

	"askbudget/budget-buddy/internal/currencyutils"
	"askbudget/budget-buddy/internal/dateutils"
	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/models"
	"askbudget/budget-buddy/internal/parser"
)

// A PhonePe entry spans five lines:
//
//	Apr 05, 2024
//	09:12 pm
//	DEBIT
//	1,250.00
//	Paid to Swiggy Bangalore
var entryPattern = regexp.MustCompile(
	`((?:Apr|Mar|Feb|Jan|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) \d{2}, \d{4})\n` + // date
		`.*\n` + // time, ignored
		`(CREDIT|DEBIT)\n` +
		`([\d,]+(?:\.\d{2})?)\n` +
		`(Paid to|Received from) (.+)`)

// Extractor implements parser.Extractor for PhonePe statements.
type Extractor struct {
	parser.BaseParser
}

// NewExtractor creates a PhonePe extractor.
func NewExtractor(logger logging.Logger) *Extractor {
	return &Extractor{
		BaseParser: parser.NewBaseParser("PhonePe", logger),
	}
}

// Source implements parser.Extractor.
func (e *Extractor) Source() models.Source {
	return models.SourcePhonePe
}

// Extract implements parser.Extractor. Entries are returned in document order.
func (e *Extractor) Extract(text string) []models.Transaction {
	text = parser.NormalizeLineEndings(text)
	text = strings.TrimSpace(currencyutils.StripCurrencySymbols(text))

	matches := entryPattern.FindAllStringSubmatch(text, -1)
	transactions := make([]models.Transaction, 0, len(matches))

	for _, m := range matches {
		dateText, txnType, amountText, description := m[1], m[2], m[3], m[5]

		date, err := dateutils.NormalizeMonthDayYear(dateText)
		if err != nil {
			e.SkipMatch("date", dateText, err)
			continue
		}
		amount, err := currencyutils.ParseAmount(amountText)
		if err != nil {
			e.SkipMatch("amount", amountText, err)
			continue
		}

		transactions = append(transactions, models.NewTransaction(
			date,
			strings.TrimSpace(description),
			amount,
			models.TxnType(txnType),
		))
	}

	e.GetLogger().Info("Extracted PhonePe transactions",
		logging.Field{Key: logging.FieldParser, Value: e.Name()},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return transactions
}
