// Package sbiparser extracts UPI transfers from State Bank of India statement text.
package sbiparser

import (
	"regexp"
	"strings"

	"askbudget/budget-buddy/internal/currencyutils"
	"askbudget/budget-buddy/internal/dateutils"
	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/models"
	"askbudget/budget-buddy/internal/parser"
)

var (
	// debit: "<amount> -" / date / TRANSFER TO ... UPI/DR/... / balance
	debitPattern = regexp.MustCompile(`(?s)(?:^|\n)(?P<amount>\d+\.\d{2})\s*-\s*\n(?P<date>\d{2} \w{3} \d{4})\n` +
		`(?P<description>TRANSFER TO .*?UPI/DR/[^\n]+.*?)\n(?P<balance>\d+\.\d{2})`)

	// credit: "-" / amount / date / TRANSFER FROM ... UPI/CR/... / balance
	creditPattern = regexp.MustCompile(`(?s)(?:^|\n)-\s*\n(?P<amount>\d+\.\d{2})\n(?P<date>\d{2} \w{3} \d{4})\n` +
		`(?P<description>TRANSFER FROM .*?UPI/CR/[^\n]+.*?)\n(?P<balance>\d+\.\d{2})`)

	// counterparty follows the numeric UPI reference
	counterpartyPattern = regexp.MustCompile(`UPI/(?:CR|DR)/\d+/([\w\s\.]+)`)
)

// Extractor implements parser.Extractor for SBI account statements.
type Extractor struct {
	parser.BaseParser
}

// NewExtractor creates an SBI extractor.
func NewExtractor(logger logging.Logger) *Extractor {
	return &Extractor{
		BaseParser: parser.NewBaseParser("SBI", logger),
	}
}

// Source implements parser.Extractor.
func (e *Extractor) Source() models.Source {
	return models.SourceSBI
}

// Extract implements parser.Extractor. All debit entries come first, then all
// credit entries, each group in document order.
func (e *Extractor) Extract(text string) []models.Transaction {
	text = parser.NormalizeLineEndings(text)
	text = currencyutils.StripThousandsSeparators(currencyutils.StripCurrencySymbols(text))
	text = strings.TrimSpace(text)

	debits := e.extractWith(debitPattern, text, models.TxnTypeDebit)
	credits := e.extractWith(creditPattern, text, models.TxnTypeCredit)

	transactions := make([]models.Transaction, 0, len(debits)+len(credits))
	transactions = append(transactions, debits...)
	transactions = append(transactions, credits...)

	e.GetLogger().Info("Extracted SBI transactions",
		logging.Field{Key: logging.FieldParser, Value: e.Name()},
		logging.Field{Key: "debits", Value: len(debits)},
		logging.Field{Key: "credits", Value: len(credits)},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return transactions
}

func (e *Extractor) extractWith(pattern *regexp.Regexp, text string, txnType models.TxnType) []models.Transaction {
	amountIdx := pattern.SubexpIndex("amount")
	dateIdx := pattern.SubexpIndex("date")
	descIdx := pattern.SubexpIndex("description")

	var transactions []models.Transaction
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		date, err := dateutils.NormalizeDayMonthYear(m[dateIdx])
		if err != nil {
			e.SkipMatch("date", m[dateIdx], err)
			continue
		}
		amount, err := currencyutils.ParseAmount(m[amountIdx])
		if err != nil {
			e.SkipMatch("amount", m[amountIdx], err)
			continue
		}
		transactions = append(transactions, models.NewTransaction(date, ExtractCounterparty(m[descIdx]), amount, txnType))
	}
	return transactions
}

// ExtractCounterparty reduces a transfer narration to the counterparty name
// that follows the UPI reference. The narration is returned unchanged when no
// UPI segment is found.
func ExtractCounterparty(description string) string {
	m := counterpartyPattern.FindStringSubmatch(description)
	if m == nil {
		return description
	}
	return strings.TrimSpace(m[1])
}
