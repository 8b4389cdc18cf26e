package phonepeparser

import (
	"strings"
	"testing"

	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/models"
	"askbudget/budget-buddy/internal/parser"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStatement = `Transaction Statement for 98XXXXXX10
Apr 01, 2024 - Apr 30, 2024
Date Transaction Details Type Amount
Apr 05, 2024
09:12 pm
DEBIT
₹1,250.00
Paid to Swiggy Bangalore
Transaction ID T2404052112
Apr 07, 2024
10:01 am
CREDIT
₹50,000
Received from Employer Payroll Ltd
Transaction ID T2404071001
Apr 09, 2024
06:45 pm
DEBIT
₹199
Paid to   Netflix   
Page 1 of 1`

func TestExtractor_Source(t *testing.T) {
	var e parser.Extractor = NewExtractor(logging.NewMockLogger())
	assert.Equal(t, models.SourcePhonePe, e.Source())
}

func TestExtractor_Extract(t *testing.T) {
	e := NewExtractor(logging.NewMockLogger())

	txs := e.Extract(sampleStatement)
	require.Len(t, txs, 3)

	expected := []struct {
		date        string
		description string
		amount      string
		txnType     models.TxnType
	}{
		{"2024-04-05", "Swiggy Bangalore", "1250.00", models.TxnTypeDebit},
		{"2024-04-07", "Employer Payroll Ltd", "50000", models.TxnTypeCredit},
		{"2024-04-09", "Netflix", "199", models.TxnTypeDebit},
	}

	for i, want := range expected {
		assert.Equal(t, want.date, txs[i].Date)
		assert.Equal(t, want.description, txs[i].Description)
		assert.True(t, decimal.RequireFromString(want.amount).Equal(txs[i].Amount), "amount %d: %s", i, txs[i].Amount)
		assert.Equal(t, want.txnType, txs[i].TxnType)
		assert.Empty(t, txs[i].Category)
		assert.NoError(t, txs[i].Validate())
	}
}

func TestExtractor_DateNormalization(t *testing.T) {
	e := NewExtractor(logging.NewMockLogger())

	txs := e.Extract("Apr 05, 2024\n08:00 am\nDEBIT\n100.00\nPaid to Ola")
	require.Len(t, txs, 1)
	assert.Equal(t, "2024-04-05", txs[0].Date)
}

func TestExtractor_WindowsLineEndings(t *testing.T) {
	e := NewExtractor(logging.NewMockLogger())

	text := strings.ReplaceAll(sampleStatement, "\n", "\r\n")
	assert.Len(t, e.Extract(text), 3)
}

func TestExtractor_NoMatches(t *testing.T) {
	e := NewExtractor(logging.NewMockLogger())

	tests := []struct {
		name string
		text string
	}{
		{"empty text", ""},
		{"unrelated text", "Hello world\nnothing to see"},
		{"missing direction phrase", "Apr 05, 2024\n09:12 pm\nDEBIT\n100\nTransfer Swiggy"},
		{"unknown type", "Apr 05, 2024\n09:12 pm\nREFUND\n100\nPaid to Swiggy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs := e.Extract(tt.text)
			assert.NotNil(t, txs)
			assert.Empty(t, txs)
		})
	}
}

func TestExtractor_SkipsImpossibleDate(t *testing.T) {
	mockLog := logging.NewMockLogger()
	e := NewExtractor(mockLog)

	text := "Feb 30, 2024\n09:12 pm\nDEBIT\n100\nPaid to Zomato\n" +
		"Mar 01, 2024\n09:12 pm\nDEBIT\n200\nPaid to Amazon"

	txs := e.Extract(text)
	require.Len(t, txs, 1)
	assert.Equal(t, "2024-03-01", txs[0].Date)
	assert.Len(t, mockLog.GetEntriesByLevel("WARN"), 1)
}

// Formatting a record back into statement lines and extracting it again
// must reproduce the record.
func TestExtractor_RoundTrip(t *testing.T) {
	e := NewExtractor(logging.NewMockLogger())

	records := []models.Transaction{
		models.NewTransaction("2024-01-15", "Zomato Online", decimal.RequireFromString("349.50"), models.TxnTypeDebit),
		models.NewTransaction("2023-12-31", "Rahul Sharma", decimal.RequireFromString("12000"), models.TxnTypeCredit),
	}

	var b strings.Builder
	for _, r := range records {
		b.WriteString(formatEntry(t, r))
	}

	got := e.Extract(b.String())
	require.Len(t, got, len(records))
	for i := range records {
		assert.Equal(t, records[i].Date, got[i].Date)
		assert.Equal(t, records[i].Description, got[i].Description)
		assert.True(t, records[i].Amount.Equal(got[i].Amount))
		assert.Equal(t, records[i].TxnType, got[i].TxnType)
	}
}

func formatEntry(t *testing.T, tx models.Transaction) string {
	t.Helper()
	d, err := tx.ParsedDate()
	require.NoError(t, err)

	direction := "Paid to"
	if tx.IsCredit() {
		direction = "Received from"
	}
	return d.Format("Jan 02, 2006") + "\n" +
		"11:30 am\n" +
		string(tx.TxnType) + "\n" +
		"₹" + tx.Amount.StringFixed(2) + "\n" +
		direction + " " + tx.Description + "\n"
}
