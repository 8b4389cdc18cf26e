package statement

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/models"
	"askbudget/budget-buddy/internal/parsererror"
	"askbudget/budget-buddy/internal/pdfparser"
	"askbudget/budget-buddy/internal/pdfparser/pdftest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phonePeText = "Apr 05, 2024\n09:12 pm\nDEBIT\n₹1,250.00\nPaid to Swiggy Bangalore\n"

const sbiText = "500.00 -\n02 Apr 2024\nTRANSFER TO 4897691162093 UPI/DR/409312345678/Swiggy/YESB/swiggy@ybl\n10500.00\n"

func TestParser_DispatchesBySource(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		source      string
		description string
		txnType     models.TxnType
	}{
		{"phonepe", phonePeText, "phonepe", "Swiggy Bangalore", models.TxnTypeDebit},
		{"phonepe upper case", phonePeText, "PHONEPE", "Swiggy Bangalore", models.TxnTypeDebit},
		{"sbi", sbiText, "sbi", "Swiggy", models.TxnTypeDebit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(pdfparser.NewMockPDFExtractor(tt.text, nil), logging.NewMockLogger())

			txs, err := p.Parse(context.Background(), []byte("%PDF"), tt.source)
			require.NoError(t, err)
			require.Len(t, txs, 1)
			assert.Equal(t, tt.description, txs[0].Description)
			assert.Equal(t, tt.txnType, txs[0].TxnType)
		})
	}
}

func TestParser_UnsupportedSource(t *testing.T) {
	extractor := pdfparser.NewMockPDFExtractor(phonePeText, nil)
	p := NewParser(extractor, logging.NewMockLogger())

	txs, err := p.Parse(context.Background(), []byte("%PDF"), "paytm")
	require.Error(t, err)
	assert.Nil(t, txs)

	var unsupported *parsererror.UnsupportedSourceError
	assert.True(t, errors.As(err, &unsupported))
	assert.Equal(t, 0, extractor.CallCount(), "document must not be read for an unknown source")
}

func TestParser_DecodeFailureYieldsEmptyResult(t *testing.T) {
	mockLog := logging.NewMockLogger()
	p := NewParser(pdfparser.NewMockPDFExtractor("", errors.New("corrupt xref table")), mockLog)

	txs, err := p.Parse(context.Background(), []byte("garbage"), "sbi")
	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.True(t, mockLog.HasEntry("WARN", "Failed to extract document text, continuing with empty text"))
}

func TestParser_RealPDF_PhonePeTableLayout(t *testing.T) {
	// Fields are drawn in statement order but placed as table columns, so
	// the description shares a baseline with the type and amount.
	page1 := pdftest.Page{
		{X: 50, Y: 700, S: "Apr 05, 2024"},
		{X: 50, Y: 688, S: "09:12 pm"},
		{X: 350, Y: 700, S: "DEBIT"},
		{X: 450, Y: 700, S: "1,250.00"},
		{X: 150, Y: 700, S: "Paid to Swiggy Bangalore"},
	}
	page2 := pdftest.Page{
		{X: 50, Y: 700, S: "Apr 07, 2024"},
		{X: 50, Y: 688, S: "10:30 am"},
		{X: 350, Y: 700, S: "CREDIT"},
		{X: 450, Y: 700, S: "45,000.00"},
		{X: 150, Y: 700, S: "Received from ACME Payroll"},
	}

	p := NewParser(nil, logging.NewMockLogger())
	txs, err := p.Parse(context.Background(), pdftest.Build(page1, page2), "phonepe")
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "2024-04-05", txs[0].Date)
	assert.Equal(t, "Swiggy Bangalore", txs[0].Description)
	assert.True(t, decimal.RequireFromString("1250").Equal(txs[0].Amount))
	assert.Equal(t, models.TxnTypeDebit, txs[0].TxnType)

	assert.Equal(t, "2024-04-07", txs[1].Date)
	assert.Equal(t, "ACME Payroll", txs[1].Description)
	assert.True(t, decimal.RequireFromString("45000").Equal(txs[1].Amount))
	assert.Equal(t, models.TxnTypeCredit, txs[1].TxnType)
}

func TestParser_RealPDF_SBIAcrossPages(t *testing.T) {
	content := pdftest.Build(
		pdftest.Lines(
			"500.00 -",
			"02 Apr 2024",
			"TRANSFER TO 4897691162093 UPI/DR/409312345678/Swiggy/YESB/swiggy@ybl",
			"10500.00",
		),
		pdftest.Lines(
			"-",
			"85,000.00",
			"05 Apr 2024",
			"TRANSFER FROM 4897691162093 UPI/CR/409398765432/ACME Payroll/HDFC/acme@hdfc",
			"95,500.00",
		),
	)

	p := NewParser(nil, logging.NewMockLogger())
	txs, err := p.Parse(context.Background(), content, "sbi")
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "2024-04-02", txs[0].Date)
	assert.Equal(t, "Swiggy", txs[0].Description)
	assert.True(t, decimal.RequireFromString("500").Equal(txs[0].Amount))
	assert.Equal(t, models.TxnTypeDebit, txs[0].TxnType)

	assert.Equal(t, "2024-04-05", txs[1].Date)
	assert.Equal(t, "ACME Payroll", txs[1].Description)
	assert.True(t, decimal.RequireFromString("85000").Equal(txs[1].Amount))
	assert.Equal(t, models.TxnTypeCredit, txs[1].TxnType)
}

func TestParser_RealDecoderOnGarbage(t *testing.T) {
	p := NewParser(nil, logging.NewMockLogger())

	txs, err := p.Parse(context.Background(), []byte("definitely not a pdf"), "phonepe")
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestParser_ZeroMatchesIsNotAnError(t *testing.T) {
	p := NewParser(pdfparser.NewMockPDFExtractor("Statement with no transactions", nil), logging.NewMockLogger())

	txs, err := p.Parse(context.Background(), []byte("%PDF"), "phonepe")
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestParser_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewParser(pdfparser.NewMockPDFExtractor(phonePeText, nil), logging.NewMockLogger())
	_, err := p.Parse(ctx, []byte("%PDF"), "phonepe")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParser_ParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 placeholder"), 0644))

	extractor := pdfparser.NewMockPDFExtractor(phonePeText, nil)
	p := NewParser(extractor, logging.NewMockLogger())

	txs, err := p.ParseFile(context.Background(), path, "phonepe")
	require.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.Equal(t, len("%PDF-1.4 placeholder"), extractor.LastContentSize())

	_, err = p.ParseFile(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"), "phonepe")
	assert.Error(t, err)
}
