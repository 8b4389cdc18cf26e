// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO calendar form every extractor normalizes dates to.
const DateLayout = "2006-01-02"

// Transaction is a single record extracted from a statement.
// Only Category changes after extraction; it is set once by the resolver.
type Transaction struct {
	Date        string          `json:"date" csv:"Date"`                   // ISO date (YYYY-MM-DD)
	Description string          `json:"description" csv:"Description"`     // Trimmed counterparty / narration
	Amount      decimal.Decimal `json:"amount" csv:"Amount"`               // Non-negative, at most two fraction digits
	TxnType     TxnType         `json:"txn_type" csv:"TxnType"`            // CREDIT or DEBIT
	Category    string          `json:"category,omitempty" csv:"Category"` // Empty until resolved
}

// NewTransaction builds a transaction from already normalized fields.
func NewTransaction(date, description string, amount decimal.Decimal, txnType TxnType) Transaction {
	return Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		TxnType:     txnType,
	}
}

// IsDebit returns true if the transaction is outgoing money
func (t Transaction) IsDebit() bool {
	return t.TxnType == TxnTypeDebit
}

// IsCredit returns true if the transaction is incoming money
func (t Transaction) IsCredit() bool {
	return t.TxnType == TxnTypeCredit
}

// IsCategorized reports whether the resolver already populated the category.
func (t Transaction) IsCategorized() bool {
	return strings.TrimSpace(t.Category) != ""
}

// ParsedDate returns the transaction date as a time.Time.
func (t Transaction) ParsedDate() (time.Time, error) {
	return time.Parse(DateLayout, t.Date)
}

// Validate checks the record invariants: a real calendar date, a non-negative
// amount with at most two fraction digits and a known type.
func (t Transaction) Validate() error {
	if _, err := t.ParsedDate(); err != nil {
		return fmt.Errorf("invalid date %q: %w", t.Date, err)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("negative amount %s", t.Amount.String())
	}
	if t.Amount.Exponent() < -2 && !t.Amount.Equal(t.Amount.Round(2)) {
		return fmt.Errorf("amount %s has more than two fraction digits", t.Amount.String())
	}
	if !t.TxnType.IsValid() {
		return fmt.Errorf("invalid transaction type %q", t.TxnType)
	}
	return nil
}
