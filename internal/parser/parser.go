// Package parser defines the capability shared by every statement format.
package parser

import (
	"strings"

	"askbudget/budget-buddy/internal/models"
)

// Extractor turns the plain text of one statement format into transactions.
// Extract never fails: text that does not match the format yields no records.
type Extractor interface {
	// Source is the tag this extractor is registered under.
	Source() models.Source

	// Extract returns the records found in text, in format-defined order.
	Extract(text string) []models.Transaction
}

// NormalizeLineEndings converts Windows and old Mac line endings to "\n".
func NormalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
