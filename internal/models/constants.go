package models

import "strings"

// TxnType is the direction of a transaction as printed on the statement.
type TxnType string

// Transaction types
const (
	TxnTypeCredit TxnType = "CREDIT"
	TxnTypeDebit  TxnType = "DEBIT"
)

// IsValid reports whether t is one of the two known variants.
func (t TxnType) IsValid() bool {
	return t == TxnTypeCredit || t == TxnTypeDebit
}

// Source identifies the statement format a document was produced by.
type Source string

// Supported statement sources
const (
	SourcePhonePe Source = "phonepe"
	SourceSBI     Source = "sbi"
)

// ParseSource normalizes a source tag. Unknown tags are returned as-is with ok=false
// so that callers can report the original value.
func ParseSource(tag string) (Source, bool) {
	s := Source(strings.ToLower(strings.TrimSpace(tag)))
	switch s {
	case SourcePhonePe, SourceSBI:
		return s, true
	default:
		return s, false
	}
}

// SupportedSources lists the source tags in a stable order.
func SupportedSources() []Source {
	return []Source{SourcePhonePe, SourceSBI}
}

// SupportedSourcesString is used in error messages and CLI help.
func SupportedSourcesString() string {
	names := make([]string, 0, len(SupportedSources()))
	for _, s := range SupportedSources() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// String implements fmt.Stringer
func (s Source) String() string {
	return string(s)
}

// File permissions
const (
	PermissionDataFile  = 0644
	PermissionDirectory = 0750
)
