package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldNamesAreUnique(t *testing.T) {
	names := []string{
		FieldFile, FieldParser, FieldSource, FieldDescription, FieldTxnType,
		FieldCategory, FieldStrategy, FieldStore, FieldReason, FieldOperation,
		FieldStatus, FieldError, FieldDuration, FieldCount, FieldPages,
		FieldTextLength, FieldRequestID, FieldModel, FieldDelimiter,
		FieldInputFile, FieldOutputFile,
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate field name %q", name)
		seen[name] = true
	}
}
