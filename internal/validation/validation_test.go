package validation_test

import (
	"os"
	"path/filepath"
	"testing"

	"askbudget/budget-buddy/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInputFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "statement.pdf")
	require.NoError(t, os.WriteFile(good, []byte("%PDF-1.4"), 0600))
	empty := filepath.Join(dir, "empty.pdf")
	require.NoError(t, os.WriteFile(empty, nil, 0600))

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"valid file", good, ""},
		{"blank path", "  ", "input file is required"},
		{"missing", filepath.Join(dir, "missing.pdf"), "does not exist"},
		{"directory", dir, "not a regular file"},
		{"empty file", empty, "is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateInputFile(tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, validation.ValidateOutputFormat("csv"))
	assert.NoError(t, validation.ValidateOutputFormat("json"))
	assert.ErrorContains(t, validation.ValidateOutputFormat("xml"), "unsupported output format")
}
