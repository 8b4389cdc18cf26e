// Package validation checks user supplied paths and options before any work starts.
package validation

import (
	"fmt"
	"os"
	"strings"
)

// Supported output formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ValidateInputFile checks that path names a readable, non-empty regular file.
func ValidateInputFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("input file is required")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking input file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input path %s is not a regular file", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("input file %s is empty", path)
	}
	return nil
}

// ValidateOutputFormat checks if the given format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case FormatCSV, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use csv or json)", format)
	}
}
