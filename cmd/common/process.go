// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"askbudget/budget-buddy/internal/common"
	"askbudget/budget-buddy/internal/container"
	"askbudget/budget-buddy/internal/fileutils"
	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/models"
	"askbudget/budget-buddy/internal/validation"
)

// Output formats
const (
	FormatCSV  = validation.FormatCSV
	FormatJSON = validation.FormatJSON
)

// ProcessOptions describes one statement conversion.
type ProcessOptions struct {
	InputFile  string
	OutputFile string // empty writes to the provided writer
	Source     string
	Format     string // csv or json; empty picks from the output extension
	Categorize bool
}

// ProcessStatement parses a statement file, optionally categorizes the
// transactions and writes them as CSV or JSON. It returns the transactions
// that were written.
func ProcessStatement(ctx context.Context, c *container.Container, opts ProcessOptions, stdout io.Writer) ([]models.Transaction, error) {
	if c == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	if err := validation.ValidateInputFile(opts.InputFile); err != nil {
		return nil, err
	}
	log := c.GetLogger().WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: opts.InputFile},
		logging.Field{Key: logging.FieldSource, Value: opts.Source})

	format, err := resolveFormat(opts.Format, opts.OutputFile)
	if err != nil {
		return nil, err
	}

	transactions, err := c.GetParser().ParseFile(ctx, opts.InputFile, opts.Source)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		log.Warn("No transactions found in statement")
	}

	if opts.Categorize {
		transactions = c.GetResolver().ResolveBatch(ctx, transactions)
	}

	delimiter := c.GetConfig().CSVDelimiter()
	if opts.OutputFile == "" {
		return transactions, writeTransactions(stdout, transactions, format, delimiter)
	}

	if format == FormatCSV {
		return transactions, common.WriteTransactionsToCSV(transactions, opts.OutputFile, delimiter, log)
	}
	err = fileutils.WriteFileFunc(opts.OutputFile, func(w io.Writer) error {
		return writeTransactions(w, transactions, format, delimiter)
	})
	if err != nil {
		return nil, fmt.Errorf("error writing JSON file: %w", err)
	}

	log.Info("Wrote transactions", logging.Field{Key: logging.FieldOutputFile, Value: opts.OutputFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions, nil
}

func resolveFormat(format, outputFile string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		if strings.EqualFold(filepath.Ext(outputFile), ".json") {
			return FormatJSON, nil
		}
		return FormatCSV, nil
	}
	if err := validation.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

func writeTransactions(w io.Writer, transactions []models.Transaction, format string, delimiter rune) error {
	if format == FormatJSON {
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(transactions)
	}
	return common.WriteTransactions(w, transactions, delimiter)
}
