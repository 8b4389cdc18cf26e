// Package common provides output helpers shared by the CLI and the HTTP surface.
package common

import (
	"encoding/csv"
	"fmt"
	"io"

	"askbudget/budget-buddy/internal/fileutils"
	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is used when no delimiter is configured.
const DefaultDelimiter = ','

// WriteTransactions marshals transactions as CSV with a header row.
func WriteTransactions(w io.Writer, transactions []models.Transaction, delimiter rune) error {
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteTransactionsToCSV writes transactions to csvFile, creating its
// directory when needed.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string, delimiter rune, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	logger = logger.WithField(logging.FieldOutputFile, csvFile)

	err := fileutils.WriteFileFunc(csvFile, func(w io.Writer) error {
		return WriteTransactions(w, transactions, delimiter)
	})
	if err != nil {
		logger.WithError(err).Error("Failed to write CSV file")
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	logger.Info("Wrote transactions to CSV file",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)})
	return nil
}
