// Package statement turns an uploaded statement document into transactions.
package statement

import (
	"context"
	"fmt"
	"time"

	"askbudget/budget-buddy/internal/factory"
	"askbudget/budget-buddy/internal/fileutils"
	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/models"
	"askbudget/budget-buddy/internal/pdfparser"
)

// Parser reads a document's text and hands it to the extractor of its source.
type Parser struct {
	textExtractor pdfparser.TextExtractor
	logger        logging.Logger
}

// NewParser creates a Parser. A nil text extractor uses the PDF decoder.
func NewParser(textExtractor pdfparser.TextExtractor, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if textExtractor == nil {
		textExtractor = pdfparser.NewRealPDFExtractor(logger)
	}
	return &Parser{
		textExtractor: textExtractor,
		logger:        logger,
	}
}

// Parse returns the transactions found in content for the given source tag.
//
// An unknown tag fails with *parsererror.UnsupportedSourceError before the
// document is read. A document that cannot be decoded is treated as empty
// text, so the result is an empty list rather than an error.
func (p *Parser) Parse(ctx context.Context, content []byte, source string) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	extractor, err := factory.GetExtractor(source, p.logger)
	if err != nil {
		p.logger.WithError(err).Error("Unsupported source received",
			logging.Field{Key: logging.FieldSource, Value: source})
		return nil, err
	}

	log := p.logger.WithField(logging.FieldSource, string(extractor.Source()))
	start := time.Now()

	text, err := p.textExtractor.ExtractText(content)
	if err != nil {
		log.WithError(err).Warn("Failed to extract document text, continuing with empty text")
		text = ""
	}
	log.Debug("Extracted document text",
		logging.Field{Key: logging.FieldTextLength, Value: len(text)})

	transactions := extractor.Extract(text)

	log.Info("Parsed statement",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})

	return transactions, nil
}

// ParseFile reads the document at path and parses it.
func (p *Parser) ParseFile(ctx context.Context, path, source string) ([]models.Transaction, error) {
	content, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}
	return p.Parse(ctx, content, source)
}
