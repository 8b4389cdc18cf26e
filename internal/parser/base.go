package parser

import (
	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/parsererror"
)

// BaseParser holds what every extractor shares. Extractors embed it:
//
//	type Extractor struct {
//		parser.BaseParser
//	}
type BaseParser struct {
	name   string
	logger logging.Logger
}

// NewBaseParser creates a BaseParser. If logger is nil, a default logger is used.
func NewBaseParser(name string, logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return BaseParser{
		name:   name,
		logger: logger,
	}
}

// Name returns the human readable parser name used in logs and errors.
func (b *BaseParser) Name() string {
	return b.name
}

// SetLogger replaces the logger; nil is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// SkipMatch logs a matched block whose field could not be normalized.
// The block is dropped rather than emitted with an invalid value.
func (b *BaseParser) SkipMatch(field, value string, err error) {
	perr := &parsererror.ParseError{Parser: b.name, Field: field, Value: value, Err: err}
	b.logger.WithError(perr).Warn("Skipping statement entry",
		logging.Field{Key: logging.FieldParser, Value: b.name},
		logging.Field{Key: logging.FieldReason, Value: field})
}
