// Package factory maps statement source tags to their extractors.
package factory

import (
	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/models"
	"askbudget/budget-buddy/internal/parser"
	"askbudget/budget-buddy/internal/parsererror"
	"askbudget/budget-buddy/internal/phonepeparser"
	"askbudget/budget-buddy/internal/sbiparser"
)

// GetExtractor returns the extractor registered for the given source tag.
// The tag is matched case-insensitively; an unknown tag yields an
// *parsererror.UnsupportedSourceError.
func GetExtractor(source string, logger logging.Logger) (parser.Extractor, error) {
	s, ok := models.ParseSource(source)
	if !ok {
		return nil, newUnsupportedSourceError(source)
	}

	switch s {
	case models.SourcePhonePe:
		return phonepeparser.NewExtractor(logger), nil
	case models.SourceSBI:
		return sbiparser.NewExtractor(logger), nil
	default:
		return nil, newUnsupportedSourceError(source)
	}
}

func newUnsupportedSourceError(source string) error {
	supported := make([]string, 0, len(models.SupportedSources()))
	for _, s := range models.SupportedSources() {
		supported = append(supported, string(s))
	}
	return &parsererror.UnsupportedSourceError{Source: source, Supported: supported}
}
