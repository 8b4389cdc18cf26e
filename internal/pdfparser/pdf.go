package pdfparser

import (
	"bytes"
	"fmt"
	"strings"

	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/parsererror"

	"github.com/ledongthuc/pdf"
)

// RealPDFExtractor decodes PDF documents with github.com/ledongthuc/pdf.
type RealPDFExtractor struct {
	logger logging.Logger
}

// NewRealPDFExtractor creates a RealPDFExtractor. A nil logger gets the default one.
func NewRealPDFExtractor(logger logging.Logger) *RealPDFExtractor {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &RealPDFExtractor{logger: logger}
}

// ExtractText reads every page in order and joins the page texts with a newline.
func (e *RealPDFExtractor) ExtractText(content []byte) (string, error) {
	pages, err := e.ExtractPages(content)
	if err != nil {
		return "", err
	}
	return JoinPages(pages), nil
}

// ExtractPages returns the text of each page. The decoder is known to panic on
// some damaged files; a panic is reported as an error.
func (e *RealPDFExtractor) ExtractPages(content []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = &parsererror.TextExtractionError{Reason: fmt.Sprintf("PDF library crashed: %v", r)}
		}
	}()

	if len(content) == 0 {
		return nil, &parsererror.TextExtractionError{Reason: "empty document"}
	}

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, &parsererror.TextExtractionError{Reason: "not a readable PDF", Err: err}
	}

	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text := pagePlainText(page)
		if text == "" {
			text = pageTextByRow(page)
		}
		pages = append(pages, text)
	}

	e.logger.Debug("Extracted PDF text",
		logging.Field{Key: logging.FieldPages, Value: numPages},
		logging.Field{Key: logging.FieldTextLength, Value: len(JoinPages(pages))})

	return pages, nil
}

// pageTextByRow groups text by baseline. Table layouts come out in visual
// column order, so it is only used when the content stream yields nothing.
func pageTextByRow(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		words := make([]string, 0, len(row.Content))
		for _, word := range row.Content {
			words = append(words, word.S)
		}
		if line := strings.TrimSpace(strings.Join(words, " ")); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// pagePlainText returns the page text in content-stream order, one text
// object per line, which is the order the statement patterns expect.
func pagePlainText(page pdf.Page) string {
	fonts := make(map[string]*pdf.Font)
	for _, name := range page.Fonts() {
		f := page.Font(name)
		fonts[name] = &f
	}
	text, err := page.GetPlainText(fonts)
	if err != nil {
		return ""
	}
	return compactLines(text)
}

// compactLines trims every line and drops the blank ones left by empty text objects.
func compactLines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// JoinPages concatenates page texts in order, one newline between pages.
func JoinPages(pages []string) string {
	var b strings.Builder
	for i, p := range pages {
		if i > 0 && !strings.HasSuffix(pages[i-1], "\n") {
			b.WriteString("\n")
		}
		b.WriteString(p)
	}
	return b.String()
}
