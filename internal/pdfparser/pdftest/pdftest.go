// Package pdftest builds small, valid PDF documents for decoder tests.
//
// Every text item becomes its own text object placed with Td, drawn in
// Helvetica with WinAnsiEncoding, so only Latin-1 text is representable.
package pdftest

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Text is one string drawn at (X, Y) in page coordinates.
type Text struct {
	X, Y float64
	S    string
}

// Page is the text of one page in content-stream order.
type Page []Text

// Lines stacks one item per line from the top of the page down.
func Lines(lines ...string) Page {
	page := make(Page, 0, len(lines))
	for i, line := range lines {
		page = append(page, Text{X: 50, Y: 750 - float64(i)*14, S: line})
	}
	return page
}

// Build renders the pages into a single-revision PDF with a classic xref table.
func Build(pages ...Page) []byte {
	var buf bytes.Buffer
	var offsets []int

	object := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	// objects 1-3: catalog, page tree, font; then a page and its content per page
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	object("<< /Type /Catalog /Pages 2 0 R >>")
	object(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	object("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, page := range pages {
		object(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
			"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i))
		stream := contentStream(page)
		object(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}

func contentStream(page Page) string {
	var b strings.Builder
	for _, t := range page {
		fmt.Fprintf(&b, "BT /F1 10 Tf %s %s Td (%s) Tj ET\n", coord(t.X), coord(t.Y), escape(t.S))
	}
	return b.String()
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`).Replace(s)
}
