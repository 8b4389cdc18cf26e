// Package pdfparser turns statement documents into plain text.
package pdfparser

import "sync"

// TextExtractor extracts the concatenated page text of a document.
// Implementations must not panic on malformed input.
type TextExtractor interface {
	ExtractText(content []byte) (string, error)
}

// MockPDFExtractor implements TextExtractor for tests.
// It returns predefined text instead of decoding the content.
type MockPDFExtractor struct {
	MockText string
	MockErr  error

	mu       sync.Mutex
	calls    int
	lastSize int
}

// NewMockPDFExtractor creates a new MockPDFExtractor with the given mock data.
func NewMockPDFExtractor(mockText string, mockErr error) *MockPDFExtractor {
	return &MockPDFExtractor{
		MockText: mockText,
		MockErr:  mockErr,
	}
}

// ExtractText returns the predefined mock text or error.
func (e *MockPDFExtractor) ExtractText(content []byte) (string, error) {
	e.mu.Lock()
	e.calls++
	e.lastSize = len(content)
	e.mu.Unlock()

	if e.MockErr != nil {
		return "", e.MockErr
	}
	return e.MockText, nil
}

// CallCount returns how many times ExtractText was invoked.
func (e *MockPDFExtractor) CallCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

// LastContentSize returns the length of the content passed to the last call.
func (e *MockPDFExtractor) LastContentSize() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastSize
}
