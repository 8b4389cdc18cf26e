package categorizer

import (
	"context"
	"sync"
)

// MockClassificationService is a ClassificationService for tests. It answers
// with Response unless ClassifyFunc is set, and counts every call.
type MockClassificationService struct {
	Response     string
	Err          error
	ClassifyFunc func(ctx context.Context, prompt string) (string, error)

	mu         sync.Mutex
	calls      int
	lastPrompt string
}

// NewMockClassificationService returns a mock that always answers response.
func NewMockClassificationService(response string) *MockClassificationService {
	return &MockClassificationService{Response: response}
}

// Classify implements ClassificationService.
func (m *MockClassificationService) Classify(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.lastPrompt = prompt
	fn := m.ClassifyFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, prompt)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// CallCount returns the number of Classify calls.
func (m *MockClassificationService) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastPrompt returns the prompt of the most recent call.
func (m *MockClassificationService) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPrompt
}
