package store

import (
	"strings"
	"sync"
)

// MockMappingStore is an in-memory MappingStore for tests.
type MockMappingStore struct {
	Data map[string]string

	// Error injection
	GetError error
	SetError error

	mu       sync.Mutex
	getCalls int
	setCalls int
}

// NewMockMappingStore returns a mock seeded with a copy of data.
func NewMockMappingStore(data map[string]string) *MockMappingStore {
	m := &MockMappingStore{Data: make(map[string]string, len(data))}
	for k, v := range data {
		m.Data[k] = v
	}
	return m
}

// Get implements MappingStore.
func (m *MockMappingStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.GetError != nil {
		return "", false, m.GetError
	}
	label, ok := m.Data[strings.TrimSpace(key)]
	return label, ok, nil
}

// Set implements MappingStore.
func (m *MockMappingStore) Set(key, label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	if m.SetError != nil {
		return m.SetError
	}
	if m.Data == nil {
		m.Data = make(map[string]string)
	}
	m.Data[strings.TrimSpace(key)] = strings.TrimSpace(label)
	return nil
}

// All implements MappingStore.
func (m *MockMappingStore) All() (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	out := make(map[string]string, len(m.Data))
	for k, v := range m.Data {
		out[k] = v
	}
	return out, nil
}

// GetCalls returns the number of Get calls.
func (m *MockMappingStore) GetCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getCalls
}

// SetCalls returns the number of Set calls.
func (m *MockMappingStore) SetCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setCalls
}
