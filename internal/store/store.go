// Package store persists flat description -> category mappings as JSON documents.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"askbudget/budget-buddy/internal/fileutils"
	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/parsererror"
)

// Store names used in logs.
const (
	NameCache    = "category_cache"
	NameMappings = "category_mappings"
)

// MappingStore is a flat key -> label mapping backed by one document.
type MappingStore interface {
	// Get returns the label stored for the trimmed key.
	Get(key string) (string, bool, error)
	// Set stores the trimmed label under the trimmed key and persists the document.
	Set(key, label string) error
	// All returns a copy of the whole mapping.
	All() (map[string]string, error)
}

// JSONStore keeps a mapping in a single JSON object document.
//
// Every operation reads the whole document; Set rewrites it. A missing
// document reads as empty. A document that fails to parse also reads as
// empty and is logged; the next Set replaces it.
//
// The mutex serializes the load-mutate-save cycle within this process only.
// Two processes writing the same document can still lose an update
// (last save wins at document granularity).
type JSONStore struct {
	name   string
	path   string
	logger logging.Logger
	mu     sync.Mutex
}

// NewJSONStore creates a store for the document at path. Nothing is read or
// created until the first operation.
func NewJSONStore(name, path string, logger logging.Logger) *JSONStore {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &JSONStore{
		name:   name,
		path:   path,
		logger: logger.WithField(logging.FieldStore, name),
	}
}

// NewCacheStore creates the category cache store.
func NewCacheStore(path string, logger logging.Logger) *JSONStore {
	return NewJSONStore(NameCache, path, logger)
}

// NewMappingsStore creates the user mapping (override) store.
func NewMappingsStore(path string, logger logging.Logger) *JSONStore {
	return NewJSONStore(NameMappings, path, logger)
}

// Path returns the document location.
func (s *JSONStore) Path() string {
	return s.path
}

// Get implements MappingStore.
func (s *JSONStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mappings, err := s.load()
	if err != nil {
		return "", false, err
	}
	label, ok := mappings[strings.TrimSpace(key)]
	return label, ok, nil
}

// Set implements MappingStore.
func (s *JSONStore) Set(key, label string) error {
	key = strings.TrimSpace(key)
	label = strings.TrimSpace(label)
	if key == "" {
		return fmt.Errorf("%s: key must not be empty", s.name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mappings, err := s.load()
	if err != nil {
		return err
	}
	mappings[key] = label
	if err := s.save(mappings); err != nil {
		return err
	}

	s.logger.Debug("Stored mapping",
		logging.Field{Key: logging.FieldDescription, Value: key},
		logging.Field{Key: logging.FieldCategory, Value: label})
	return nil
}

// All implements MappingStore.
func (s *JSONStore) All() (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// SortedKeys returns the keys of a mapping in sorted order.
func SortedKeys(mappings map[string]string) []string {
	keys := make([]string, 0, len(mappings))
	for k := range mappings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *JSONStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, &parsererror.PersistenceError{Path: s.path, Operation: "read", Err: err}
	}

	mappings := make(map[string]string)
	if len(strings.TrimSpace(string(data))) == 0 {
		return mappings, nil
	}
	if err := json.Unmarshal(data, &mappings); err != nil {
		s.logger.WithError(err).Warn("Mapping document is unreadable, treating it as empty",
			logging.Field{Key: logging.FieldFile, Value: s.path})
		return make(map[string]string), nil
	}
	return mappings, nil
}

func (s *JSONStore) save(mappings map[string]string) error {
	data, err := json.MarshalIndent(mappings, "", "  ")
	if err != nil {
		return &parsererror.PersistenceError{Path: s.path, Operation: "encode", Err: err}
	}
	if err := fileutils.WriteFile(s.path, data); err != nil {
		return &parsererror.PersistenceError{Path: s.path, Operation: "write", Err: err}
	}
	return nil
}
