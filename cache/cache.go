// Package cache implements the launcher's JSON-file-backed key/value store.
//
// The whole store is one pretty-printed JSON object on disk. Reads and
// writes go through the full document on every call; the store holds small
// UI state, not bulk data. A single launcher process is the only writer, so
// no cross-process locking is attempted.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store is a file-backed string-key / JSON-value store.
type Store struct {
	path string
}

// New returns a store backed by the given file. The file is created on
// first Set, not here.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the raw JSON value stored under key, or ok=false when the
// store or the key does not exist. A corrupt or non-object store file reads
// as empty rather than failing: cached state is never worth breaking the
// application over.
func (s *Store) Get(key string) (json.RawMessage, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cache store %s: %w", s.path, err)
	}

	root := decodeRoot(data)
	value, ok := root[key]
	return value, ok, nil
}

// Set validates rawValue as JSON and writes it under key, rewriting the
// whole document.
func (s *Store) Set(key string, rawValue json.RawMessage) error {
	var value any
	if err := json.Unmarshal(rawValue, &value); err != nil {
		return fmt.Errorf("invalid cache payload JSON: %w", err)
	}

	root := map[string]json.RawMessage{}
	if data, err := os.ReadFile(s.path); err == nil {
		root = decodeRoot(data)
	}
	root[key] = rawValue

	serialized, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize cache store: %w", err)
	}
	if err := os.WriteFile(s.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write cache store %s: %w", s.path, err)
	}
	return nil
}

// decodeRoot parses the store document, treating anything unparsable or
// non-object as an empty store.
func decodeRoot(data []byte) map[string]json.RawMessage {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil || root == nil {
		return map[string]json.RawMessage{}
	}
	return root
}
