// Package jsonstore holds the file-backed repositories: single JSON documents
// read whole and written whole.
package jsonstore

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"ajltrack/models"
)

// StatusStore persists the group-status mapping as one pretty-printed JSON
// object. Reads are fail-open; writes overwrite the full document.
type StatusStore struct {
	path string
}

// NewStatusStore creates a store backed by the given file path.
func NewStatusStore(path string) *StatusStore {
	return &StatusStore{path: path}
}

// Get returns the persisted mapping. A missing or unparsable document yields
// an empty map; parse failures are logged.
func (s *StatusStore) Get(ctx context.Context) models.StatusMap {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[StatusStore] failed to read %s: %v", s.path, err)
		}
		return models.StatusMap{}
	}

	var statuses models.StatusMap
	if err := json.Unmarshal(data, &statuses); err != nil {
		log.Printf("[StatusStore] failed to parse %s: %v", s.path, err)
		return models.StatusMap{}
	}
	if statuses == nil {
		statuses = models.StatusMap{}
	}
	return statuses
}

// Save overwrites the backing document with the given mapping.
func (s *StatusStore) Save(ctx context.Context, statuses models.StatusMap) error {
	data, err := json.MarshalIndent(statuses, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
