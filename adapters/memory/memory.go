// Package memory provides in-memory repository implementations. They back
// the service tests and any deployment that wants to run without files.
package memory

import (
	"context"

	"ajltrack/models"
)

// RecordSource serves a fixed row slice.
type RecordSource struct {
	Rows   []models.RawRow
	Source string
}

// Load returns the configured rows and source name.
func (s *RecordSource) Load(ctx context.Context) ([]models.RawRow, string) {
	if s.Rows == nil {
		return []models.RawRow{}, s.Source
	}
	return s.Rows, s.Source
}

// StatusStore keeps the status mapping in memory.
type StatusStore struct {
	Statuses models.StatusMap
}

// Get returns the current mapping, empty when unset.
func (s *StatusStore) Get(ctx context.Context) models.StatusMap {
	if s.Statuses == nil {
		return models.StatusMap{}
	}
	out := make(models.StatusMap, len(s.Statuses))
	for k, v := range s.Statuses {
		out[k] = v
	}
	return out
}

// Save replaces the current mapping.
func (s *StatusStore) Save(ctx context.Context, statuses models.StatusMap) error {
	s.Statuses = statuses
	return nil
}

// CredentialList serves a fixed credential slice, or the configured error.
type CredentialList struct {
	Credentials []models.Credential
	Err         error
}

// List returns the configured credentials.
func (c *CredentialList) List(ctx context.Context) ([]models.Credential, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Credentials, nil
}
