// Package app wires the repositories to the record pipeline. Every operation
// is request-scoped: it performs a fresh load of the source file and the
// status document, with no shared in-memory state between calls.
package app

import (
	"context"

	"ajltrack/domain/ajl"
	"ajltrack/internal"
	"ajltrack/internal/errors"
	"ajltrack/models"
	"ajltrack/ports"
)

// Service exposes the tracker operations over injectable repositories.
type Service struct {
	source   ports.RecordSource
	statuses ports.StatusRepository
	creds    ports.CredentialRepository
	logger   *internal.Logger
}

// NewService creates a service over the given repositories.
func NewService(source ports.RecordSource, statuses ports.StatusRepository, creds ports.CredentialRepository) *Service {
	return &Service{
		source:   source,
		statuses: statuses,
		creds:    creds,
		logger:   internal.DefaultLogger,
	}
}

// Search returns the filtered, forward-filled, status-joined display rows.
func (s *Service) Search(ctx context.Context, aircraft, system string) models.SearchResult {
	rows, source := s.source.Load(ctx)
	s.logger.Debug("search: loaded %d rows from %q", len(rows), source)
	return ajl.Search(rows, aircraft, system, s.statuses.Get(ctx))
}

// Meta returns the distinct aircraft and system values of the loaded sheet.
func (s *Service) Meta(ctx context.Context) models.MetaResult {
	rows, _ := s.source.Load(ctx)
	return ajl.Meta(rows)
}

// Summary returns the open/closed group counts for the summarized aircraft.
func (s *Service) Summary(ctx context.Context) models.Summary {
	rows, _ := s.source.Load(ctx)
	return ajl.Summarize(rows, s.statuses.Get(ctx))
}

// UpdateStatus sets the status for one AJL/DMI group key (any string is
// accepted), persists the full mapping immediately, and returns the
// recomputed summary so the caller skips a round trip. A persistence failure
// is logged, not surfaced; the summary still reflects the updated mapping.
func (s *Service) UpdateStatus(ctx context.Context, key, status string) (models.Summary, error) {
	if key == "" {
		return models.Summary{}, errors.ValidationError("ajl is required")
	}

	statuses := s.statuses.Get(ctx)
	statuses[key] = status
	if err := s.statuses.Save(ctx, statuses); err != nil {
		s.logger.Error("failed to persist status update for %q: %v", key, err)
	}

	rows, _ := s.source.Load(ctx)
	return ajl.Summarize(rows, statuses), nil
}

// Login checks the id/password pair against the credential list by plain
// equality. A missing or unreadable list is an error distinct from a
// mismatch.
func (s *Service) Login(ctx context.Context, id, password string) (bool, error) {
	creds, err := s.creds.List(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range creds {
		if c.ID == id && c.Password == password {
			return true, nil
		}
	}
	return false, nil
}
