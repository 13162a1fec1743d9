package ports

import (
	"context"

	"ajltrack/models"
)

// StatusRepository persists the AJL/DMI group status mapping as one document.
// There is no per-key primitive: callers read-modify-write the full map, so
// concurrent writers can lose updates (accepted, single-operator usage).
type StatusRepository interface {
	// Get returns the persisted mapping, or an empty map when the backing
	// document is absent or unparsable (fail-open).
	Get(ctx context.Context) models.StatusMap

	// Save overwrites the entire backing document with the given mapping.
	Save(ctx context.Context, statuses models.StatusMap) error
}
