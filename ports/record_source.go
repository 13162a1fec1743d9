package ports

import (
	"context"

	"ajltrack/models"
)

// RecordSource loads the tracking sheet rows for one request.
type RecordSource interface {
	// Load resolves the active source file and returns its rows in sheet
	// order, each tagged with its zero-based position. The returned source
	// name is "" when no file exists. Load is fail-open: a missing,
	// unreadable or malformed file yields an empty slice, never an error.
	Load(ctx context.Context) (rows []models.RawRow, source string)
}
