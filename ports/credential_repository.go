package ports

import (
	"context"

	"ajltrack/models"
)

// CredentialRepository reads the flat credential list used by login. Unlike
// the data repositories this one is NOT fail-open: a missing or unparsable
// list is a configuration error and must surface to the caller.
type CredentialRepository interface {
	// List returns every credential record.
	List(ctx context.Context) ([]models.Credential, error)
}
