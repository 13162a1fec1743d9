package jsonstore

import (
	"context"
	"encoding/json"
	"os"

	"ajltrack/internal/errors"
	"ajltrack/models"
)

// CredentialFile reads the flat JSON credential list. Missing or unparsable
// lists are errors, not empty results: login cannot work without the list,
// so the failure must reach the caller.
type CredentialFile struct {
	path string
}

// NewCredentialFile creates a credential repository backed by the given path.
func NewCredentialFile(path string) *CredentialFile {
	return &CredentialFile{path: path}
}

// List returns every credential record.
func (c *CredentialFile) List(ctx context.Context) ([]models.Credential, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("credential list")
		}
		return nil, errors.Wrapf(err, "failed to read credential list %s", c.path)
	}

	var creds []models.Credential
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, errors.Wrapf(err, "failed to parse credential list %s", c.path)
	}
	return creds, nil
}
