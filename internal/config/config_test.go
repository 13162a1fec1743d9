package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoConfigFile(t *testing.T) {
	t.Setenv("AJLTRACK_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "AJL_DMI.xlsx", cfg.Data.WorkbookFile)
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  port: \"9090\"\ndata:\n  dir: /srv/ajl\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("AJLTRACK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/srv/ajl", cfg.Data.Dir)
	// Untouched fields keep their defaults.
	assert.Equal(t, "status.json", cfg.Data.StatusFile)
}

func TestEnvOverridesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0644))
	t.Setenv("AJLTRACK_CONFIG", path)
	t.Setenv("AJLTRACK_PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a mapping"), 0644))
	t.Setenv("AJLTRACK_CONFIG", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestDataPaths(t *testing.T) {
	cfg := Default()
	cfg.Data.Dir = "data"

	assert.Equal(t, filepath.Join("data", "AJL_DMI.xlsx"), cfg.WorkbookPath())
	assert.Equal(t, filepath.Join("data", "AJL_DMI.csv"), cfg.CSVPath())
	assert.Equal(t, filepath.Join("data", "status.json"), cfg.StatusPath())
	assert.Equal(t, filepath.Join("data", "credentials.json"), cfg.CredentialsPath())
}
