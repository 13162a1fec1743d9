package config

import (
	"os"
	"path/filepath"

	"ajltrack/internal/errors"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port      string `yaml:"port"`
	GinMode   string `yaml:"gin_mode"`
	StaticDir string `yaml:"static_dir"`
}

// DataConfig holds the on-disk data layout. All file names are relative to
// Dir. The workbook is preferred over the CSV when both exist.
type DataConfig struct {
	Dir             string `yaml:"dir"`
	WorkbookFile    string `yaml:"workbook_file"`
	CSVFile         string `yaml:"csv_file"`
	StatusFile      string `yaml:"status_file"`
	CredentialsFile string `yaml:"credentials_file"`
}

// Default returns the built-in configuration defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      "8080",
			GinMode:   "release",
			StaticDir: "public",
		},
		Data: DataConfig{
			Dir:             "data",
			WorkbookFile:    "AJL_DMI.xlsx",
			CSVFile:         "AJL_DMI.csv",
			StatusFile:      "status.json",
			CredentialsFile: "credentials.json",
		},
	}
}

// Load builds the configuration: defaults, then an optional config.yaml,
// then environment variable overrides, then validation.
func Load() (*Config, error) {
	cfg := Default()

	path := getEnvOrDefault("AJLTRACK_CONFIG", "config.yaml")
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", path)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	cfg.Server.Port = getEnvOrDefault("AJLTRACK_PORT", cfg.Server.Port)
	cfg.Server.GinMode = getEnvOrDefault("GIN_MODE", cfg.Server.GinMode)
	cfg.Server.StaticDir = getEnvOrDefault("AJLTRACK_STATIC_DIR", cfg.Server.StaticDir)
	cfg.Data.Dir = getEnvOrDefault("AJLTRACK_DATA_DIR", cfg.Data.Dir)
	cfg.Data.WorkbookFile = getEnvOrDefault("AJLTRACK_WORKBOOK_FILE", cfg.Data.WorkbookFile)
	cfg.Data.CSVFile = getEnvOrDefault("AJLTRACK_CSV_FILE", cfg.Data.CSVFile)
	cfg.Data.StatusFile = getEnvOrDefault("AJLTRACK_STATUS_FILE", cfg.Data.StatusFile)
	cfg.Data.CredentialsFile = getEnvOrDefault("AJLTRACK_CREDENTIALS_FILE", cfg.Data.CredentialsFile)
}

func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.ConfigInvalid("server port must not be empty")
	}
	if cfg.Data.Dir == "" {
		return errors.ConfigInvalid("data dir must not be empty")
	}
	if cfg.Data.WorkbookFile == "" && cfg.Data.CSVFile == "" {
		return errors.ConfigInvalid("at least one of workbook_file or csv_file must be set")
	}
	return nil
}

// WorkbookPath returns the absolute-or-relative path of the xlsx source.
func (c *Config) WorkbookPath() string {
	return filepath.Join(c.Data.Dir, c.Data.WorkbookFile)
}

// CSVPath returns the path of the plain-text source.
func (c *Config) CSVPath() string {
	return filepath.Join(c.Data.Dir, c.Data.CSVFile)
}

// StatusPath returns the path of the status document.
func (c *Config) StatusPath() string {
	return filepath.Join(c.Data.Dir, c.Data.StatusFile)
}

// CredentialsPath returns the path of the credential list.
func (c *Config) CredentialsPath() string {
	return filepath.Join(c.Data.Dir, c.Data.CredentialsFile)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
