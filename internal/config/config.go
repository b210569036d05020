package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vvka-141/depmap/pkg/depmap"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// DatabaseConfig is the structured alternative to a connection string.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// IsEmpty reports whether no field is set.
func (d DatabaseConfig) IsEmpty() bool {
	return d == DatabaseConfig{}
}

// ProjectConfig is the content of depmap.yaml.
type ProjectConfig struct {
	// Connection is a PostgreSQL URI or key=value connection string.
	// Takes precedence over Database.
	Connection string         `yaml:"connection"`
	Database   DatabaseConfig `yaml:"database"`

	// Reference is a reference mapping file, relative to the config file.
	Reference string `yaml:"reference"`

	// Verify turns on checksum verification during conversion.
	Verify bool `yaml:"verify"`

	dir string
}

// ConfigFileName is looked up in the directory passed to Load.
const ConfigFileName = depmap.DefaultConfigFileName

// Load reads ConfigFileName from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", configPath, depmap.ErrInvalidConfig, err)
	}
	if cfg.Database.Port < 0 || cfg.Database.Port > 65535 {
		return nil, fmt.Errorf("%s: database.port %d out of range: %w", configPath, cfg.Database.Port, depmap.ErrInvalidConfig)
	}
	cfg.dir = dir
	return &cfg, nil
}

// ReferencePath returns Reference resolved against the config file's
// directory, or "" when no reference is configured.
func (c *ProjectConfig) ReferencePath() string {
	if c.Reference == "" || filepath.IsAbs(c.Reference) {
		return c.Reference
	}
	return filepath.Join(c.dir, c.Reference)
}
