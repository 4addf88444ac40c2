package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the snapshot file name inside the storage location
const DefaultFileName = "settings.json"

// Storage overrides the storage settings of the store
type Storage struct {
	// Enabled overrides ENABLE_STORAGE when set
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	// URL overrides STORAGE_DIR; any afs URL or a local path
	URL      string `yaml:"url,omitempty" json:"url,omitempty"`
	FileName string `yaml:"fileName,omitempty" json:"fileName,omitempty"`
}

type Config struct {
	Storage *Storage `yaml:"storage,omitempty" json:"storage,omitempty"`
	// Exclusions lists extra setting names that must never be persisted
	Exclusions []string `yaml:"exclusions,omitempty" json:"exclusions,omitempty"`
}

// Load reads configuration from URL (local path or any afs supported location)
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", URL, err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Storage != nil && strings.ContainsAny(c.Storage.FileName, `/\`) {
		return fmt.Errorf("storage.fileName %q must not contain a path separator", c.Storage.FileName)
	}
	for i, name := range c.Exclusions {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("exclusions[%d] is empty", i)
		}
	}
	return nil
}

// FileName returns the configured snapshot file name or DefaultFileName
func (c *Config) FileName() string {
	if c == nil || c.Storage == nil || c.Storage.FileName == "" {
		return DefaultFileName
	}
	return c.Storage.FileName
}
