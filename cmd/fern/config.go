package main

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when no .fernrc.yaml is found walking up
// from a starting directory.
var ErrConfigNotFound = errors.New("no .fernrc.yaml found")

// Config represents the .fernrc.yaml configuration file.
type Config struct {
	// Root is the `root` setting, relative to the directory the config file
	// was found in. It is parsed but not read by fern check or the module
	// loader.
	Root string `yaml:"root,omitempty"`

	// Ext is the source file extension fern check walks for. Defaults to
	// "fn" when empty.
	Ext string `yaml:"ext,omitempty"`
}

// Extension returns the configured file extension, defaulting to "fn".
func (c *Config) Extension() string {
	if c == nil || c.Ext == "" {
		return "fn"
	}

	return c.Ext
}

// defaultConfigNames are the filenames searched for in each candidate
// directory.
var defaultConfigNames = []string{".fernrc.yaml", ".fernrc.yml"}

// loadConfigWithDir loads config and returns both the config and the
// directory it was found in, walking up from startDir to find .fernrc.yaml.
func loadConfigWithDir(startDir string) (*Config, string, error) {
	dir := startDir
	if abs, err := filepath.Abs(startDir); err == nil {
		dir = abs
	}

	for {
		cfg, err := loadConfigFromDir(dir)
		if err == nil {
			return cfg, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, startDir, ErrConfigNotFound
		}

		dir = parent
	}
}

func loadConfigFromDir(dir string) (*Config, error) {
	for _, name := range defaultConfigNames {
		path := filepath.Join(dir, name)

		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var cfg Config

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}

		return &cfg, nil
	}

	return nil, ErrConfigNotFound
}
