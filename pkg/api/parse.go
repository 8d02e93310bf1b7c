package api

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a .blotter.yaml file, sets Dir/FilePath, and validates it.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing configuration file: %w", err)
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}
	c.FilePath = absPath
	c.Dir = filepath.Dir(absPath)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration %s: %w", filename, err)
	}

	return &c, nil
}
