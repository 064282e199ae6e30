// Package config handles project discovery and configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Config holds the helmsman project configuration.
type Config struct {
	// Root is the project root directory (contains manifests/).
	Root string

	// ManifestsDir is the path to the values files directory.
	ManifestsDir string

	// OutputDir is the default directory for rendered manifests.
	OutputDir string
}

// FindRoot searches upward from the current directory to find the project
// root, identified by the presence of a manifests/ directory.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		manifestsDir := filepath.Join(dir, "manifests")
		if info, err := os.Stat(manifestsDir); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("project root not found (no manifests/ directory)")
}

// Load finds the project root and returns a Config.
func Load() (*Config, error) {
	root, err := FindRoot()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Root:         root,
		ManifestsDir: filepath.Join(root, "manifests"),
		OutputDir:    filepath.Join(root, "rendered"),
	}

	return cfg, nil
}

// ValuesFiles lists the values files in the manifests directory, sorted for
// stable render order.
func (c *Config) ValuesFiles() ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(c.ManifestsDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		files = append(files, matches...)
	}

	sort.Strings(files)
	return files, nil
}
