package config

import (
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// Load reads the configuration from the given directory. If path names
// the configuration file itself, its directory is used.
func Load(path string) (*Config, error) {
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	contents, err := os.ReadFile(filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}

	out := Default()
	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Initialize writes the default configuration file into dir, failing
// if one already exists.
func Initialize(dir string) (string, error) {
	dest := filepath.Join(dir, ConfigurationName)
	if _, err := os.Stat(dest); err == nil {
		return dest, os.ErrExist
	}
	return dest, os.WriteFile(dest, DefaultConfigData(), 0644)
}
