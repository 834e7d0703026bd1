package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional per-user configuration file.
type Config struct {
	// Database is the registry database path.
	Database string `yaml:"database"`

	// ExportDir is where export files land when --out is not given.
	ExportDir string `yaml:"export_dir"`
}

// LoadConfig reads the config file at path, or the default
// ~/.patreg/config.yaml when path is empty. A missing file is not an
// error - every setting has a flag or built-in default.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, nil
		}
		path = filepath.Join(home, ".patreg", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
