package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load reads a StoreConfig from a YAML or JSON file.
//
// The format is chosen by extension: .yaml/.yml use YAML, .json uses JSON.
// Missing fields fall back to DefaultStoreConfig values and the result is
// validated before being returned.
func Load(path string) (StoreConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StoreConfig{}, fmt.Errorf("read config file: %w", err)
	}

	var loaded StoreConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return StoreConfig{}, fmt.Errorf("parse yaml config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &loaded); err != nil {
			return StoreConfig{}, fmt.Errorf("parse json config: %w", err)
		}
	default:
		return StoreConfig{}, fmt.Errorf("unsupported config format: %s", ext)
	}

	cfg := DefaultStoreConfig("store")
	cfg.Merge(&loaded)

	if err := cfg.Validate(); err != nil {
		return StoreConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// FromEnv loads a StoreConfig from environment variables.
//
// Recognized variables: REVIVED_STORE_NAME and REVIVED_STORE_OBSERVER, with
// defaults "store" and "noop".
func FromEnv() (StoreConfig, error) {
	var cfg StoreConfig
	if err := env.Parse(&cfg); err != nil {
		return StoreConfig{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return StoreConfig{}, fmt.Errorf("invalid env config: %w", err)
	}

	return cfg, nil
}
