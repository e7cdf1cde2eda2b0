// Package config defines store configuration and its loading helpers.
//
// Configuration follows the registry-resolution pattern: the Observer field
// is a string naming an entry in the observability registry, so configs can
// live in YAML or JSON files and be resolved at store construction time.
package config

import "fmt"

// StoreConfig defines configuration for a state store.
//
// Example YAML:
//
//	name: app
//	observer: slog
type StoreConfig struct {
	// Name identifies the store in emitted observability events.
	Name string `json:"name" yaml:"name" env:"REVIVED_STORE_NAME" envDefault:"store"`

	// Observer names the observer to resolve via the observability registry.
	Observer string `json:"observer" yaml:"observer" env:"REVIVED_STORE_OBSERVER" envDefault:"noop"`
}

// DefaultStoreConfig returns a configuration with the no-op observer.
func DefaultStoreConfig(name string) StoreConfig {
	return StoreConfig{
		Name:     name,
		Observer: "noop",
	}
}

// Merge overlays non-zero fields from source onto c.
func (c *StoreConfig) Merge(source *StoreConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}

	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// Validate checks the configuration for required fields.
func (c *StoreConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("store name is required")
	}

	if c.Observer == "" {
		return fmt.Errorf("observer name is required")
	}

	return nil
}
