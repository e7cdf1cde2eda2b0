package config_test

import (
	"testing"

	"github.com/RookieGameDevs/revived/config"
)

func TestDefaultStoreConfig(t *testing.T) {
	cfg := config.DefaultStoreConfig("app")

	if cfg.Name != "app" {
		t.Errorf("Name = %q, want %q", cfg.Name, "app")
	}
	if cfg.Observer != "noop" {
		t.Errorf("Observer = %q, want %q", cfg.Observer, "noop")
	}
}

func TestStoreConfig_Merge(t *testing.T) {
	tests := []struct {
		name   string
		source config.StoreConfig
		want   config.StoreConfig
	}{
		{
			name:   "empty source keeps defaults",
			source: config.StoreConfig{},
			want:   config.StoreConfig{Name: "app", Observer: "noop"},
		},
		{
			name:   "observer override",
			source: config.StoreConfig{Observer: "slog"},
			want:   config.StoreConfig{Name: "app", Observer: "slog"},
		},
		{
			name:   "full override",
			source: config.StoreConfig{Name: "other", Observer: "slog"},
			want:   config.StoreConfig{Name: "other", Observer: "slog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultStoreConfig("app")
			cfg.Merge(&tt.source)

			if cfg != tt.want {
				t.Errorf("merged config = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestStoreConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.StoreConfig
		wantErr bool
	}{
		{name: "valid", cfg: config.StoreConfig{Name: "app", Observer: "noop"}, wantErr: false},
		{name: "missing name", cfg: config.StoreConfig{Observer: "noop"}, wantErr: true},
		{name: "missing observer", cfg: config.StoreConfig{Name: "app"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
