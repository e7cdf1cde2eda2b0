package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RookieGameDevs/revived/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "store.yaml", "name: app\nobserver: slog\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Name != "app" || cfg.Observer != "slog" {
		t.Errorf("Load() = %+v, want name=app observer=slog", cfg)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "store.json", `{"name": "app", "observer": "slog"}`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Name != "app" || cfg.Observer != "slog" {
		t.Errorf("Load() = %+v, want name=app observer=slog", cfg)
	}
}

func TestLoad_PartialFileFallsBackToDefaults(t *testing.T) {
	path := writeFile(t, "store.yml", "name: app\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Observer != "noop" {
		t.Errorf("Observer = %q, want default %q", cfg.Observer, "noop")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
		},
		{
			name: "unsupported extension",
			path: func(t *testing.T) string { return writeFile(t, "store.toml", "name = 'app'") },
		},
		{
			name: "malformed yaml",
			path: func(t *testing.T) string { return writeFile(t, "store.yaml", "name: [unterminated") },
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string { return writeFile(t, "store.json", "{") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := config.Load(tt.path(t)); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("REVIVED_STORE_NAME", "env-store")
	t.Setenv("REVIVED_STORE_OBSERVER", "slog")

	cfg, err := config.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	if cfg.Name != "env-store" || cfg.Observer != "slog" {
		t.Errorf("FromEnv() = %+v, want name=env-store observer=slog", cfg)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	// t.Setenv registers restoration; unsetting afterwards leaves the
	// variables absent for this test so envDefault values apply.
	for _, key := range []string{"REVIVED_STORE_NAME", "REVIVED_STORE_OBSERVER"} {
		t.Setenv(key, "placeholder")
		os.Unsetenv(key)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	if cfg.Name != "store" || cfg.Observer != "noop" {
		t.Errorf("FromEnv() = %+v, want defaults name=store observer=noop", cfg)
	}
}
