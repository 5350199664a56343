package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/visnet/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
height = "800px"
resources = "remote"

[cache]
backend = "redis"
redis_addr = "localhost:6379"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Height != "800px" {
		t.Errorf("Height = %q, want 800px", cfg.Height)
	}
	if cfg.Width != "100%" {
		t.Errorf("Width = %q, want default preserved", cfg.Width)
	}
	if cfg.Resources != errors.ResourcesRemote {
		t.Errorf("Resources = %q, want remote", cfg.Resources)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoadRejectsBadResourceMode(t *testing.T) {
	path := writeConfig(t, `resources = "cdn"`)

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidResourceMode) {
		t.Fatalf("Load() error = %v, want INVALID_RESOURCE_MODE", err)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, `height = `)

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidOptions) {
		t.Fatalf("Load() error = %v, want INVALID_OPTIONS", err)
	}
}
