package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/algoviz/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.Width != 800 || cfg.Cache.Backend != BackendFile {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[render]
width = 1024
style = "handdrawn"
formats = ["svg", "dot"]
seed = 7

[cache]
backend = "redis"
redis_addr = "cache:6379"
ttl = "90m"

[share]
backend = "mongo"
database = "viz"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.Width != 1024 || cfg.Render.Height != 600 {
		t.Errorf("frame = %vx%v, want 1024x600", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.Style != "handdrawn" || cfg.Render.Seed != 7 {
		t.Errorf("render = %+v", cfg.Render)
	}
	if strings.Join(cfg.Render.Formats, ",") != "svg,dot" {
		t.Errorf("formats = %v", cfg.Render.Formats)
	}
	if cfg.Cache.TTL.Duration != 90*time.Minute {
		t.Errorf("ttl = %v, want 90m", cfg.Cache.TTL)
	}
	if cfg.Share.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("unset keys should keep defaults, got %q", cfg.Share.MongoURI)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[render\nwidth = 1"},
		{"unknown key", "[render]\ncolour = \"red\""},
		{"bad backend", "[cache]\nbackend = \"memcached\""},
		{"bad share backend", "[share]\nbackend = \"s3\""},
		{"bad duration", "[cache]\nttl = \"soon\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("want INVALID_INPUT, got %v", err)
			}
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	want := Default()
	want.Render.Style = "handdrawn"
	want.Cache.TTL = Duration{time.Hour}

	if err := Write(want, path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Render.Style != "handdrawn" || got.Cache.TTL.Duration != time.Hour {
		t.Errorf("round trip lost values: %+v", got)
	}
}

func TestPathEnvOverride(t *testing.T) {
	t.Setenv(EnvPath, "/etc/algoviz.toml")
	p, err := Path()
	if err != nil || p != "/etc/algoviz.toml" {
		t.Errorf("Path() = %q, %v", p, err)
	}
}

func TestPathXDG(t *testing.T) {
	t.Setenv(EnvPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")
	p, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if want := filepath.Join("/tmp/custom-config", AppName, "config.toml"); p != want {
		t.Errorf("Path() = %q, want %q", p, want)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	dir, err := CacheDir()
	if err != nil {
		t.Fatalf("CacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", AppName); dir != want {
		t.Errorf("CacheDir() = %q, want %q", dir, want)
	}

	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")
	dir, _ = CacheDir()
	if want := filepath.Join("/tmp/custom-cache", AppName); dir != want {
		t.Errorf("CacheDir() with XDG_CACHE_HOME = %q, want %q", dir, want)
	}
}
