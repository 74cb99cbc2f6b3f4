package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/qrterm/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil || cfg != Default() {
		t.Errorf("Load(\"\") = %+v, %v", cfg, err)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
border = 2
level = "m"
autocaption = false

[theme]
light = "#ffffff"

[server]
addr = "127.0.0.1:9000"
cache_ttl = "1h"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Border != 2 || cfg.Level != "m" || cfg.Autocaption {
		t.Errorf("top-level = %+v", cfg)
	}
	if cfg.Theme.Light != "#ffffff" || cfg.Theme.Dark != "0" {
		t.Errorf("theme = %+v, want light override and default dark", cfg.Theme)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if ttl, _ := cfg.CacheTTL(); ttl != time.Hour {
		t.Errorf("CacheTTL() = %v, want 1h", ttl)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "border = "},
		{"negative border", "border = -1"},
		{"bad level", `level = "Z"`},
		{"bad color", "[theme]\nlight = \"white\""},
		{"bad ttl", "[server]\ncache_ttl = \"soon\""},
		{"negative ttl", "[server]\ncache_ttl = \"-1h\""},
		{"wrong type", `border = "four"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestCacheTTLEmpty(t *testing.T) {
	cfg := Default()
	cfg.Server.CacheTTL = ""
	if ttl, err := cfg.CacheTTL(); ttl != 0 || err != nil {
		t.Errorf("CacheTTL() = %v, %v", ttl, err)
	}
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := Dir("qrterm")
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", "qrterm") {
		t.Errorf("Dir() = %q", dir)
	}
}
