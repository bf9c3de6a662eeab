package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxChunkLength != 4950 {
		t.Errorf("MaxChunkLength = %d", cfg.MaxChunkLength)
	}
	if cfg.Marker != "[&$]" {
		t.Errorf("Marker = %q", cfg.Marker)
	}
	if cfg.Export.Dir != "~/pasteblock/blocks" {
		t.Errorf("Export.Dir = %q", cfg.Export.Dir)
	}
	if cfg.Export.Compress {
		t.Error("Export.Compress should default to false")
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled should default to true")
	}
	if cfg.Watch.DebounceMs != 250 {
		t.Errorf("Watch.DebounceMs = %d", cfg.Watch.DebounceMs)
	}
}

func TestLoad_NoConfig(t *testing.T) {
	// Point XDG to an empty dir so no config file is found
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.MaxChunkLength != 4950 {
		t.Errorf("MaxChunkLength = %d", cfg.MaxChunkLength)
	}
	// Paths should be expanded (no ~/ prefix left)
	if strings.HasPrefix(cfg.Export.Dir, "~/") {
		t.Errorf("Export.Dir not expanded: %q", cfg.Export.Dir)
	}
	if strings.HasPrefix(cfg.History.DBPath, "~/") {
		t.Errorf("History.DBPath not expanded: %q", cfg.History.DBPath)
	}
}

func TestLoad_FromFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())

	dir := filepath.Join(xdg, "pasteblock")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `max_chunk_length = 2000
marker = "==CUT=="

[export]
dir = "/tmp/blocks"
compress = true
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxChunkLength != 2000 {
		t.Errorf("MaxChunkLength = %d", cfg.MaxChunkLength)
	}
	if cfg.Marker != "==CUT==" {
		t.Errorf("Marker = %q", cfg.Marker)
	}
	if cfg.Export.Dir != "/tmp/blocks" {
		t.Errorf("Export.Dir = %q", cfg.Export.Dir)
	}
	if !cfg.Export.Compress {
		t.Error("Export.Compress = false")
	}
	// Unset keys keep defaults
	if cfg.Watch.DebounceMs != 250 {
		t.Errorf("Watch.DebounceMs = %d", cfg.Watch.DebounceMs)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())

	dir := filepath.Join(xdg, "pasteblock")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("max_chunk_length = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error for broken TOML")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	bad := cfg
	bad.MaxChunkLength = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for max_chunk_length = 0")
	}

	bad = cfg
	bad.Marker = ""
	if err := bad.Validate(); err == nil {
		t.Error("expected error for empty marker")
	}

	bad = cfg
	bad.Watch.DebounceMs = -1
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative debounce")
	}
}
