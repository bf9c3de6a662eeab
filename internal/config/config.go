package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all pasteblock configuration.
type Config struct {
	MaxChunkLength int    `toml:"max_chunk_length"`
	Marker         string `toml:"marker"`

	Export  ExportConfig  `toml:"export"`
	History HistoryConfig `toml:"history"`
	Watch   WatchConfig   `toml:"watch"`
}

type ExportConfig struct {
	Dir      string `toml:"dir"`
	Compress bool   `toml:"compress"`
}

type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	DBPath  string `toml:"db_path"`
}

type WatchConfig struct {
	DebounceMs int `toml:"debounce_ms"`
}

// DefaultConfig returns config with production defaults.
func DefaultConfig() Config {
	return Config{
		MaxChunkLength: 4950,
		Marker:         "[&$]",
		Export: ExportConfig{
			Dir:      "~/pasteblock/blocks",
			Compress: false,
		},
		History: HistoryConfig{
			Enabled: true,
			DBPath:  "~/.local/share/pasteblock/history.db",
		},
		Watch: WatchConfig{
			DebounceMs: 250,
		},
	}
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		cfg.History.DBPath = filepath.Join(xdg, "pasteblock", "history.db")
	}

	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	// Expand ~ in paths
	cfg.Export.Dir = expandHome(cfg.Export.Dir)
	cfg.History.DBPath = expandHome(cfg.History.DBPath)

	return cfg, nil
}

// Validate rejects configuration the segmenter is undefined over. Called at
// the boundary before any segmentation runs.
func (c Config) Validate() error {
	if c.MaxChunkLength < 1 {
		return fmt.Errorf("invalid configuration: max_chunk_length must be >= 1, got %d", c.MaxChunkLength)
	}
	if c.Marker == "" {
		return fmt.Errorf("invalid configuration: marker must be non-empty")
	}
	if c.Watch.DebounceMs < 0 {
		return fmt.Errorf("invalid configuration: debounce_ms must be >= 0, got %d", c.Watch.DebounceMs)
	}
	return nil
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "pasteblock", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "pasteblock", "config.toml"))
	}

	return paths
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
