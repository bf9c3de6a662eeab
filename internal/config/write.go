package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the pasteblock config directory path.
// Uses $XDG_CONFIG_HOME/pasteblock if set, otherwise ~/.config/pasteblock.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pasteblock")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pasteblock")
}

// WriteDefault writes a default config.toml.
// Returns the config file path. Skips if config.toml already exists.
func WriteDefault() (string, error) {
	dir := ConfigDir()
	path := filepath.Join(dir, "config.toml")

	if _, err := os.Stat(path); err == nil {
		return path, nil // already exists
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	content := `max_chunk_length = 4950
marker = "[&$]"

[export]
dir = "~/pasteblock/blocks"
compress = false

[history]
enabled = true
db_path = "~/.local/share/pasteblock/history.db"

[watch]
debounce_ms = 250
`

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	return path, nil
}

// CompressHome replaces $HOME prefix with ~/ for portable display of paths.
func CompressHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home+"/") {
		return "~/" + path[len(home)+1:]
	}
	if path == home {
		return "~"
	}
	return path
}
