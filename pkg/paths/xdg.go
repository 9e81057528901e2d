// Package paths resolves the directories masonry reads from and writes to.
//
// Resolution order:
// 1. MASONRY_HOME (portable root) → $MASONRY_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/masonry
// 3. Platform defaults → ~/.config/masonry, ~/.local/state/masonry
package paths

import (
	"os"
	"path/filepath"
)

const appName = "masonry"

func resolve(portableSub, xdgVar string, fallback ...string) string {
	if home := os.Getenv("MASONRY_HOME"); home != "" {
		return filepath.Join(home, portableSub)
	}
	if dir := os.Getenv(xdgVar); dir != "" {
		return filepath.Join(dir, appName)
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(append(append([]string{homeDir}, fallback...), appName)...)
	}
	return ""
}

// ConfigDir holds the fallback dashboard file.
func ConfigDir() string {
	return resolve("config", "XDG_CONFIG_HOME", ".config")
}

// StateDir holds log files and saved state snapshots.
func StateDir() string {
	return resolve("state", "XDG_STATE_HOME", ".local", "state")
}
