// Package hostapp resolves paths for the desktop assistant application whose
// configuration the wizard writes.
package hostapp

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigFileName is the host application's configuration file name.
const ConfigFileName = "claude_desktop_config.json"

// supportDirName is the host application's directory under the user-level
// config root (~/Library/Application Support on macOS, ~/.config on Linux;
// xdg handles the per-OS layout).
const supportDirName = "Claude"

// Host describes where the host application keeps its files. Fields are
// plain paths so tests can point a Host at a temp directory instead of the
// real home directory.
type Host struct {
	// SupportDir is the application support directory whose existence
	// indicates the host application is installed.
	SupportDir string

	// ConfigPath is the configuration file the host application reads.
	ConfigPath string
}

// Detect returns the Host for the current user.
func Detect() Host {
	dir := filepath.Join(xdg.ConfigHome, supportDirName)
	return Host{
		SupportDir: dir,
		ConfigPath: filepath.Join(dir, ConfigFileName),
	}
}

// Installed reports whether the host application's support directory exists.
func (h Host) Installed() bool {
	info, err := os.Stat(h.SupportDir)
	return err == nil && info.IsDir()
}

// ConfigExists reports whether the configuration file exists. Symlinks are
// followed, so a dangling link counts as absent.
func (h Host) ConfigExists() bool {
	info, err := os.Stat(h.ConfigPath)
	return err == nil && info.Mode().IsRegular()
}
