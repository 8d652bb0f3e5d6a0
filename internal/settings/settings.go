// Package settings provides wizard configuration via Viper.
//
// Settings control behavior the wizard cannot guess: what to do when a
// selected server is already configured, and whether the document lives at
// the host path directly or inside the project directory behind a symlink.
package settings

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/adrg/xdg"
)

// AppName is the application name used for config file naming.
const AppName = "mcp-setup"

// Layout values for the config_layout setting.
const (
	// LayoutDirect writes the document at the host-expected path.
	LayoutDirect = "direct"

	// LayoutSymlink writes the document inside the project directory and
	// links the host path to it.
	LayoutSymlink = "symlink"
)

// Settings represents the wizard's own configuration.
type Settings struct {
	// MergePolicy is "skip" or "overwrite": what to do when a selected
	// server already exists in the document.
	MergePolicy string `mapstructure:"merge_policy" yaml:"merge_policy"`

	// ConfigLayout is "direct" or "symlink".
	ConfigLayout string `mapstructure:"config_layout" yaml:"config_layout"`

	// DefaultProjectDir is the default offered at the directory prompt.
	DefaultProjectDir string `mapstructure:"default_project_dir" yaml:"default_project_dir"`

	// RegistryManifest is an optional TOML file extending the built-in
	// server catalog.
	RegistryManifest string `mapstructure:"registry_manifest" yaml:"registry_manifest"`

	// ServersRepo is the git URL cloned for source-distributed servers.
	ServersRepo string `mapstructure:"servers_repo" yaml:"servers_repo"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	// Environment variable support
	viper.SetEnvPrefix("MCP_SETUP")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("merge_policy", "skip")
	viper.SetDefault("config_layout", LayoutDirect)
	viper.SetDefault("default_project_dir", filepath.Join(xdg.Home, "mcp"))
	viper.SetDefault("servers_repo", "https://github.com/modelcontextprotocol/servers.git")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded settings or default values if no file is found (when path is empty).
func Load(path string) (*Settings, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks enum-valued settings.
func (s *Settings) Validate() error {
	switch s.MergePolicy {
	case "skip", "overwrite":
	default:
		return errors.Newf("invalid merge_policy %q (valid: skip, overwrite)", s.MergePolicy)
	}

	switch s.ConfigLayout {
	case LayoutDirect, LayoutSymlink:
	default:
		return errors.Newf("invalid config_layout %q (valid: %s, %s)", s.ConfigLayout, LayoutDirect, LayoutSymlink)
	}

	return nil
}
