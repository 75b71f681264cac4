package configs

import (
	"os"
	"path/filepath"
)

// ConfigPathEnv overrides the location of config.toml.
const ConfigPathEnv = "PASTEPORTAL_CONFIG"

type Settings struct {
	ConfigDir  string
	ConfigPath string
}

var PortalSettings *Settings

func init() {
	PortalSettings = DefaultSettings()
}

// DefaultSettings resolves the config location from the environment.
func DefaultSettings() *Settings {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return &Settings{
			ConfigDir:  filepath.Dir(path),
			ConfigPath: path,
		}
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		// No $HOME or XDG dirs; fall back to the working directory.
		configDir = "."
	}

	dir := filepath.Join(configDir, "pasteportal")
	return &Settings{
		ConfigDir:  dir,
		ConfigPath: filepath.Join(dir, "config.toml"),
	}
}
