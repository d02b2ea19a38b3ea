package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the optional user configuration, loaded from config.yaml in
// the data directory (or $QUICKDROP_CONFIG).
type Config struct {
	DataDir          string
	DefaultCategory  string
	AutosaveInterval time.Duration
	Editor           string
}

// fileConfig is the on-disk shape of Config. Durations are written as
// strings ("2s", "500ms") and parsed on load.
type fileConfig struct {
	DataDir          string `yaml:"data_dir"`
	DefaultCategory  string `yaml:"default_category"`
	AutosaveInterval string `yaml:"autosave_interval"`
	Editor           string `yaml:"editor"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		DefaultCategory:  "text",
		AutosaveInterval: 2 * time.Second,
		Editor:           defaultEditor(),
	}
}

func defaultEditor() string {
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vi"
}

// ConfigPath returns the location of the config file.
func ConfigPath() string {
	if custom := os.Getenv("QUICKDROP_CONFIG"); custom != "" {
		return custom
	}
	return filepath.Join(DefaultDataDir(), "config.yaml")
}

// LoadConfig reads the config file, falling back to defaults when the
// file is missing. A present-but-invalid file is an error; silently
// ignoring a typo-ridden config helps nobody.
func LoadConfig() (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return config, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.DataDir = expandHomeDir(raw.DataDir)
	if raw.DefaultCategory != "" {
		config.DefaultCategory = raw.DefaultCategory
	}
	if raw.Editor != "" {
		config.Editor = raw.Editor
	}
	if raw.AutosaveInterval != "" {
		interval, err := time.ParseDuration(raw.AutosaveInterval)
		if err != nil {
			return config, fmt.Errorf("invalid autosave_interval: %w", err)
		}
		if interval > 0 {
			config.AutosaveInterval = interval
		}
	}

	return config, nil
}

// expandHomeDir expands a leading `~/` to the user home directory.
func expandHomeDir(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
