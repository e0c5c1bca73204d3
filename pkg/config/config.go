// Package config loads the WordSpinneret configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/Code-Monger/WordSpinneret/pkg/dictionary"
)

// FileName is the name of the configuration file inside the config directory
const FileName = "config.yaml"

// Config holds the settings shared by the server and the CLI
type Config struct {
	// DefaultLanguage is used for documents opened without a language
	DefaultLanguage string `yaml:"default_language"`
	// DataDirs are extra directories searched under dicts/, most important first
	DataDirs []string `yaml:"data_dirs,omitempty"`
	// SystemDirs replace XDG_DATA_DIRS and the standard shared roots when set
	SystemDirs []string `yaml:"system_dirs,omitempty"`
	// Thesaurus enables synonym lookups
	Thesaurus bool `yaml:"thesaurus"`
	// MaxSuggestions caps the corrections returned per misspelled word
	MaxSuggestions int `yaml:"max_suggestions"`
	// Watch rescans the dictionaries when files change
	Watch bool `yaml:"watch"`
	// WatchDebounce is how long to wait for further changes before rescanning
	WatchDebounce time.Duration `yaml:"watch_debounce"`

	// configDir is where the file was found; its dicts/ is searched first
	configDir string
}

// Default returns the settings used when no configuration file exists
func Default() Config {
	return Config{
		DefaultLanguage: "en-US",
		Thesaurus:       true,
		MaxSuggestions:  8,
		Watch:           false,
		WatchDebounce:   dictionary.DefaultDebounce,
	}
}

// Dir returns the user configuration directory
func Dir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, dictionary.DefaultConfigDirName), nil
}

// DefaultPath returns the path of the user configuration file
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the configuration at path over the defaults. A path starting
// with ~ is expanded, and an empty path means DefaultPath. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("expanding config path: %w", err)
	}
	cfg.configDir = filepath.Dir(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.MaxSuggestions < 0 {
		return fmt.Errorf("max_suggestions must not be negative, got %d", c.MaxSuggestions)
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative, got %s", c.WatchDebounce)
	}
	return nil
}

// Locations returns the dictionary search locations described by the config
func (c Config) Locations() dictionary.Locations {
	loc := dictionary.DefaultLocations()
	if c.configDir != "" {
		loc.ConfigDir = c.configDir
	}
	loc.DataDirs = expandAll(c.DataDirs)
	if len(c.SystemDirs) > 0 {
		loc.SystemDirs = expandAll(c.SystemDirs)
	}
	return loc
}

// WriteDefault creates a configuration file with the default settings. An
// existing file is left alone.
func WriteDefault(path string) (bool, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

func expandAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if expanded, err := homedir.Expand(p); err == nil {
			p = expanded
		}
		out = append(out, p)
	}
	return out
}
