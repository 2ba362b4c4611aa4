package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is wrapped by Load when an explicitly requested file is absent.
var ErrNotFound = errors.New("config: file not found")

// Load loads the game configuration.
// Search order: customPath -> ~/.flappy/config.yaml -> ./configs/flappy.yaml -> embedded default.
//
// The returned settings are always usable. A non-nil error reports a config
// source that was requested or found but could not be used; in that case the
// defaults are returned and the caller is expected to log the error once.
func Load(customPath string) (Settings, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath, true)
		return deref(cfg), err
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath, false); err != nil || cfg != nil {
			return deref(cfg), err
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "flappy.yaml"), false); err != nil || cfg != nil {
		return deref(cfg), err
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and parses one file. Absent optional files yield (nil, nil).
func loadFile(path string, required bool) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if !required {
				return nil, nil
			}
			def := Default()
			return &def, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		def := Default()
		return &def, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return &cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Parse decodes a YAML (or JSON) document over the defaults, so keys absent
// from the document keep their default value. On error the plain defaults
// are returned alongside it.
func Parse(data []byte) (Settings, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	cfg.sanitize()
	return cfg, nil
}

// Marshal encodes settings back to YAML.
func Marshal(s Settings) ([]byte, error) {
	return yaml.Marshal(s)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", filename)
}

func deref(cfg *Settings) Settings {
	if cfg == nil {
		return Default()
	}
	return *cfg
}
