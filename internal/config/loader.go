package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "lanejump.yaml"

// Load loads and validates the game configuration.
// Search order: customPath -> ~/.lanejump/configs/lanejump.yaml -> ./configs/lanejump.yaml -> embedded default.
// Keys missing from a file keep their default values. A file that exists but
// cannot be read or fails validation is an error; only missing files are skipped.
func Load(customPath string) (LaneJumpConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LaneJumpConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return LaneJumpConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(FileName), filepath.Join("configs", FileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return LaneJumpConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return LaneJumpConfig{}, fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, err := Parse(defaultLaneJumpYAML)
	if err != nil {
		return DefaultLaneJumpConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (LaneJumpConfig, error) {
	cfg := DefaultLaneJumpConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LaneJumpConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return LaneJumpConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg LaneJumpConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lanejump", "configs", filename)
}
