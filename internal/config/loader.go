package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "t2048.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Custom path is explicit, so failures are reported instead of skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	localPath := filepath.Join("configs", fileName)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := parse(data, localPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultYAML, "embedded default"); err == nil {
		return cfg, nil
	}
	return Default(), nil // Fallback to hardcoded if embed fails
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte, source string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", "config.yaml")
}
