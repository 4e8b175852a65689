package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the built-in configuration in Load results.
const SourceEmbedded = "embedded"

// Load loads Looper configuration and reports where it came from.
// Search order: customPath -> ~/.looper/configs/looper.yaml -> ./configs/looper.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (LooperConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LooperConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return LooperConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("looper.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "looper.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, localPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultLooperYAML)
	if err != nil {
		return DefaultLooperConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (LooperConfig, error) {
	cfg := DefaultLooperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LooperConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return LooperConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg LooperConfig) ([]byte, error) {
	return yaml.Marshal(&cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".looper", "configs", filename)
}
