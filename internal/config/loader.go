package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "snake3d.yaml"

// LoadSnake3D loads the game configuration. Values missing from the file
// keep their defaults. The result is validated.
// Search order: customPath -> ~/.snake3d/configs/snake3d.yaml -> ./configs/snake3d.yaml -> embedded default
func LoadSnake3D(customPath string) (Snake3DConfig, error) {
	cfg, _, err := LoadSnake3DWithSource(customPath)
	return cfg, err
}

// LoadSnake3DWithSource is LoadSnake3D that also reports where the
// configuration came from: a file path, "embedded" or "builtin".
func LoadSnake3DWithSource(customPath string) (Snake3DConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Snake3DConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Snake3DConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return Snake3DConfig{}, "", fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parse(data)
		if err != nil {
			continue
		}
		if err := cfg.Validate(); err != nil {
			return Snake3DConfig{}, "", fmt.Errorf("invalid config %s: %w", path, err)
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSnake3DYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultSnake3DConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Snake3DConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// parse decodes YAML over the defaults so partial files are accepted.
func parse(data []byte) (Snake3DConfig, error) {
	cfg := DefaultSnake3DConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Snake3DConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake3d", "configs", filename)
}
