package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TowersFile is the config file name looked up in each search location.
const TowersFile = "towers.yaml"

// LoadTowerDefense loads the tower defense configuration.
// Search order: customPath -> ~/.arcade/configs/towers.yaml ->
// ./configs/towers.yaml -> embedded default.
//
// Only a broken customPath is an error; unreadable or invalid files in
// the other locations are skipped.
func LoadTowerDefense(customPath string) (TowerDefenseConfig, error) {
	return load(customPath, TowersFile, defaultTowersYAML, DefaultTowerDefenseConfig)
}

// load implements the search order for any config type. Files are decoded
// over the defaults, so a file only needs the keys it changes.
func load[T any](customPath, filename string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(filename) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

// searchPaths lists the user and local locations for filename.
func searchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
