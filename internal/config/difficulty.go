package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset is a named adjustment of the starting balance.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty accepts a preset name, case-insensitively.
// The empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return DifficultyNormal, nil
	}
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyTowerDefensePreset scales starting resources and lives.
// Normal leaves the loaded values untouched; the catalog is never changed.
func ApplyTowerDefensePreset(cfg *TowerDefenseConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Resources *= 2
		cfg.Player.Lives *= 2
	case DifficultyHard:
		cfg.Player.Resources = cfg.Player.Resources * 3 / 5
		cfg.Player.Lives = max(1, cfg.Player.Lives/2)
	}
}
