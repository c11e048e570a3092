package towerdefense

import (
	"github.com/vovakirdan/tui-towers/internal/config"
	"github.com/vovakirdan/tui-towers/internal/registry"
)

// Mode is a registered variant of the game, one per difficulty preset.
type Mode struct {
	ID          string
	Title       string
	Description string
	Preset      config.DifficultyPreset
}

// Modes lists the registered variants in menu order.
var Modes = []Mode{
	{
		ID:          "towers-easy",
		Title:       "Tower Defense (Easy)",
		Description: "Double resources and lives",
		Preset:      config.DifficultyEasy,
	},
	{
		ID:          "towers",
		Title:       "Tower Defense",
		Description: "Configured starting balance",
		Preset:      config.DifficultyNormal,
	},
	{
		ID:          "towers-hard",
		Title:       "Tower Defense (Hard)",
		Description: "Less gold, half the lives",
		Preset:      config.DifficultyHard,
	},
}

// ModeFor returns the mode registered for a preset, defaulting to normal.
func ModeFor(preset config.DifficultyPreset) Mode {
	for _, m := range Modes {
		if m.Preset == preset {
			return m
		}
	}
	return Modes[1]
}

// ModeByID returns the mode registered under id.
func ModeByID(id string) (Mode, bool) {
	for _, m := range Modes {
		if m.ID == id {
			return m, true
		}
	}
	return Mode{}, false
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// LoadConfig loads the configuration for a preset using the path set by
// SetConfigPath and validates it.
func LoadConfig(preset config.DifficultyPreset) (config.TowerDefenseConfig, error) {
	cfg, err := config.LoadTowerDefense(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyTowerDefensePreset(&cfg, preset)
	return cfg, cfg.Validate()
}

func init() {
	for i, m := range Modes {
		registry.Register(registry.GameInfo{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Order:       i,
		}, func() registry.Game {
			return New(m)
		})
	}
}
