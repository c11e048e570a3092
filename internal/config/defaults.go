package config

import (
	_ "embed"
)

//go:embed defaults/towers.yaml
var defaultTowersYAML []byte

// DefaultTowerDefenseConfig returns the built-in catalog and settings.
// It matches defaults/towers.yaml and is used if the embedded file
// cannot be parsed.
func DefaultTowerDefenseConfig() TowerDefenseConfig {
	return TowerDefenseConfig{
		Player: PlayerConfig{
			Resources: 100,
			Lives:     10,
		},
		Camera: CameraConfig{
			Speed: 10.0,
		},
		Spawn: SpawnConfig{
			WaveDivisor: 10,
			MaxEnemies:  400,
		},
		Timing: TimingConfig{
			FrameTime:    0.01,
			Mode:         TimingFixed,
			MaxFrameTime: 0.1,
		},
		Render: RenderConfig{
			UnitsPerCell: 10,
		},
		Towers: []TowerSpec{
			{Name: "Archer Tower", Cost: 50, Damage: 5, Range: 100, RateOfFire: 1.0},
			{Name: "Mage Tower", Cost: 75, Damage: 10, Range: 200, RateOfFire: 2.0},
		},
		Enemies: []EnemySpec{
			{Name: "Goblin", HitPoints: 10, Speed: 2.0, Reward: 20},
			{Name: "Orc", HitPoints: 20, Speed: 1.5, Reward: 30},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTowersYAML
}
