// Package config loads the tower defense catalog and session settings
// from YAML, with difficulty presets layered on top.
package config

import "fmt"

// TowerDefenseConfig is everything needed to start a session.
type TowerDefenseConfig struct {
	Player  PlayerConfig `yaml:"player"`
	Camera  CameraConfig `yaml:"camera"`
	Spawn   SpawnConfig  `yaml:"spawn"`
	Timing  TimingConfig `yaml:"timing"`
	Render  RenderConfig `yaml:"render"`
	Towers  []TowerSpec  `yaml:"towers"`
	Enemies []EnemySpec  `yaml:"enemies"`
}

// PlayerConfig holds the starting balance.
type PlayerConfig struct {
	Resources int `yaml:"resources"`
	Lives     int `yaml:"lives"`
}

// Vec is a world position.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// CameraConfig sets where the camera starts and how far one move goes.
type CameraConfig struct {
	Speed float64 `yaml:"speed"`
	Start Vec     `yaml:"start"`
}

// SpawnConfig controls wave spawning.
type SpawnConfig struct {
	Origin      Vec `yaml:"origin"`
	WaveDivisor int `yaml:"wave_divisor"`
	MaxEnemies  int `yaml:"max_enemies"` // 0 = unlimited
}

// Timing modes.
const (
	TimingFixed    = "fixed"    // every tick advances by FrameTime
	TimingVariable = "variable" // every tick advances by real elapsed time
)

// TimingConfig controls how much simulated time one tick covers.
type TimingConfig struct {
	FrameTime    float64 `yaml:"frame_time"`     // seconds per tick in fixed mode
	Mode         string  `yaml:"mode"`           // "fixed" or "variable"
	MaxFrameTime float64 `yaml:"max_frame_time"` // clamp for variable mode
}

// RenderConfig controls the terminal world view.
type RenderConfig struct {
	UnitsPerCell float64 `yaml:"units_per_cell"`
}

// TowerSpec is a catalog tower entry.
type TowerSpec struct {
	Name       string  `yaml:"name"`
	Cost       int     `yaml:"cost"`
	Damage     int     `yaml:"damage"`
	Range      float64 `yaml:"range"`
	RateOfFire float64 `yaml:"rate_of_fire"`
}

// EnemySpec is a catalog enemy entry.
type EnemySpec struct {
	Name      string  `yaml:"name"`
	HitPoints int     `yaml:"hit_points"`
	Speed     float64 `yaml:"speed"`
	Reward    int     `yaml:"reward"`
}

// Validate checks timing, scale, camera and every catalog entry.
// Catalog emptiness is reported by the simulation itself.
func (c TowerDefenseConfig) Validate() error {
	switch c.Timing.Mode {
	case TimingFixed, TimingVariable:
	default:
		return fmt.Errorf("config: unknown timing mode %q", c.Timing.Mode)
	}
	if c.Timing.FrameTime <= 0 {
		return fmt.Errorf("config: frame_time must be positive, got %v", c.Timing.FrameTime)
	}
	if c.Render.UnitsPerCell <= 0 {
		return fmt.Errorf("config: units_per_cell must be positive, got %v", c.Render.UnitsPerCell)
	}
	if c.Camera.Speed <= 0 {
		return fmt.Errorf("config: camera speed must be positive, got %v", c.Camera.Speed)
	}
	for _, t := range c.Towers {
		switch {
		case t.Name == "":
			return fmt.Errorf("config: tower without a name")
		case t.Cost < 0:
			return fmt.Errorf("config: tower %q: negative cost %d", t.Name, t.Cost)
		case t.Range < 0:
			return fmt.Errorf("config: tower %q: negative range %v", t.Name, t.Range)
		case t.RateOfFire < 0:
			return fmt.Errorf("config: tower %q: negative rate_of_fire %v", t.Name, t.RateOfFire)
		}
	}
	for _, e := range c.Enemies {
		switch {
		case e.Name == "":
			return fmt.Errorf("config: enemy without a name")
		case e.HitPoints < 0:
			return fmt.Errorf("config: enemy %q: negative hit_points %d", e.Name, e.HitPoints)
		}
	}
	return nil
}

// FrameSeconds returns the simulated time for a tick whose real duration
// was wall seconds.
func (t TimingConfig) FrameSeconds(wall float64) float64 {
	if t.Mode != TimingVariable {
		return t.FrameTime
	}
	if t.MaxFrameTime > 0 && wall > t.MaxFrameTime {
		return t.MaxFrameTime
	}
	return max(wall, 0)
}
