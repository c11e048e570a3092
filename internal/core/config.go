package core

// RuntimeConfig is passed to a game when it is reset.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second driven by the platform
}

// DefaultConfig returns an 80x24 screen at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameSeconds is the wall-clock length of one frame at TickRate.
func (c RuntimeConfig) FrameSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int    // Resources earned from defeated enemies
	GameOver bool   // A terminal outcome has been reached
	Paused   bool   // Simulation time is frozen
	Message  string // Final banner, empty while playing
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState
}
