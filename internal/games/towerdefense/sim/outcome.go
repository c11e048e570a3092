package sim

// Outcome is the terminal signal computed after every tick.
type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeOngoing:
		return "ongoing"
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the session.
func (o Outcome) Terminal() bool {
	return o == OutcomeWin || o == OutcomeLoss
}

// Evaluate inspects a settled state.
//
// Win (no enemies left) takes precedence over Loss (lives <= 0) when both
// hold. Nothing in the simulation decrements lives, so Loss is only seen
// on states that start with no lives.
func Evaluate(state *GameState) Outcome {
	if len(state.Enemies) == 0 {
		return OutcomeWin
	}
	if state.Lives <= 0 {
		return OutcomeLoss
	}
	return OutcomeOngoing
}
