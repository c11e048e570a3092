// Package tui runs registered games in a terminal with Bubble Tea, either
// locally or per SSH session.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-towers/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Time time.Time
	Loop int64 // Tick loop that scheduled the message
}

var tickLoops atomic.Int64

// newTickLoop returns an identifier for a fresh tick loop. Ticks still in
// flight from an abandoned game carry an older identifier and are dropped.
func newTickLoop() int64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
