// Package tui provides the Bubble Tea integration for Sky Runner.
// It handles the terminal UI loop, input mapping, the preset menu and the run log.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-runner/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// The interval matches the fixed clock the game integrates with.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(core.NewFixedClock(tickRate).Interval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
