// Package tui provides the Bubble Tea integration for Looper: the game loop
// model, menus, the scoreboard and the SSH server that serves them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/looper/internal/core"
)

// TickMsg drives one game step. The game clock counts these, so level
// times follow the tick rate rather than the wall clock.
type TickMsg time.Time

// tickCmd schedules the next tick for cfg's tick rate.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickDuration(1), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
