// Package tui runs registered games in a terminal through Bubble Tea, either
// locally or per SSH session through Wish. It owns the tick loop, key
// bindings, soft drop hold tracking and the lipgloss renderer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// TickMsg triggers one game Step. Its time drives the soft drop release.
type TickMsg time.Time

// tickCmd schedules the next TickMsg one frame from now. The frame length is
// the same TickDuration the game steps its session by.
func tickCmd(tickRate int) tea.Cmd {
	interval := core.RuntimeConfig{TickRate: tickRate}.TickDuration()
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
