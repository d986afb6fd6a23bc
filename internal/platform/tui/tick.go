// Package tui hosts the game in a terminal through Bubble Tea, locally or
// over SSH. It owns the frame loop, maps keys to steering and draws the
// projected scene.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per display frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message at the specified rate.
func frameCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
