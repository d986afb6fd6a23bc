package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake3d/internal/audio"
	"github.com/vovakirdan/snake3d/internal/registry"
)

// Backend plays in the local terminal.
type Backend struct{}

func (Backend) ID() string    { return "tui" }
func (Backend) Title() string { return "Terminal (Bubble Tea)" }

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled.
func (Backend) Run(ctx context.Context, opts registry.Options) error {
	var sound Sounder
	if opts.Presentation.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			if opts.Logger != nil {
				opts.Logger.Warn("sound disabled", "error", err)
			}
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	p := tea.NewProgram(
		NewModel(opts, nil, sound),
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func init() {
	registry.Register("tui", func() registry.Backend { return Backend{} })
}
