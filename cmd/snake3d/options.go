package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/snake3d/internal/config"
	"github.com/vovakirdan/snake3d/internal/core"
	"github.com/vovakirdan/snake3d/internal/registry"
)

// newLogger builds the process logger. With --log-file, logs go to that
// file; otherwise to fallback. The returned close function is never nil.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadOptions loads the configuration and builds backend options from it
// and the global flags.
func loadOptions(logger *log.Logger) (registry.Options, error) {
	cfg, source, err := config.LoadSnake3DWithSource(flagConfig)
	if err != nil {
		return registry.Options{}, err
	}
	logger.Debug("config loaded", "source", source)

	frameRate := cfg.Timing.FrameRate
	if flagFPS > 0 {
		frameRate = flagFPS
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return registry.Options{
		Engine: cfg.Engine(),
		Runtime: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   height,
			FrameRate: frameRate,
			Seed:      flagSeed,
		},
		Presentation: cfg.Presentation,
		FOV:          cfg.Camera.FOVDegrees,
		Logger:       logger,
		Out:          os.Stdout,
	}, nil
}
