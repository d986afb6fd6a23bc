// Package config provides YAML-based configuration loading and validation
// for the snake3d engine and its hosts.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/snake3d/internal/core"
	"github.com/vovakirdan/snake3d/internal/games/snake3d"
)

// Snake3DConfig contains all configuration for the game.
type Snake3DConfig struct {
	Grid         GridConfig         `yaml:"grid"`
	Timing       TimingConfig       `yaml:"timing"`
	Rules        RulesConfig        `yaml:"rules"`
	Camera       CameraConfig       `yaml:"camera"`
	Presentation PresentationConfig `yaml:"presentation"`
}

// GridConfig defines the playfield.
type GridConfig struct {
	Size     int     `yaml:"size"`
	CubeSize float64 `yaml:"cube_size"`
}

// TimingConfig defines the tick and frame cadence.
type TimingConfig struct {
	TickIntervalMS int  `yaml:"tick_interval_ms"`
	CatchUp        bool `yaml:"catch_up"` // Run every missed tick (capped) instead of one
	FrameRate      int  `yaml:"frame_rate"`
}

// RulesConfig defines the distance thresholds for eating and collisions.
type RulesConfig struct {
	EatRadius float64 `yaml:"eat_radius"`
	HitRadius float64 `yaml:"hit_radius"`
}

// CameraConfig defines the follow camera.
type CameraConfig struct {
	Offset     []float64 `yaml:"offset,flow"` // x, y, z relative to the head
	FOVDegrees float64   `yaml:"fov_degrees"`
}

// GameOverMode selects how a host presents a game over.
type GameOverMode string

const (
	GameOverBanner   GameOverMode = "banner"   // Transient message, play continues
	GameOverBlocking GameOverMode = "blocking" // Wait for a key before continuing
)

// PresentationConfig defines how hosts present events to the player.
type PresentationConfig struct {
	GameOver GameOverMode `yaml:"game_over"`
	BannerMS int          `yaml:"banner_ms"`
	Sound    bool         `yaml:"sound"`
}

// BannerDuration returns how long the game-over banner stays up.
func (p PresentationConfig) BannerDuration() time.Duration {
	return time.Duration(p.BannerMS) * time.Millisecond
}

// ValidationError contains details about a rejected configuration value.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks every value the engine depends on. The first problem
// found is returned as a ValidationError.
func (c Snake3DConfig) Validate() error {
	if c.Grid.Size < 1 {
		return ValidationError{Code: "grid_size", Message: fmt.Sprintf("grid.size must be at least 1, got %d", c.Grid.Size)}
	}
	if c.Grid.CubeSize <= 0 {
		return ValidationError{Code: "cube_size", Message: fmt.Sprintf("grid.cube_size must be positive, got %g", c.Grid.CubeSize)}
	}
	if c.Timing.TickIntervalMS <= 0 {
		return ValidationError{Code: "tick_interval", Message: fmt.Sprintf("timing.tick_interval_ms must be positive, got %d", c.Timing.TickIntervalMS)}
	}
	if c.Timing.FrameRate < 1 || c.Timing.FrameRate > 240 {
		return ValidationError{Code: "frame_rate", Message: fmt.Sprintf("timing.frame_rate must be in [1, 240], got %d", c.Timing.FrameRate)}
	}
	if c.Rules.EatRadius <= 0 {
		return ValidationError{Code: "eat_radius", Message: fmt.Sprintf("rules.eat_radius must be positive, got %g", c.Rules.EatRadius)}
	}
	// Adjacent segments are one cell apart; a radius of 1 or more would
	// make every move a self collision.
	if c.Rules.HitRadius <= 0 || c.Rules.HitRadius >= 1 {
		return ValidationError{Code: "hit_radius", Message: fmt.Sprintf("rules.hit_radius must be in (0, 1), got %g", c.Rules.HitRadius)}
	}
	if len(c.Camera.Offset) != 3 {
		return ValidationError{Code: "camera_offset", Message: fmt.Sprintf("camera.offset needs 3 components, got %d", len(c.Camera.Offset))}
	}
	if c.cameraOffset().IsZero() {
		return ValidationError{Code: "camera_offset", Message: "camera.offset must not be zero"}
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		return ValidationError{Code: "fov", Message: fmt.Sprintf("camera.fov_degrees must be in (0, 180), got %g", c.Camera.FOVDegrees)}
	}
	switch c.Presentation.GameOver {
	case GameOverBanner, GameOverBlocking:
	default:
		return ValidationError{Code: "game_over_mode", Message: fmt.Sprintf("presentation.game_over must be %q or %q, got %q", GameOverBanner, GameOverBlocking, c.Presentation.GameOver)}
	}
	if c.Presentation.BannerMS < 0 {
		return ValidationError{Code: "banner_ms", Message: fmt.Sprintf("presentation.banner_ms must not be negative, got %d", c.Presentation.BannerMS)}
	}
	return nil
}

// Engine converts the configuration into the engine's settings.
// Call Validate first; Engine does not check values.
func (c Snake3DConfig) Engine() snake3d.Config {
	return snake3d.Config{
		Grid: snake3d.Grid{
			Size:     c.Grid.Size,
			CubeSize: c.Grid.CubeSize,
		},
		Rules: snake3d.Rules{
			EatRadius: c.Rules.EatRadius,
			HitRadius: c.Rules.HitRadius,
		},
		TickInterval: time.Duration(c.Timing.TickIntervalMS) * time.Millisecond,
		CatchUp:      c.Timing.CatchUp,
		CameraOffset: c.cameraOffset(),
	}
}

func (c Snake3DConfig) cameraOffset() core.Vec3 {
	if len(c.Camera.Offset) != 3 {
		return snake3d.DefaultCameraOffset
	}
	return core.V(c.Camera.Offset[0], c.Camera.Offset[1], c.Camera.Offset[2])
}
