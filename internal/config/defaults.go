package config

import (
	_ "embed"
)

//go:embed defaults/snake3d.yaml
var defaultSnake3DYAML []byte

// DefaultSnake3DConfig returns the default configuration.
func DefaultSnake3DConfig() Snake3DConfig {
	return Snake3DConfig{
		Grid: GridConfig{
			Size:     20,
			CubeSize: 1.0,
		},
		Timing: TimingConfig{
			TickIntervalMS: 200,
			CatchUp:        false,
			FrameRate:      60,
		},
		Rules: RulesConfig{
			EatRadius: 0.5,
			HitRadius: 0.1,
		},
		Camera: CameraConfig{
			Offset:     []float64{0, 10, 10},
			FOVDegrees: 75,
		},
		Presentation: PresentationConfig{
			GameOver: GameOverBanner,
			BannerMS: 1500,
			Sound:    false,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnake3DYAML
}
