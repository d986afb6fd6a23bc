// snake3d is a real-time 3D snake game for the terminal, a window or an
// SSH server.
//
// Usage:
//
//	snake3d play                 - Play in the terminal
//	snake3d play --backend raylib - Play in a window (built with -tags raylib)
//	snake3d simulate             - Run a scripted game without a display
//	snake3d serve                - Start SSH server for remote play
//	snake3d backends             - List available backends
//	snake3d config               - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snake3d/configs, ./configs)
//	--fps <rate>        - Frame rate override (default: from config)
//	--seed <value>      - RNG seed for reproducible food placement
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/snake3d/internal/platform/headless"
	_ "github.com/vovakirdan/snake3d/internal/platform/raylib"
	_ "github.com/vovakirdan/snake3d/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake3d",
	Short: "snake3d - a 3D snake game for your terminal",
	Long: `snake3d is a real-time snake game played on a 3D grid. The snake moves
one cell per tick, grows when it eats, and restarts when it hits a wall or
itself. A camera follows the head from above and behind.

Available commands:
  play      - Play locally (terminal or window)
  simulate  - Run a scripted game without a display
  serve     - Start SSH server for remote play
  backends  - List available backends
  config    - Print the effective configuration

Examples:
  snake3d play
  snake3d play --sound
  snake3d simulate --frames 600 --keys "20:up,60:left"
  snake3d serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}
