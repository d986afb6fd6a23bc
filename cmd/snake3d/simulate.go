package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake3d/internal/platform/headless"
	"github.com/vovakirdan/snake3d/internal/registry"
)

var (
	flagFrames  int
	flagKeys    string
	flagFrameMS int
	flagNoFrame bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted game without a display",
	Long: `Run the game against a simulated clock and print a summary.

Each frame advances the clock by --frame-ms. Keys are given as
frame:key pairs, where key is an action name (left, up, right, down),
its first letter, an arrow key code (37-40) or quit.

With the same --seed, --keys and config the run is fully reproducible.

Examples:
  snake3d simulate
  snake3d simulate --frames 2000 --seed 7
  snake3d simulate --keys "20:up,60:left,90:down,200:quit"
  snake3d simulate --frame-ms 250 --frames 40 --no-frame`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate (0 = until quit)")
	simulateCmd.Flags().StringVar(&flagKeys, "keys", "", "Scripted keys as frame:key pairs")
	simulateCmd.Flags().IntVar(&flagFrameMS, "frame-ms", int(headless.DefaultFrameStep.Milliseconds()), "Simulated frame duration in milliseconds")
	simulateCmd.Flags().BoolVar(&flagNoFrame, "no-frame", false, "Do not print the final frame")
}

func runSimulate(_ *cobra.Command, _ []string) {
	script, err := headless.ParseScript(flagKeys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFrames <= 0 && !headless.HasQuit(script) {
		fmt.Fprintln(os.Stderr, "Error: --frames 0 needs a scripted quit in --keys")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("snake3d-sim", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := loadOptions(logger)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	opts.Frames = flagFrames
	opts.FrameStep = flagFrameMS
	opts.Script = script
	if flagNoFrame {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = 0, 0
	}

	backend, err := registry.Create("headless")
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating backend: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := backend.Run(ctx, opts)
	stop()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}
