package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake3d/internal/config"
	"github.com/vovakirdan/snake3d/internal/registry"
)

var (
	flagBackend  string
	flagSound    bool
	flagGameOver string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake3d",
	Long: `Start a game in the terminal or, when built with -tags raylib, in a window.

Controls:
  Arrows/WASD/HJKL - Steer
  Enter/Space      - Continue (after a blocking game over)
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Game over presentation:
  banner   - Show a short message, play continues from the fresh snake
  blocking - Wait for Enter before continuing

Examples:
  snake3d play
  snake3d play --sound
  snake3d play --game-over blocking
  snake3d play --backend raylib
  snake3d play --config ./my-snake3d.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Backend to play on (see 'snake3d backends')")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects (default: from config)")
	playCmd.Flags().StringVar(&flagGameOver, "game-over", "", "Game over presentation: banner, blocking (default: from config)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	// Check if backend exists
	if !registry.Exists(flagBackend) {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q\n", flagBackend)
		fmt.Fprintln(os.Stderr, "Run 'snake3d backends' to see available backends.")
		os.Exit(1)
	}

	// The terminal backend owns the screen; keep logs out of it unless
	// they go to a file.
	var fallback io.Writer = os.Stderr
	if flagBackend == "tui" {
		fallback = io.Discard
	}
	logger, closeLog, err := newLogger("snake3d", fallback)
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

	if cmd.Flags().Changed("sound") {
		opts.Presentation.Sound = flagSound
	}
	if flagGameOver != "" {
		mode := config.GameOverMode(flagGameOver)
		if mode != config.GameOverBanner && mode != config.GameOverBlocking {
			closeLog()
			fmt.Fprintf(os.Stderr, "Error: --game-over must be %q or %q\n", config.GameOverBanner, config.GameOverBlocking)
			os.Exit(1)
		}
		opts.Presentation.GameOver = mode
	}

	backend, err := registry.Create(flagBackend)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating backend: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	logger.Info("starting", "backend", backend.ID(), "seed", opts.Runtime.Seed, "fps", opts.Runtime.FrameRate)
	runErr := backend.Run(ctx, opts)
	stop()

	// Close log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
