// Package headless runs the game without a display: a fixed-step clock,
// scripted key presses and a text summary at the end. It is used for
// simulations, replays and smoke tests.
package headless

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake3d/internal/core"
	"github.com/vovakirdan/snake3d/internal/games/snake3d"
	"github.com/vovakirdan/snake3d/internal/registry"
	"github.com/vovakirdan/snake3d/internal/scene"
)

const (
	// DefaultFrameStep is the simulated frame duration when none is given.
	DefaultFrameStep = 16 * time.Millisecond

	// DefaultFrames bounds a run that has no frame count and no scripted quit.
	DefaultFrames = 600
)

// Summary describes a finished run.
type Summary struct {
	Frames    int
	FoodEaten int
	GameOvers map[snake3d.Cause]int
	MaxLength int
	Elapsed   time.Duration // Simulated time
	Final     snake3d.Snapshot
	Quit      bool // Stopped by a scripted quit
}

// Backend runs the game against a manual clock.
type Backend struct{}

func (Backend) ID() string    { return "headless" }
func (Backend) Title() string { return "Headless (fixed step, scripted keys)" }

// Run simulates the game and prints the summary and the final frame to
// opts.Out.
func (Backend) Run(ctx context.Context, opts registry.Options) error {
	sum, graph, err := simulate(ctx, opts)
	if err != nil {
		return err
	}
	if opts.Out == nil {
		return nil
	}

	if err := WriteSummary(opts.Out, sum); err != nil {
		return err
	}
	if opts.Runtime.ScreenW > 0 && opts.Runtime.ScreenH > 0 {
		screen := core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
		graph.Draw(screen, opts.FOV)
		if graph.GameOvers() > 0 {
			screen.DrawTextCentered(0, fmt.Sprintf(" last game over: %s ", graph.LastCause()), core.ColorRed)
		}
		for y := 0; y < screen.Height(); y++ {
			if _, err := fmt.Fprintln(opts.Out, strings.TrimRight(screen.Row(y), " ")); err != nil {
				return fmt.Errorf("headless: write frame: %w", err)
			}
		}
	}
	return nil
}

// Simulate runs opts.Frames frames (or until a scripted quit or ctx is
// cancelled) and returns what happened. With no frame count it runs until a
// scripted quit, or for DefaultFrames frames when the script has none.
func Simulate(ctx context.Context, opts registry.Options) (Summary, error) {
	sum, _, err := simulate(ctx, opts)
	return sum, err
}

func simulate(ctx context.Context, opts registry.Options) (Summary, *scene.Graph, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	frames := opts.Frames
	if frames <= 0 && !HasQuit(opts.Script) {
		frames = DefaultFrames
	}
	step := time.Duration(opts.FrameStep) * time.Millisecond
	if step <= 0 {
		step = DefaultFrameStep
	}

	clock := &snake3d.ManualClock{}
	graph := scene.NewGraph(opts.Engine.Grid)
	sum := Summary{GameOvers: make(map[snake3d.Cause]int)}

	frame := 0
	graph.OnGameOver = func(cause snake3d.Cause) {
		sum.GameOvers[cause]++
		logger.Info("game over", "cause", cause, "frame", frame, "at", clock.Now())
	}

	loop := snake3d.NewLoop(opts.Engine, graph, opts.Runtime.Seed)
	sum.MaxLength = len(loop.World().Snake)

	for ; frames <= 0 || frame < frames; frame++ {
		if err := ctx.Err(); err != nil {
			break
		}

		if quit := steer(loop, opts.Script[frame], logger, frame); quit {
			sum.Quit = true
			break
		}

		for _, e := range loop.Frame(clock.Now()) {
			logger.Debug("event", "frame", frame, "event", e)
			if e.Kind == snake3d.EventFoodEaten {
				sum.FoodEaten++
			}
		}
		sum.MaxLength = max(sum.MaxLength, len(loop.World().Snake))
		clock.Advance(step)
	}

	sum.Frames = frame
	sum.Elapsed = clock.Now()
	sum.Final = loop.Snapshot()
	return sum, graph, nil
}

// steer applies the scripted keys for one frame. Returns true on quit.
func steer(loop *snake3d.Loop, keys []core.Action, logger *log.Logger, frame int) bool {
	for _, a := range keys {
		if a == core.ActionQuit {
			return true
		}
		accepted := loop.Steer(a)
		logger.Debug("key", "frame", frame, "action", a, "accepted", accepted)
	}
	return false
}

// HasQuit reports whether script contains a quit key.
func HasQuit(script map[int][]core.Action) bool {
	for _, keys := range script {
		for _, a := range keys {
			if a == core.ActionQuit {
				return true
			}
		}
	}
	return false
}

// ParseScript parses "frame:key" pairs separated by commas, e.g.
// "0:up,12:left,30:quit". Keys are action names, their first letter, or
// browser arrow key codes (37-40).
func ParseScript(s string) (map[int][]core.Action, error) {
	script := make(map[int][]core.Action)
	if strings.TrimSpace(s) == "" {
		return script, nil
	}

	for _, entry := range strings.Split(s, ",") {
		frameStr, keyStr, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			return nil, fmt.Errorf("headless: script entry %q: expected frame:key", entry)
		}
		frame, err := strconv.Atoi(strings.TrimSpace(frameStr))
		if err != nil || frame < 0 {
			return nil, fmt.Errorf("headless: script entry %q: bad frame number", entry)
		}
		action, err := parseKey(keyStr)
		if err != nil {
			return nil, fmt.Errorf("headless: script entry %q: %w", entry, err)
		}
		script[frame] = append(script[frame], action)
	}
	return script, nil
}

func parseKey(s string) (core.Action, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "quit", "q":
		return core.ActionQuit, nil
	}
	if a, ok := core.ParseAction(s); ok {
		return a, nil
	}
	if code, err := strconv.Atoi(s); err == nil {
		if a := core.ActionFromKeyCode(code); a != core.ActionNone {
			return a, nil
		}
	}
	return core.ActionNone, fmt.Errorf("unknown key %q", s)
}

// WriteSummary prints a run summary.
func WriteSummary(w io.Writer, sum Summary) error {
	causes := make([]string, 0, len(sum.GameOvers))
	for cause, n := range sum.GameOvers {
		causes = append(causes, fmt.Sprintf("%s=%d", cause, n))
	}
	sort.Strings(causes)
	if len(causes) == 0 {
		causes = append(causes, "none")
	}

	f := sum.Final
	_, err := fmt.Fprintf(w,
		"frames:     %d (%s simulated)\n"+
			"ticks:      %d\n"+
			"food eaten: %d\n"+
			"game overs: %s\n"+
			"max length: %d\n"+
			"final:      length %d/%d head (%g, %g) food (%g, %g)\n",
		sum.Frames, sum.Elapsed,
		f.Tick,
		sum.FoodEaten,
		strings.Join(causes, " "),
		sum.MaxLength,
		f.SnakeLen, f.TargetSize, f.Head.X, f.Head.Z, f.Food.X, f.Food.Z,
	)
	if err != nil {
		return fmt.Errorf("headless: write summary: %w", err)
	}
	return nil
}

func init() {
	registry.Register("headless", func() registry.Backend { return Backend{} })
}
