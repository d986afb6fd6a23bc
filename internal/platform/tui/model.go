package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake3d/internal/config"
	"github.com/vovakirdan/snake3d/internal/core"
	"github.com/vovakirdan/snake3d/internal/games/snake3d"
	"github.com/vovakirdan/snake3d/internal/registry"
	"github.com/vovakirdan/snake3d/internal/scene"
)

// hudRows is the number of rows reserved above and below the scene.
const hudRows = 2

// Sounder plays the game's audio cues.
type Sounder interface {
	PlayEat()
	PlayGameOver()
}

type silent struct{}

func (silent) PlayEat()      {}
func (silent) PlayGameOver() {}

// Model is the Bubble Tea model hosting one game.
type Model struct {
	loop   *snake3d.Loop
	graph  *scene.Graph
	screen *core.Screen
	clock  snake3d.Clock

	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	present  config.PresentationConfig
	fov      float64
	logger   *log.Logger
	sound    Sounder
	username string

	banner      string
	bannerUntil time.Duration
	blocked     bool // Waiting for Continue after a blocking game over
	quitting    bool
}

// NewModel creates a model for opts. A nil clock uses the monotonic clock;
// a nil sounder plays nothing.
func NewModel(opts registry.Options, clock snake3d.Clock, sound Sounder) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if clock == nil {
		clock = snake3d.NewMonotonicClock()
	}
	if sound == nil {
		sound = silent{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	graph := scene.NewGraph(opts.Engine.Grid)
	loop := snake3d.NewLoop(opts.Engine, graph, cfg.Seed)
	logger.Debug("game started", "seed", cfg.Seed, "grid", opts.Engine.Grid.Size, "interval", opts.Engine.TickInterval)

	return Model{
		loop:    loop,
		graph:   graph,
		screen:  core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-hudRows)),
		clock:   clock,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		config:  cfg,
		present: opts.Presentation,
		fov:     opts.FOV,
		logger:  logger,
		sound:   sound,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes keyboard input. Steering goes straight to the loop so
// a key pressed before a frame is seen by that frame's tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.blocked {
		if key.Matches(msg, m.keys.Continue) {
			m.blocked = false
			m.banner = ""
		}
		return m, nil
	}

	if action.IsDirection() && !m.loop.Steer(action) {
		m.logger.Debug("turn rejected", "key", action, "direction", m.loop.World().Direction)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-hudRows))
	m.help.Width = msg.Width
	return m, nil
}

// handleFrame runs due ticks and reacts to what happened.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	now := m.clock.Now()

	if !m.blocked {
		m = m.react(m.loop.Frame(now), now)
	}
	if m.banner != "" && !m.blocked && now >= m.bannerUntil {
		m.banner = ""
	}

	return m, frameCmd(m.config.FrameRate)
}

// react plays sounds, logs and sets up the game-over presentation.
func (m Model) react(events []snake3d.Event, now time.Duration) Model {
	for _, e := range events {
		switch e.Kind {
		case snake3d.EventFoodEaten:
			m.sound.PlayEat()
			m.logger.Debug("food eaten", "at", e.Pos, "target", m.loop.World().TargetSize, "user", m.username)
		case snake3d.EventGameOver:
			m.sound.PlayGameOver()
			m.logger.Info("game over", "cause", e.Cause, "at", e.Pos, "resets", m.loop.World().Resets, "user", m.username)
			m.banner = fmt.Sprintf("GAME OVER: %s", e.Cause)
			if m.present.GameOver == config.GameOverBlocking {
				m.banner += "  (enter to continue)"
				m.blocked = true
			} else {
				m.bannerUntil = now + m.present.BannerDuration()
			}
		}
	}
	return m
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.graph.Draw(m.screen, m.fov)

	w := m.loop.World()
	hud := hudStyle.Render(fmt.Sprintf("snake3d  length %d/%d  food (%g, %g)  resets %d",
		len(w.Snake), w.TargetSize, w.Food.X, w.Food.Z, w.Resets))

	rows := strings.Split(RenderScreen(m.screen), "\n")
	if m.banner != "" {
		rows = overlayCentered(rows, bannerStyle.Render(m.banner), m.screen.Width())
	}

	var sb strings.Builder
	sb.WriteString(hud)
	sb.WriteRune('\n')
	sb.WriteString(strings.Join(rows, "\n"))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Snapshot returns the world snapshot, for tests and logs.
func (m Model) Snapshot() snake3d.Snapshot {
	return m.loop.Snapshot()
}

// Blocked reports whether the model waits for Continue after a game over.
func (m Model) Blocked() bool {
	return m.blocked
}

// Banner returns the current game-over message, or "".
func (m Model) Banner() string {
	return m.banner
}
