package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake3d/internal/config"
	"github.com/vovakirdan/snake3d/internal/core"
	"github.com/vovakirdan/snake3d/internal/games/snake3d"
	"github.com/vovakirdan/snake3d/internal/registry"
)

type countingSound struct {
	eats, gameOvers int
}

func (s *countingSound) PlayEat()      { s.eats++ }
func (s *countingSound) PlayGameOver() { s.gameOvers++ }

func testOptions(mode config.GameOverMode) registry.Options {
	present := config.DefaultSnake3DConfig().Presentation
	present.GameOver = mode
	return registry.Options{
		Engine:       snake3d.DefaultConfig(),
		Runtime:      core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FrameRate: 60, Seed: 7},
		Presentation: present,
		FOV:          75,
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// step sends msg and returns the updated model.
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelFirstFrameMoves(t *testing.T) {
	clock := &snake3d.ManualClock{}
	m := NewModel(testOptions(config.GameOverBanner), clock, nil)

	m, cmd := step(t, m, FrameMsg{})
	if cmd == nil {
		t.Error("frame should schedule the next frame")
	}
	if s := m.Snapshot(); s.Tick != 1 || s.Head != core.V(1, 0, 0) {
		t.Errorf("after first frame: %+v, expected tick 1 at (1, 0, 0)", s)
	}

	// Frames inside the interval do not move.
	clock.Advance(100 * time.Millisecond)
	m, _ = step(t, m, FrameMsg{})
	if m.Snapshot().Tick != 1 {
		t.Errorf("Tick = %d, expected 1", m.Snapshot().Tick)
	}
}

func TestModelSteering(t *testing.T) {
	clock := &snake3d.ManualClock{}
	m := NewModel(testOptions(config.GameOverBanner), clock, nil)
	m, _ = step(t, m, FrameMsg{})

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	clock.Advance(201 * time.Millisecond)
	m, _ = step(t, m, FrameMsg{})

	if s := m.Snapshot(); s.Head != core.V(1, 0, 1) || s.Dir != snake3d.DirDown {
		t.Errorf("after down: head %v dir %v, expected (1, 0, 1) moving down", s.Head, s.Dir)
	}

	// Reverse is ignored.
	m, _ = step(t, m, runeKey('w'))
	clock.Advance(201 * time.Millisecond)
	m, _ = step(t, m, FrameMsg{})
	if s := m.Snapshot(); s.Dir != snake3d.DirDown {
		t.Errorf("dir = %v after reverse key, expected still down", s.Dir)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(testOptions(config.GameOverBanner), &snake3d.ManualClock{}, nil)

	m, cmd := step(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

// driveToWall runs frames until the snake hits the right wall.
func driveToWall(t *testing.T, m Model, clock *snake3d.ManualClock) Model {
	t.Helper()
	m.loop.World().Food = core.V(-9, 0, -9)
	for range 20 {
		m, _ = step(t, m, FrameMsg{})
		clock.Advance(201 * time.Millisecond)
		if m.Banner() != "" {
			return m
		}
	}
	t.Fatal("no game over within 20 frames")
	return m
}

func TestModelBannerGameOver(t *testing.T) {
	clock := &snake3d.ManualClock{}
	sound := &countingSound{}
	m := NewModel(testOptions(config.GameOverBanner), clock, sound)

	m = driveToWall(t, m, clock)

	if !strings.Contains(m.Banner(), "wall-collision") {
		t.Errorf("Banner() = %q, expected the cause", m.Banner())
	}
	if m.Blocked() {
		t.Error("banner mode should not block")
	}
	if sound.gameOvers != 1 {
		t.Errorf("game over sounds = %d, expected 1", sound.gameOvers)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("View() should show the banner")
	}

	// Play continues and the banner expires.
	ticks := m.Snapshot().Tick
	clock.Advance(2 * time.Second)
	m, _ = step(t, m, FrameMsg{})
	if m.Snapshot().Tick <= ticks {
		t.Error("game should keep running in banner mode")
	}
	if m.Banner() != "" {
		t.Errorf("Banner() = %q after it expired", m.Banner())
	}
}

func TestModelBlockingGameOver(t *testing.T) {
	clock := &snake3d.ManualClock{}
	m := NewModel(testOptions(config.GameOverBlocking), clock, nil)

	m = driveToWall(t, m, clock)
	if !m.Blocked() {
		t.Fatal("blocking mode should wait for continue")
	}

	ticks := m.Snapshot().Tick
	for range 5 {
		clock.Advance(time.Second)
		m, _ = step(t, m, FrameMsg{})
	}
	if m.Snapshot().Tick != ticks {
		t.Errorf("Tick advanced from %d to %d while blocked", ticks, m.Snapshot().Tick)
	}

	// Steering is ignored while blocked.
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.loop.World().Pending != snake3d.DirRight {
		t.Error("steering should be ignored while blocked")
	}

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Blocked() || m.Banner() != "" {
		t.Error("enter should dismiss the game over")
	}
	m, _ = step(t, m, FrameMsg{})
	if m.Snapshot().Tick != ticks+1 {
		t.Errorf("Tick = %d after continue, expected %d", m.Snapshot().Tick, ticks+1)
	}
}

func TestModelEatSound(t *testing.T) {
	clock := &snake3d.ManualClock{}
	sound := &countingSound{}
	m := NewModel(testOptions(config.GameOverBanner), clock, sound)
	m.loop.World().Food = core.V(1, 0, 0)

	m, _ = step(t, m, FrameMsg{})
	if sound.eats != 1 {
		t.Errorf("eat sounds = %d, expected 1", sound.eats)
	}
	if m.Snapshot().TargetSize != 2 {
		t.Errorf("TargetSize = %d, expected 2", m.Snapshot().TargetSize)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	clock := &snake3d.ManualClock{}
	m := NewModel(testOptions(config.GameOverBanner), clock, nil)
	m, _ = step(t, m, FrameMsg{})
	before := m.Snapshot()

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.Snapshot() != before {
		t.Error("resize should not reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-hudRows {
		t.Errorf("scene size = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 30-hudRows)
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(testOptions(config.GameOverBanner), &snake3d.ManualClock{}, nil)
	m, _ = step(t, m, FrameMsg{})

	view := m.View()
	if !strings.Contains(view, "length 1/1") {
		t.Errorf("View() missing HUD:\n%s", view)
	}
	if !strings.Contains(view, "█") {
		t.Error("View() should draw cubes")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View() should include the help bar")
	}

	m, _ = step(t, m, runeKey('?'))
	if !strings.Contains(m.View(), "continue") {
		t.Error("full help should list every binding")
	}
}
