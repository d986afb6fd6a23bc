//go:build raylib

package raylib

import (
	"context"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/snake3d/internal/audio"
	"github.com/vovakirdan/snake3d/internal/config"
	"github.com/vovakirdan/snake3d/internal/core"
	"github.com/vovakirdan/snake3d/internal/games/snake3d"
	"github.com/vovakirdan/snake3d/internal/registry"
	"github.com/vovakirdan/snake3d/internal/scene"
)

const (
	windowW = 1280
	windowH = 800
)

var (
	backgroundColor = rl.NewColor(17, 17, 17, 255)
	snakeColor      = rl.NewColor(0, 255, 0, 255)
	foodColor       = rl.NewColor(255, 0, 0, 255)
)

// Backend plays in a raylib window.
type Backend struct{}

func (Backend) ID() string    { return "raylib" }
func (Backend) Title() string { return "Window (raylib 3D)" }

// keyActions maps the arrow keys to steering.
var keyActions = []struct {
	key    int32
	action core.Action
}{
	{rl.KeyLeft, core.ActionLeft},
	{rl.KeyUp, core.ActionUp},
	{rl.KeyRight, core.ActionRight},
	{rl.KeyDown, core.ActionDown},
}

// Run opens the window and plays until it is closed, Q is pressed or ctx
// is cancelled. It must be called from the main goroutine.
func (Backend) Run(ctx context.Context, opts registry.Options) error {
	logger := opts.Logger
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sound := audio.NewSoundManager()
	if opts.Presentation.Sound {
		if err := sound.Initialize(); err != nil && logger != nil {
			logger.Warn("sound disabled", "error", err)
		}
		defer sound.Cleanup()
	}

	rl.InitWindow(windowW, windowH, "snake3d")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(max(1, opts.Runtime.FrameRate)))

	graph := scene.NewGraph(opts.Engine.Grid)
	loop := snake3d.NewLoop(opts.Engine, graph, seed)
	clock := snake3d.NewMonotonicClock()

	var (
		banner      string
		bannerUntil time.Duration
		blocked     bool
	)

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		now := clock.Now()
		if blocked {
			if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
				blocked = false
				banner = ""
			}
		} else {
			for _, ka := range keyActions {
				if rl.IsKeyPressed(ka.key) {
					loop.Steer(ka.action)
				}
			}

			for _, e := range loop.Frame(now) {
				switch e.Kind {
				case snake3d.EventFoodEaten:
					sound.PlayEat()
				case snake3d.EventGameOver:
					sound.PlayGameOver()
					if logger != nil {
						logger.Info("game over", "cause", e.Cause, "resets", loop.World().Resets)
					}
					banner = fmt.Sprintf("GAME OVER: %s", e.Cause)
					if opts.Presentation.GameOver == config.GameOverBlocking {
						banner += "  (enter to continue)"
						blocked = true
					} else {
						bannerUntil = now + opts.Presentation.BannerDuration()
					}
				}
			}
			if banner != "" && !blocked && now >= bannerUntil {
				banner = ""
			}
		}

		draw(graph, loop.World(), opts.FOV, banner)
	}

	return nil
}

func draw(graph *scene.Graph, w *snake3d.World, fov float64, banner string) {
	pose := graph.Camera()
	camera := rl.Camera3D{
		Position:   toVector3(pose.Position),
		Target:     toVector3(pose.LookAt),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(fov),
		Projection: rl.CameraPerspective,
	}

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	rl.BeginMode3D(camera)
	rl.DrawGrid(int32(graph.Floor.Size), float32(graph.Floor.CubeSize))
	size := float32(graph.Floor.CubeSize)
	for _, o := range graph.Objects() {
		c := snakeColor
		if o.Kind == snake3d.KindFood {
			c = foodColor
		}
		pos := toVector3(o.Pos)
		rl.DrawCube(pos, size, size, size, c)
		rl.DrawCubeWires(pos, size, size, size, rl.Black)
	}
	rl.EndMode3D()

	rl.DrawText(fmt.Sprintf("length %d/%d  resets %d", len(w.Snake), w.TargetSize, w.Resets), 10, 10, 20, rl.RayWhite)
	if banner != "" {
		width := rl.MeasureText(banner, 40)
		rl.DrawText(banner, (int32(rl.GetScreenWidth())-width)/2, int32(rl.GetScreenHeight())/2-20, 40, rl.Red)
	}

	rl.EndDrawing()
}

func toVector3(v core.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func init() {
	registry.Register("raylib", func() registry.Backend { return Backend{} })
}
