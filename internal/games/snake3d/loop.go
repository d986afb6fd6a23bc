package snake3d

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/snake3d/internal/core"
)

// Loop is the per-frame entry point for a host. The host calls Steer for
// every key press and Frame once per rendered frame; Loop runs ticks when
// they are due and keeps the Scene in sync with the World.
type Loop struct {
	world  *World
	scene  Scene
	sched  *TickScheduler
	rng    *rand.Rand
	offset core.Vec3

	segments []Handle // Parallel to world.Snake, head first
	food     Handle
	hasFood  bool
}

// NewLoop creates the world, populates the scene with the initial snake and
// food, and points the camera at the head.
func NewLoop(cfg Config, scene Scene, seed int64) *Loop {
	rng := rand.New(rand.NewSource(seed))
	sched := NewTickScheduler(cfg.TickInterval)
	sched.CatchUp = cfg.CatchUp

	l := &Loop{
		scene:  scene,
		sched:  sched,
		rng:    rng,
		offset: cfg.CameraOffset,
	}

	world, events := NewWorld(cfg.Grid, cfg.Rules, rng)
	l.world = world
	l.apply(events)
	l.updateCamera()
	return l
}

// Steer forwards a key press to the world. Returns whether it was accepted.
func (l *Loop) Steer(a core.Action) bool {
	return l.world.Steer(a)
}

// Frame runs any due ticks for a frame at time now, mirrors their events
// onto the scene and updates the camera. It returns the events so the host
// can react to them (sounds, banners, logs).
func (l *Loop) Frame(now time.Duration) []Event {
	var events []Event
	for range l.sched.Due(now) {
		stepEvents := Step(l.world, l.rng)
		l.apply(stepEvents)
		events = append(events, stepEvents...)
	}
	l.updateCamera()
	return events
}

// World returns the live world state. Callers must not modify it.
func (l *Loop) World() *World {
	return l.world
}

// Camera returns the camera pose for the current head.
func (l *Loop) Camera() CameraPose {
	return CameraFor(l.world.Grid, l.world.Head(), l.offset)
}

// apply mirrors engine events onto the scene.
func (l *Loop) apply(events []Event) {
	grid := l.world.Grid
	for _, e := range events {
		switch e.Kind {
		case EventSegmentAdded:
			h := l.scene.CreateObject(KindHead, grid.World(e.Pos))
			l.segments = append(l.segments, 0)
			copy(l.segments[1:], l.segments[:len(l.segments)-1])
			l.segments[0] = h
		case EventSegmentRemoved:
			if n := len(l.segments); n > 0 {
				l.scene.RemoveObject(l.segments[n-1])
				l.segments = l.segments[:n-1]
			}
		case EventFoodPlaced:
			if l.hasFood {
				l.scene.RemoveObject(l.food)
			}
			l.food = l.scene.CreateObject(KindFood, grid.World(e.Pos))
			l.hasFood = true
		case EventGameOver:
			l.scene.PresentGameOver(e.Cause)
		}
	}
}

func (l *Loop) updateCamera() {
	pose := l.Camera()
	l.scene.SetCameraPose(pose.Position, pose.LookAt)
}
