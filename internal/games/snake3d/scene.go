package snake3d

import (
	"time"

	"github.com/vovakirdan/snake3d/internal/core"
)

// ObjectKind selects the mesh a renderer uses for a scene object.
type ObjectKind int

const (
	KindHead ObjectKind = iota // Every snake segment uses the head cube
	KindFood
)

func (k ObjectKind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindFood:
		return "food"
	default:
		return "unknown"
	}
}

// Handle identifies an object created in a Scene.
type Handle uint64

// Scene is the rendering collaborator the loop drives. Positions are in
// world space. Implementations must accept calls from the loop's goroutine
// only; the engine never calls a Scene concurrently.
type Scene interface {
	// CreateObject adds a cube of the given kind and returns its handle.
	CreateObject(kind ObjectKind, pos core.Vec3) Handle

	// RemoveObject deletes an object created by CreateObject.
	RemoveObject(h Handle)

	// SetCameraPose moves the camera and points it at lookAt.
	SetCameraPose(pos, lookAt core.Vec3)

	// PresentGameOver tells the player the run ended. Whether this blocks
	// or shows a transient message is up to the host.
	PresentGameOver(cause Cause)
}

// Clock supplies monotonic timestamps for tick timing.
type Clock interface {
	Now() time.Duration
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Duration

// Now calls f.
func (f ClockFunc) Now() time.Duration { return f() }

// MonotonicClock measures time since it was created.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a clock advanced explicitly, for fixed-step hosts and tests.
type ManualClock struct {
	now time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now += d }
