package snake3d

import "github.com/vovakirdan/snake3d/internal/core"

// Snapshot captures the world state for determinism testing and logging.
type Snapshot struct {
	Tick       uint64
	SnakeLen   int
	TargetSize int
	Head       core.Vec3
	Dir        core.Vec3
	Food       core.Vec3
	Resets     int
}

// Snapshot returns the current world snapshot.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:       w.Ticks,
		SnakeLen:   len(w.Snake),
		TargetSize: w.TargetSize,
		Head:       w.Head(),
		Dir:        w.Direction,
		Food:       w.Food,
		Resets:     w.Resets,
	}
}

// Snapshot returns the current world snapshot.
func (l *Loop) Snapshot() Snapshot {
	return l.world.Snapshot()
}
