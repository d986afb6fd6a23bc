// Package snake3d implements the snake game loop and grid-movement engine.
//
// The engine is pure: World holds all mutable state, Step advances it by one
// tick and reports what changed as a list of events. Loop wires the engine to
// a host: it gates ticks on a timestamp, mirrors events onto a Scene and keeps
// the camera following the head.
package snake3d

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/snake3d/internal/core"
)

// Horizontal unit directions. Up and down are along Z, matching the
// top-down view where -Z points away from the camera.
var (
	DirLeft  = core.V(-1, 0, 0)
	DirUp    = core.V(0, 0, -1)
	DirRight = core.V(1, 0, 0)
	DirDown  = core.V(0, 0, 1)
)

// Origin is the cell where the snake starts and restarts.
var Origin = core.Vec3{}

// InitialDirection is the travel direction after startup and every reset.
var InitialDirection = DirRight

// Grid describes the square playfield. Coordinates are in cells; the
// playfield spans [-HalfSize, +HalfSize] on X and Z.
type Grid struct {
	Size     int     // Edge length in cells
	CubeSize float64 // World-space edge length of one cell
}

// HalfSize returns half the grid edge length in cells.
func (g Grid) HalfSize() float64 {
	return float64(g.Size) / 2
}

// FoodBound returns the largest whole-cell coordinate food may take on
// either horizontal axis: floor(halfGrid - halfCube).
func (g Grid) FoodBound() int {
	return int(math.Floor(g.HalfSize() - 0.5))
}

// World converts a cell position into world space. Cubes rest on the
// floor, so their centers sit half a cube above it.
func (g Grid) World(cell core.Vec3) core.Vec3 {
	return cell.Scale(g.CubeSize).Add(core.V(0, g.CubeSize/2, 0))
}

// Rules holds the distance thresholds used by the tick logic.
type Rules struct {
	EatRadius float64 // Head closer than this to food eats it
	HitRadius float64 // Candidate closer than this to a body segment collides
}

// Config holds everything needed to build a Loop.
type Config struct {
	Grid         Grid
	Rules        Rules
	TickInterval time.Duration
	CatchUp      bool      // Run every elapsed tick instead of collapsing to one
	CameraOffset core.Vec3 // Camera position relative to the head, world space
}

// DefaultConfig returns the classic settings: a 20-cell grid, one move
// every 200ms and a camera 10 units above and behind the head.
func DefaultConfig() Config {
	return Config{
		Grid: Grid{
			Size:     20,
			CubeSize: 1,
		},
		Rules: Rules{
			EatRadius: 0.5,
			HitRadius: 0.1,
		},
		TickInterval: 200 * time.Millisecond,
		CameraOffset: DefaultCameraOffset,
	}
}

// World is the complete game state.
type World struct {
	Grid  Grid
	Rules Rules

	Snake      []core.Vec3 // Head at index 0
	TargetSize int         // Length the snake grows toward
	Direction  core.Vec3   // Travel direction of the last tick
	Pending    core.Vec3   // Direction applied at the next tick
	Food       core.Vec3

	Ticks  uint64 // Completed ticks, including ones that ended in a collision
	Resets int    // Number of collisions so far
}

// NewWorld creates a world with a one-segment snake at the origin and
// food placed at random. The returned events describe the initial objects.
func NewWorld(grid Grid, rules Rules, rng *rand.Rand) (*World, []Event) {
	w := &World{
		Grid:  grid,
		Rules: rules,
	}
	return w, w.start(rng, nil)
}

// start places the snake at the origin and spawns food.
func (w *World) start(rng *rand.Rand, events []Event) []Event {
	w.Snake = []core.Vec3{Origin}
	w.TargetSize = 1
	w.Direction = InitialDirection
	w.Pending = InitialDirection
	events = append(events, Event{Kind: EventSegmentAdded, Pos: Origin})

	w.Food = PlaceFood(w.Grid, rng)
	return append(events, Event{Kind: EventFoodPlaced, Pos: w.Food})
}

// Head returns the head cell.
func (w *World) Head() core.Vec3 {
	if len(w.Snake) == 0 {
		return Origin
	}
	return w.Snake[0]
}
