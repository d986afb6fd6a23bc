package snake3d

import (
	"fmt"

	"github.com/vovakirdan/snake3d/internal/core"
)

// EventKind identifies what changed during a tick.
type EventKind int

const (
	EventSegmentAdded   EventKind = iota // A new head segment at Pos
	EventSegmentRemoved                  // The tail segment at Pos was dropped
	EventFoodPlaced                      // Food moved to Pos
	EventFoodEaten                       // The head ate the food at Pos
	EventGameOver                        // Candidate head at Pos collided; see Cause
	EventReset                           // The world was reset after a game over
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSegmentAdded:
		return "segment-added"
	case EventSegmentRemoved:
		return "segment-removed"
	case EventFoodPlaced:
		return "food-placed"
	case EventFoodEaten:
		return "food-eaten"
	case EventGameOver:
		return "game-over"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is one state change produced by Step, in the order it happened.
// Positions are cell coordinates.
type Event struct {
	Kind  EventKind
	Pos   core.Vec3
	Cause Cause // Set for EventGameOver
}

func (e Event) String() string {
	if e.Kind == EventGameOver {
		return fmt.Sprintf("%s(%s) at (%g, %g, %g)", e.Kind, e.Cause, e.Pos.X, e.Pos.Y, e.Pos.Z)
	}
	return fmt.Sprintf("%s at (%g, %g, %g)", e.Kind, e.Pos.X, e.Pos.Y, e.Pos.Z)
}

// HasEvent reports whether events contains an event of the given kind.
func HasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
