package snake3d

import (
	"math"

	"github.com/vovakirdan/snake3d/internal/core"
)

// Cause is the reason a run ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall       // The head left the grid
	CauseSelf       // The head ran into the body
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall-collision"
	case CauseSelf:
		return "self-collision"
	default:
		return "unknown"
	}
}

// CheckCollision tests a candidate head cell against the grid bound and the
// body. snake is the body before the move; index 0 is the old head, which the
// candidate is about to replace, so it is never tested.
func CheckCollision(candidate core.Vec3, snake []core.Vec3, grid Grid, hitRadius float64) Cause {
	half := grid.HalfSize()
	if math.Abs(candidate.X) > half || math.Abs(candidate.Z) > half {
		return CauseWall
	}

	for i := 1; i < len(snake); i++ {
		if candidate.DistanceTo(snake[i]) < hitRadius {
			return CauseSelf
		}
	}

	return CauseNone
}
