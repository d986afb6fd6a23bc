package snake3d

import (
	"math/rand"

	"github.com/vovakirdan/snake3d/internal/core"
)

// PlaceFood picks a uniformly random whole cell within the food bound on X
// and Z. Food sits on the snake's layer. The body is not excluded, so food
// may land on the snake.
func PlaceFood(grid Grid, rng *rand.Rand) core.Vec3 {
	b := grid.FoodBound()
	if b < 0 {
		return Origin
	}
	span := 2*b + 1
	x := rng.Intn(span) - b
	z := rng.Intn(span) - b
	return core.V(float64(x), 0, float64(z))
}
