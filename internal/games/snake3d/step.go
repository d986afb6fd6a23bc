package snake3d

import (
	"math/rand"
)

// Step advances the world by one tick and returns the events it produced.
//
// The head moves one cell along the pending direction. A collision ends the
// run: a GameOver event is emitted and the world is reset in the same tick.
// Otherwise the new head is prepended, food within EatRadius is eaten (the
// target size grows by one and the food moves), and the tail is trimmed so
// the snake never ends a tick longer than its target size.
func Step(w *World, rng *rand.Rand) []Event {
	w.Ticks++
	w.Direction = w.Pending

	candidate := w.Head().Add(w.Direction)

	if cause := CheckCollision(candidate, w.Snake, w.Grid, w.Rules.HitRadius); cause != CauseNone {
		events := []Event{{Kind: EventGameOver, Pos: candidate, Cause: cause}}
		return Reset(w, rng, events)
	}

	w.Snake = append(w.Snake, candidate)
	copy(w.Snake[1:], w.Snake[:len(w.Snake)-1])
	w.Snake[0] = candidate
	events := []Event{{Kind: EventSegmentAdded, Pos: candidate}}

	if candidate.DistanceTo(w.Food) < w.Rules.EatRadius {
		w.TargetSize++
		events = append(events, Event{Kind: EventFoodEaten, Pos: w.Food})
		w.Food = PlaceFood(w.Grid, rng)
		events = append(events, Event{Kind: EventFoodPlaced, Pos: w.Food})
	}

	if len(w.Snake) > w.TargetSize {
		tail := w.Snake[len(w.Snake)-1]
		w.Snake = w.Snake[:len(w.Snake)-1]
		events = append(events, Event{Kind: EventSegmentRemoved, Pos: tail})
	}

	return events
}

// Reset clears the snake tail first, restarts it at the origin with a
// target size of one, restores the initial direction and moves the food.
// The reset events are appended to events.
func Reset(w *World, rng *rand.Rand, events []Event) []Event {
	for i := len(w.Snake) - 1; i >= 0; i-- {
		events = append(events, Event{Kind: EventSegmentRemoved, Pos: w.Snake[i]})
	}
	w.Resets++

	events = w.start(rng, events)
	return append(events, Event{Kind: EventReset, Pos: Origin})
}
