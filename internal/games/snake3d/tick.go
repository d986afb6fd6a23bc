package snake3d

import "time"

// maxCatchUpSteps caps the steps a catch-up scheduler runs in one frame so a
// long stall (suspended terminal, dragged window) cannot fast-forward the game.
const maxCatchUpSteps = 5

// TickScheduler decides, once per frame, whether the world should move.
// Timestamps come from any monotonic clock.
type TickScheduler struct {
	Interval time.Duration
	// CatchUp runs one step per elapsed interval (bounded). When false,
	// any number of elapsed intervals collapses into a single step.
	CatchUp bool

	last    time.Duration
	started bool
}

// NewTickScheduler creates a scheduler that collapses missed intervals.
func NewTickScheduler(interval time.Duration) *TickScheduler {
	return &TickScheduler{Interval: interval}
}

// Due reports how many steps to run for a frame at time now. The first
// frame is always due. After that a step is due once strictly more than
// Interval has passed since the last step.
func (s *TickScheduler) Due(now time.Duration) int {
	if !s.started {
		s.started = true
		s.last = now
		return 1
	}

	elapsed := now - s.last
	if elapsed <= s.Interval {
		return 0
	}

	if !s.CatchUp || s.Interval <= 0 {
		s.last = now
		return 1
	}

	steps := int(elapsed / s.Interval)
	if steps > maxCatchUpSteps {
		s.last = now
		return maxCatchUpSteps
	}
	s.last += time.Duration(steps) * s.Interval
	return steps
}

// Restart forgets the last tick so the next frame is due immediately.
func (s *TickScheduler) Restart() {
	s.started = false
	s.last = 0
}
