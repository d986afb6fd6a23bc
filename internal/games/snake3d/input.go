package snake3d

import "github.com/vovakirdan/snake3d/internal/core"

// Steer handles one directional key press. A turn is accepted only when the
// current travel direction is zero on the proposed axis, which rules out
// reversing onto the neck. The key for the current travel direction is also
// accepted and cancels a turn pressed earlier in the same tick. An accepted
// key replaces any earlier pending turn; it takes effect at the next tick.
// Returns whether the key was accepted.
func (w *World) Steer(a core.Action) bool {
	var next core.Vec3
	switch a {
	case core.ActionLeft:
		next = DirLeft
	case core.ActionUp:
		next = DirUp
	case core.ActionRight:
		next = DirRight
	case core.ActionDown:
		next = DirDown
	default:
		return false
	}

	if next != w.Direction && next.Dot(w.Direction) != 0 {
		return false
	}

	w.Pending = next
	return true
}
