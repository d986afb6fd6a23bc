package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A, H
	ActionUp           // Up arrow, W, K
	ActionRight        // Right arrow, D, L
	ActionDown         // Down arrow, S, J
	ActionQuit         // Q, Esc, Ctrl+C
)

// Browser key codes for the arrow keys, as delivered by keydown events.
const (
	KeyCodeLeft  = 37
	KeyCodeUp    = 38
	KeyCodeRight = 39
	KeyCodeDown  = 40
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionLeft:
		return "left"
	case ActionUp:
		return "up"
	case ActionRight:
		return "right"
	case ActionDown:
		return "down"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// IsDirection reports whether the action steers the snake.
func (a Action) IsDirection() bool {
	return a >= ActionLeft && a <= ActionDown
}

// ActionFromKeyCode maps an arrow key code to a directional action.
// Unrecognized codes map to ActionNone.
func ActionFromKeyCode(code int) Action {
	switch code {
	case KeyCodeLeft:
		return ActionLeft
	case KeyCodeUp:
		return ActionUp
	case KeyCodeRight:
		return ActionRight
	case KeyCodeDown:
		return ActionDown
	default:
		return ActionNone
	}
}

// ParseAction parses a directional action name or its one-letter
// abbreviation ("left"/"l", "up"/"u", "right"/"r", "down"/"d").
func ParseAction(name string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "l":
		return ActionLeft, true
	case "up", "u":
		return ActionUp, true
	case "right", "r":
		return ActionRight, true
	case "down", "d":
		return ActionDown, true
	default:
		return ActionNone, false
	}
}
