package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, H - shift piece left
	ActionRight            // Right arrow, L - shift piece right
	ActionRotateCW         // Up arrow, X - rotate clockwise
	ActionRotateCCW        // Z - rotate counter-clockwise
	ActionSoftDrop         // Down arrow, J - accelerated fall while held
	ActionHardDrop         // Space - drop to the floor and lock
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// Actions holds the actions that became active this frame; Released holds the
// actions whose hold ended this frame. Both are edges, not levels.
type InputFrame struct {
	Actions  map[Action]bool
	Released map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:  make(map[Action]bool),
		Released: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Release marks an action as released for this frame.
func (f *InputFrame) Release(a Action) {
	if f.Released == nil {
		f.Released = make(map[Action]bool)
	}
	f.Released[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// WasReleased returns true if the given action was released this frame.
func (f InputFrame) WasReleased(a Action) bool {
	if f.Released == nil {
		return false
	}
	return f.Released[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Released {
		delete(f.Released, k)
	}
}
