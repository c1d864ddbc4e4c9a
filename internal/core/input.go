package core

// Action represents a semantic game action, abstracted from physical key
// presses. Games work with high-level intents rather than raw input, so the
// same logic runs under a local terminal and an SSH session.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, Up arrow - move cursor/selection up
	ActionDown          // S, Down arrow - move cursor/selection down
	ActionLeft          // A, Left arrow - move cursor/selection left
	ActionRight         // D, Right arrow - move cursor/selection right
	ActionSelect        // Enter, Space - tap the highlighted entity / confirm
	ActionSell          // X - sell action (trading games)
	ActionBack          // B, Escape - go back to menu
	ActionPause         // P - pause/unpause game
	ActionRestart       // R - restart game after game over
	ActionQuit          // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionSell:
		return "Sell"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether an action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for a := range f.Actions {
		delete(f.Actions, a)
	}
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for a, set := range f.Actions {
		clone.Actions[a] = set
	}
	return clone
}
