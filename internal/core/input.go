package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move left
	ActionRight          // Right arrow, D - move right
	ActionStop           // S, Down - stop horizontal movement
	ActionJump           // Space, W, Up - jump (held for a higher jump)
	ActionDebug          // I - toggle debug overlay
	ActionUp             // menu navigation
	ActionDown           // menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
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
	case ActionStop:
		return "Stop"
	case ActionJump:
		return "Jump"
	case ActionDebug:
		return "Debug"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
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

// InputFrame represents the input collected during one simulation frame.
// Pressed actions correspond to key-down events, released actions to key-up.
type InputFrame struct {
	// Actions holds actions pressed this frame.
	Actions map[Action]bool
	// Releases holds actions released this frame.
	Releases map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:  make(map[Action]bool),
		Releases: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Release marks an action as released for this frame.
func (f *InputFrame) Release(a Action) {
	if f.Releases == nil {
		f.Releases = make(map[Action]bool)
	}
	f.Releases[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Released returns true if the given action was released this frame.
func (f InputFrame) Released(a Action) bool {
	return f.Releases[a]
}

// AnyPressed returns true if at least one action was pressed this frame.
func (f InputFrame) AnyPressed() bool {
	for a, on := range f.Actions {
		if on && a != ActionNone {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Releases {
		delete(f.Releases, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Releases {
		clone.Releases[k] = v
	}
	return clone
}
