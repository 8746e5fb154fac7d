package core

// Action represents a semantic game action, abstracted from physical key
// presses. Games consume high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - slide tiles up
	ActionDown           // S, Down arrow - slide tiles down
	ActionLeft           // A, Left arrow - slide tiles left
	ActionRight          // D, Right arrow - slide tiles right
	ActionUndo           // U - revert the last move
	ActionRedo           // Ctrl+R - reapply an undone move
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - go back
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
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
	case ActionUndo:
		return "Undo"
	case ActionRedo:
		return "Redo"
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

// InputFrame holds the input gathered during one simulation tick: the set of
// triggered actions plus an optional board-cell tap (from a mouse click).
type InputFrame struct {
	Actions map[Action]bool

	tapCell int
	hasTap  bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		tapCell: -1,
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetTap records a tap on the board cell with the given linear index.
func (f *InputFrame) SetTap(cell int) {
	f.tapCell = cell
	f.hasTap = true
}

// Tap returns the tapped cell index and whether a tap occurred this frame.
func (f InputFrame) Tap() (int, bool) {
	return f.tapCell, f.hasTap
}

// Clear resets all actions and the tap for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.tapCell = -1
	f.hasTap = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.tapCell = f.tapCell
	clone.hasTap = f.hasTap
	return clone
}
