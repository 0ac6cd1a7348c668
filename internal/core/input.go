package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left, A, H
	ActionMoveRight        // Right, D, L
	ActionJump             // Space, Up, W
	ActionStart            // Enter - begin a run from the title screen
	ActionRestart          // R - start again after game over
	ActionQuit             // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state read at the top of one simulation tick.
// Pressed holds edge-triggered actions that occurred since the previous tick;
// Held holds actions whose key is currently down.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Press records an edge for this frame.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Hold marks an action as held (or released when down is false).
func (f *InputFrame) Hold(a Action, down bool) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	if down {
		f.Held[a] = true
		return
	}
	delete(f.Held, a)
}

// Has returns true if the action was pressed during this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// Holding returns true if the action's key is down.
func (f InputFrame) Holding(a Action) bool {
	return f.Held[a]
}

// ClearEdges forgets pressed actions; held state carries over to the next frame.
func (f *InputFrame) ClearEdges() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
}
