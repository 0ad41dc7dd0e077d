package core

// Action represents a semantic game action, abstracted from physical
// key presses. Games work with high-level intents rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move ship left
	ActionRight          // D, Right arrow - move ship right
	ActionFire           // Space - fire a projectile
	ActionPause          // P, Escape - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit the session
	ActionRestart        // R - restart after game over
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
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// InputGroup is a logical bucket of actions. At most one action per
// group survives a frame: pressing left then right within the same tick
// yields right, not both.
type InputGroup int

const (
	GroupNone InputGroup = iota
	GroupMovement
	GroupFire
	GroupPause
	GroupQuit
	GroupSystem // restart and other non-gameplay actions
)

// Group returns the input group an action belongs to.
func (a Action) Group() InputGroup {
	switch a {
	case ActionLeft, ActionRight:
		return GroupMovement
	case ActionFire:
		return GroupFire
	case ActionPause:
		return GroupPause
	case ActionQuit:
		return GroupQuit
	case ActionRestart:
		return GroupSystem
	default:
		return GroupNone
	}
}

// InputFrame holds the input state for a single simulation tick.
// It keeps only the most recently set action per group, mirroring how
// the platform buffers key presses between ticks.
type InputFrame struct {
	latest map[InputGroup]Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{latest: make(map[InputGroup]Action)}
}

// Set records an action, replacing any earlier action in the same group.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.latest == nil {
		f.latest = make(map[InputGroup]Action)
	}
	f.latest[a.Group()] = a
}

// Has returns true if the given action is the surviving action of its group.
func (f InputFrame) Has(a Action) bool {
	if f.latest == nil {
		return false
	}
	return f.latest[a.Group()] == a
}

// Latest returns the surviving action for a group, or ActionNone.
func (f InputFrame) Latest(g InputGroup) Action {
	if f.latest == nil {
		return ActionNone
	}
	return f.latest[g]
}

// Clear resets all groups for the next frame.
func (f *InputFrame) Clear() {
	for g := range f.latest {
		delete(f.latest, g)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for g, a := range f.latest {
		clone.latest[g] = a
	}
	return clone
}
