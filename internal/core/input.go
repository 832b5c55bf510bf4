package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
// Games silently ignore actions that do not apply to them: only Beam consumes
// the section/step/ramp/bump group, only the menu consumes quick-select.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionPrimary          // Space - launch, jump, start wall, fire beam
	ActionSecondary        // Shift/X - duck, charge plunger, toggle wall axis
	ActionPause            // P - pause/unpause (Running phase only)
	ActionReset            // R - restart current game
	ActionQuit             // Q, Ctrl+C - leave game/session
	ActionConfirm          // Enter - confirm selection in menu

	// Beam lattice controls. Other games drop these on the floor.
	ActionNextSection  // ] - jump to next lattice section
	ActionPrevSection  // [ - jump to previous lattice section
	ActionIncreaseStep // + - double the power-adjust step
	ActionDecreaseStep // - - halve the power-adjust step
	ActionCopyToAll    // c - copy selected section settings to all sections
	ActionZeroRamp     // z - zero the selected ramp point
	ActionZeroAllRamps // Z - zero every ramp point of the selected magnet
	ActionToggleBump   // b - cycle closed-orbit bump size 3/4/5/off

	// Digit keys: menu quick-select (1-6) and Beam ramp-point select (0-9).
	ActionDigit0
	ActionDigit1
	ActionDigit2
	ActionDigit3
	ActionDigit4
	ActionDigit5
	ActionDigit6
	ActionDigit7
	ActionDigit8
	ActionDigit9
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
	case ActionPrimary:
		return "Primary"
	case ActionSecondary:
		return "Secondary"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionNextSection:
		return "NextSection"
	case ActionPrevSection:
		return "PrevSection"
	case ActionIncreaseStep:
		return "IncreaseStep"
	case ActionDecreaseStep:
		return "DecreaseStep"
	case ActionCopyToAll:
		return "CopyToAll"
	case ActionZeroRamp:
		return "ZeroRamp"
	case ActionZeroAllRamps:
		return "ZeroAllRamps"
	case ActionToggleBump:
		return "ToggleBump"
	}
	if a >= ActionDigit0 && a <= ActionDigit9 {
		return "Digit" + string(rune('0'+int(a-ActionDigit0)))
	}
	return "Unknown"
}

// DigitAction maps 0-9 to the corresponding digit action.
func DigitAction(d int) Action {
	if d < 0 || d > 9 {
		return ActionNone
	}
	return ActionDigit0 + Action(d)
}

// Digit returns the digit value of a digit action, or -1 for any other action.
func (a Action) Digit() int {
	if a < ActionDigit0 || a > ActionDigit9 {
		return -1
	}
	return int(a - ActionDigit0)
}

// InputFrame represents the input state for one simulation tick.
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// FirstDigit returns the lowest digit pressed this frame, or -1 if none.
func (f InputFrame) FirstDigit() int {
	for d := 0; d <= 9; d++ {
		if f.Has(ActionDigit0 + Action(d)) {
			return d
		}
	}
	return -1
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
