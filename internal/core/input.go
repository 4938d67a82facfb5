package core

// Key is a held game key. Held keys drive movement and are sampled once per tick.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyJump
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyJump:
		return "Jump"
	default:
		return "Unknown"
	}
}

// KeyState maps keys to pressed (1) or released (0).
// Writes are last-write-wins; unknown keys read as released.
type KeyState struct {
	pressed map[Key]bool
}

// NewKeyState creates a key state with every key released.
func NewKeyState() KeyState {
	return KeyState{pressed: make(map[Key]bool)}
}

// Press marks a key as held down.
func (s *KeyState) Press(k Key) {
	if s.pressed == nil {
		s.pressed = make(map[Key]bool)
	}
	s.pressed[k] = true
}

// Release marks a key as released.
func (s *KeyState) Release(k Key) {
	if s.pressed == nil {
		return
	}
	delete(s.pressed, k)
}

// ReleaseAll releases every key.
func (s *KeyState) ReleaseAll() {
	for k := range s.pressed {
		delete(s.pressed, k)
	}
}

// Pressed returns 1 if the key is held and 0 otherwise.
func (s KeyState) Pressed(k Key) int {
	if s.pressed[k] {
		return 1
	}
	return 0
}

// Axis combines two opposing keys into a signed unit step in {-1, 0, 1}.
func (s KeyState) Axis(neg, pos Key) int {
	return s.Pressed(pos) - s.Pressed(neg)
}

// Clone creates an independent copy of the key state.
func (s KeyState) Clone() KeyState {
	clone := NewKeyState()
	for k, v := range s.pressed {
		clone.pressed[k] = v
	}
	return clone
}

// Action represents a one-shot platform intent, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionPause             // P, Escape - pause/unpause game
	ActionRestart           // R key - restart game after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionScreenshot        // Ctrl+S - save the current frame
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// InputFrame is everything a game reads at the start of one tick:
// the held-key snapshot, the elapsed time and any one-shot actions.
type InputFrame struct {
	Keys    KeyState
	DT      float64 // Seconds since the previous tick; 0 means nominal tick length
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Keys:    NewKeyState(),
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
	return f.Actions[a]
}

// Clear resets one-shot actions for the next frame. Held keys are kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
