package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/corgi-arcade/internal/core"
)

// Hold windows. Terminals report key-down and auto-repeat only, so a key
// counts as released once no repeat arrives in time. The first window
// covers the usual initial repeat delay.
const (
	DefaultInitialHold = 550 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// KeyMapper translates Bubble Tea key messages to game keys and actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a held game key.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Key, bool) {
	switch msg.String() {
	case "left", "a", "h":
		return core.KeyLeft, true
	case "right", "d", "l":
		return core.KeyRight, true
	case "up", "w", "k":
		return core.KeyUp, true
	case "down", "s", "j":
		return core.KeyDown, true
	case " ":
		return core.KeyJump, true
	}
	return 0, false
}

// MapAction translates a key message to a one-shot action.
// Returns ActionNone for keys without an action.
func (km *KeyMapper) MapAction(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "p", "esc":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	case "ctrl+s":
		return core.ActionScreenshot
	}
	return core.ActionNone
}

// opposite pairs release each other: the terminal only repeats the latest key.
var opposite = map[core.Key]core.Key{
	core.KeyLeft:  core.KeyRight,
	core.KeyRight: core.KeyLeft,
	core.KeyUp:    core.KeyDown,
	core.KeyDown:  core.KeyUp,
}

type hold struct {
	last     time.Time
	repeated bool
}

// KeyHold turns key-down and repeat events into held key state.
type KeyHold struct {
	initial time.Duration
	repeat  time.Duration
	held    map[core.Key]hold
}

// NewKeyHold creates a tracker. Non-positive windows take the defaults.
func NewKeyHold(initial, repeat time.Duration) *KeyHold {
	if initial <= 0 {
		initial = DefaultInitialHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &KeyHold{
		initial: initial,
		repeat:  repeat,
		held:    make(map[core.Key]hold),
	}
}

// Press records a key-down or repeat for k at now.
func (h *KeyHold) Press(k core.Key, now time.Time) {
	if o, ok := opposite[k]; ok {
		delete(h.held, o)
	}
	prev, ok := h.held[k]
	h.held[k] = hold{last: now, repeated: ok || prev.repeated}
}

// Expire releases keys whose window has passed.
func (h *KeyHold) Expire(now time.Time) {
	for k, st := range h.held {
		window := h.initial
		if st.repeated {
			window = h.repeat
		}
		if now.Sub(st.last) > window {
			delete(h.held, k)
		}
	}
}

// Held reports whether k is currently held.
func (h *KeyHold) Held(k core.Key) bool {
	_, ok := h.held[k]
	return ok
}

// ReleaseAll drops every held key.
func (h *KeyHold) ReleaseAll() {
	for k := range h.held {
		delete(h.held, k)
	}
}

// Fill copies the held keys into ks, replacing its previous contents.
func (h *KeyHold) Fill(ks *core.KeyState) {
	ks.ReleaseAll()
	for k := range h.held {
		ks.Press(k)
	}
}
