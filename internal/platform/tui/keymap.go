package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelrip/pixelpatrol/internal/core"
)

// Control represents a platform-level action, separate from the console
// buttons the carts see.
type Control int

const (
	ControlNone Control = iota
	ControlPause
	ControlReset
	ControlQuit
)

// KeyMapper translates Bubble Tea key messages to console buttons and
// platform controls. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapButton translates a key message to a console button.
// Returns the button and whether the key maps to one.
func (km *KeyMapper) MapButton(msg tea.KeyMsg) (core.Button, bool) {
	switch msg.String() {
	case "left", "a", "h":
		return core.ButtonLeft, true
	case "right", "d", "l":
		return core.ButtonRight, true
	case "up", "w", "k":
		return core.ButtonUp, true
	case "down", "s", "j":
		return core.ButtonDown, true
	}
	return 0, false
}

// MapControl translates a key message to a platform control.
func (km *KeyMapper) MapControl(msg tea.KeyMsg) Control {
	switch msg.String() {
	case "ctrl+c", "q":
		return ControlQuit
	case "p", "esc":
		return ControlPause
	case "r":
		return ControlReset
	}
	return ControlNone
}
