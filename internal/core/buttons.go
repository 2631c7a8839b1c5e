package core

// Button identifies one of the console's directional buttons.
// The numeric values follow the console convention: 0=left, 1=right,
// 2=up, 3=down.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Buttons represents the button state for a single simulation tick.
// Carts poll it fresh every Step; the platform rebuilds it each frame.
type Buttons struct {
	// held maps buttons to whether they are active this frame.
	// Using a map allows checking multiple buttons without order dependency.
	held map[Button]bool
}

// NewButtons creates an empty button frame.
func NewButtons() Buttons {
	return Buttons{
		held: make(map[Button]bool),
	}
}

// Set marks a button as active for this frame.
func (f *Buttons) Set(b Button) {
	if f.held == nil {
		f.held = make(map[Button]bool)
	}
	f.held[b] = true
}

// Held returns true if the given button is active this frame.
// Buttons are independent: any combination may be held at once.
func (f Buttons) Held(b Button) bool {
	if f.held == nil {
		return false
	}
	return f.held[b]
}

// Clear resets all buttons for the next frame.
func (f *Buttons) Clear() {
	for k := range f.held {
		delete(f.held, k)
	}
}

// Clone creates a copy of this button frame.
func (f Buttons) Clone() Buttons {
	clone := NewButtons()
	for k, v := range f.held {
		clone.held[k] = v
	}
	return clone
}
