package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelrip/pixelpatrol/internal/cart"
	"github.com/pixelrip/pixelpatrol/internal/core"
	"github.com/pixelrip/pixelpatrol/internal/gfx"
)

// Model is the Bubble Tea model for running a cart. Each tick runs the
// cart's update phase (Step) to completion; the draw phase (Render) only
// happens afterwards, in View.
type Model struct {
	cart     cart.Cart
	renderer *gfx.Renderer
	keys     *KeyMapper
	config   core.RuntimeConfig
	buttons  core.Buttons
	paused   bool
	quitting bool
	reset    bool
}

// NewModel creates a new Bubble Tea model for the given cart.
func NewModel(c cart.Cart, cfg core.RuntimeConfig) Model {
	screen := gfx.NewScreen(cfg.ConsoleW, cfg.ConsoleH)

	return Model{
		cart:     c,
		renderer: gfx.NewRenderer(screen, c.Sheet()),
		keys:     NewKeyMapper(),
		config:   cfg,
		buttons:  core.NewButtons(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.cart.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Terminals only report presses, so a
// button is considered held for the tick in which its key event arrives;
// continuous movement rides on terminal autorepeat.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapControl(msg) {
	case ControlQuit:
		m.quitting = true
		return m, tea.Quit
	case ControlPause:
		m.paused = !m.paused
		return m, nil
	case ControlReset:
		m.reset = true
		return m, nil
	}

	if b, ok := m.keys.MapButton(msg); ok {
		m.buttons.Set(b)
	}

	return m, nil
}

// handleTick runs one simulation tick: the cart's whole update phase, then
// the button frame is cleared for the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.reset {
		m.cart.Reset(m.config)
		m.reset = false
		m.paused = false
		m.buttons.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if !m.paused {
		m.cart.Step(m.buttons)
	}

	m.buttons.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View runs the draw phase and converts the finished frame to terminal
// output. Render never mutates cart state, so redrawing is safe at any
// message cadence.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.cart.Render(m.renderer)

	return RenderScreen(m.renderer.Screen())
}

// Run starts the Bubble Tea program for the given cart.
func Run(c cart.Cart, cfg core.RuntimeConfig) error {
	model := NewModel(c, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
