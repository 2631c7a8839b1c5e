// Package cart provides a global registry for cart factories.
// Carts register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package cart

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pixelrip/pixelpatrol/internal/core"
	"github.com/pixelrip/pixelpatrol/internal/gfx"
)

// Cart is the interface every demo cart implements. Carts contain pure
// logic with no external dependencies (especially no Bubble Tea); the
// platform handles input mapping, timing, and terminal output.
type Cart interface {
	// ID returns a unique identifier for this cart (e.g., "patrol").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the cart state.
	// Called once at start and again on restart. The RuntimeConfig
	// provides the console dimensions and tick rate.
	Reset(cfg core.RuntimeConfig)

	// Sheet returns the cart's sprite sheet. The platform hands it to the
	// renderer; it is immutable shared data, never per-instance state.
	Sheet() *gfx.SpriteSheet

	// Step advances the simulation by one fixed tick. This is the update
	// phase: every entity's state is advanced here, before any drawing.
	Step(in core.Buttons)

	// Render draws the current state into the renderer. This is the draw
	// phase: it must not mutate entity state, and it runs only after Step
	// has completed for the tick.
	Render(r *gfx.Renderer)
}

// Info contains metadata about a registered cart.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a cart.
type Factory func() Cart

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a cart factory to the registry.
// Typically called from a cart's init() function.
// Panics if a cart with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("cart: %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	c := f()
	titles[id] = c.Title()
}

// List returns information about all registered carts, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new cart by its ID.
// Returns an error if the cart ID is not registered.
func Create(id string) (Cart, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("cart: unknown cart %q", id)
	}

	return f(), nil
}

// Exists checks if a cart with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
