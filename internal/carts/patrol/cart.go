// Package patrol implements the sprite patrol demo cart: a button-driven
// player and a set of enemies on bounded horizontal patrols, drawn from a
// shared sprite sheet with color-key transparency.
package patrol

import (
	"github.com/pixelrip/pixelpatrol/internal/cart"
	"github.com/pixelrip/pixelpatrol/internal/config"
	"github.com/pixelrip/pixelpatrol/internal/core"
	"github.com/pixelrip/pixelpatrol/internal/gfx"
)

// backgroundColor fills the screen each frame, so color-keyed sprite
// pixels are visibly cut out rather than blending into black.
const backgroundColor = gfx.ColorDarkBlue

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Cart wires the patrol entities to the platform. It owns one player and
// the configured enemies; instances never observe each other's state.
type Cart struct {
	player  *Player
	enemies []*Enemy
	runtime core.RuntimeConfig
	cfg     config.PatrolConfig
}

// New creates a new patrol cart instance.
func New() *Cart {
	return &Cart{}
}

// ID returns the unique identifier for this cart.
func (c *Cart) ID() string {
	return "patrol"
}

// Title returns the display name for this cart.
func (c *Cart) Title() string {
	return "Sprite Patrol"
}

// Sheet returns the cart's sprite sheet.
func (c *Cart) Sheet() *gfx.SpriteSheet {
	return sheet
}

// Reset initializes or restarts the cart: load the cart config and build
// fresh entity instances from it.
func (c *Cart) Reset(runtime core.RuntimeConfig) {
	c.runtime = runtime

	cfg, err := config.LoadPatrol(configPath)
	if err != nil {
		cfg = config.DefaultPatrolConfig()
	}
	c.cfg = cfg

	c.player = NewPlayer(PlayerOptions{
		X:     cfg.Player.X,
		Y:     cfg.Player.Y,
		Speed: cfg.Player.Speed,
	})

	c.enemies = make([]*Enemy, 0, len(cfg.Enemies))
	for _, spawn := range cfg.Enemies {
		c.enemies = append(c.enemies, NewEnemy(EnemyOptions{
			X:     spawn.X,
			Y:     spawn.Y,
			Speed: spawn.Speed,
			MinX:  spawn.MinX,
			MaxX:  spawn.MaxX,
		}))
	}
}

// Step runs the update phase: the player first, then each enemy in
// creation order. Every update completes before any draw of this tick.
func (c *Cart) Step(in core.Buttons) {
	c.player.Update(in)
	for _, e := range c.enemies {
		e.Update()
	}
}

// Render runs the draw phase in the same order as the update phase.
// It does not mutate entity state; each draw leaves the shared palette
// back in its default state.
func (c *Cart) Render(r *gfx.Renderer) {
	r.Screen().Fill(backgroundColor)

	c.player.Draw(r)
	for _, e := range c.enemies {
		e.Draw(r)
	}
}

// Register the cart with the registry
func init() {
	cart.Register("patrol", func() cart.Cart {
		return New()
	})
}
