package patrol

import (
	"github.com/pixelrip/pixelpatrol/internal/core"
	"github.com/pixelrip/pixelpatrol/internal/gfx"
)

// Player kind constants. Dimensions and sheet offsets are fixed per kind
// and never become per-instance state.
const (
	PlayerW  = 17
	PlayerH  = 13
	PlayerSX = 8
	PlayerSY = 0

	// PlayerSpeed is the default movement speed in pixels per tick.
	PlayerSpeed = 2.0
)

// PlayerOptions configures a new player. Zero X/Y spawn at the origin;
// a zero Speed selects PlayerSpeed. No further validation happens here:
// out-of-range values propagate into rendering unchanged.
type PlayerOptions struct {
	X     float64
	Y     float64
	Speed float64
}

// Player is the button-driven entity. Each instance exclusively owns its
// position and speed; behavior and constants are shared by the kind.
type Player struct {
	x     float64
	y     float64
	speed float64
}

// NewPlayer creates an independent player instance from the given options.
func NewPlayer(opts PlayerOptions) *Player {
	if opts.Speed == 0 {
		opts.Speed = PlayerSpeed
	}
	return &Player{
		x:     opts.X,
		y:     opts.Y,
		speed: opts.Speed,
	}
}

// Update moves the player by its speed along each axis whose button is
// held this tick. Axes are independent: a diagonal is the plain sum of two
// axis moves, with no normalization and no bounds clamping.
func (p *Player) Update(in core.Buttons) {
	if in.Held(core.ButtonLeft) {
		p.x -= p.speed
	}
	if in.Held(core.ButtonRight) {
		p.x += p.speed
	}
	if in.Held(core.ButtonUp) {
		p.y -= p.speed
	}
	if in.Held(core.ButtonDown) {
		p.y += p.speed
	}
}

// Draw blits the player sprite. The sprite's background is green (index 11)
// and its outline uses black (index 0), so the default color key is swapped
// inside a palette scope: black becomes opaque, green becomes the key.
// The scope restores the default palette on every exit path.
func (p *Player) Draw(r *gfx.Renderer) {
	r.PaletteScope(func(r *gfx.Renderer) {
		r.SetTransparent(gfx.ColorBlack, false)
		r.SetTransparent(gfx.ColorGreen, true)
		r.Blit(PlayerSX, PlayerSY, PlayerW, PlayerH, int(p.x), int(p.y))
	})
}

// Position returns the player's current pixel position.
func (p *Player) Position() (x, y float64) {
	return p.x, p.y
}

// Speed returns the player's movement speed in pixels per tick.
func (p *Player) Speed() float64 {
	return p.speed
}
