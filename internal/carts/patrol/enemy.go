package patrol

import (
	"github.com/pixelrip/pixelpatrol/internal/gfx"
)

// Enemy kind constants.
const (
	EnemyW  = 10
	EnemyH  = 9
	EnemySX = 32
	EnemySY = 0

	// EnemySpeed is the default patrol speed in pixels per tick.
	EnemySpeed = 1.0

	// EnemyPatrolRange is the default patrol distance when no bounds are
	// configured: the enemy walks [x, x+EnemyPatrolRange] and back.
	EnemyPatrolRange = 40.0
)

// EnemyOptions configures a new enemy. A zero Speed selects EnemySpeed;
// if MinX and MaxX are both zero the patrol covers
// [X, X+EnemyPatrolRange].
type EnemyOptions struct {
	X     float64
	Y     float64
	Speed float64
	MinX  float64
	MaxX  float64
}

// Enemy patrols horizontally between two bounds, independent of input.
// Heading is +1 while moving toward MaxX and -1 on the way back.
type Enemy struct {
	x       float64
	y       float64
	speed   float64
	minX    float64
	maxX    float64
	heading float64
}

// NewEnemy creates an independent enemy instance from the given options.
// The initial heading is forward (toward MaxX).
func NewEnemy(opts EnemyOptions) *Enemy {
	if opts.Speed == 0 {
		opts.Speed = EnemySpeed
	}
	if opts.MinX == 0 && opts.MaxX == 0 {
		opts.MinX = opts.X
		opts.MaxX = opts.X + EnemyPatrolRange
	}
	return &Enemy{
		x:       opts.X,
		y:       opts.Y,
		speed:   opts.Speed,
		minX:    opts.MinX,
		maxX:    opts.MaxX,
		heading: 1,
	}
}

// Update advances the patrol by one tick: move speed pixels along the
// current heading, and on reaching a bound clamp to it exactly and
// reverse. Clamping keeps round trips drift-free: a full cycle returns
// the enemy to precisely its starting position.
func (e *Enemy) Update() {
	e.x += e.speed * e.heading

	if e.heading > 0 && e.x >= e.maxX {
		e.x = e.maxX
		e.heading = -1
	} else if e.heading < 0 && e.x <= e.minX {
		e.x = e.minX
		e.heading = 1
	}
}

// Draw blits the enemy sprite inside a palette scope. The enemy sheet
// region uses the default color key (black transparent), so the scope
// carries no overrides; it still guarantees the palette is in its default
// state when the draw returns.
func (e *Enemy) Draw(r *gfx.Renderer) {
	r.PaletteScope(func(r *gfx.Renderer) {
		r.Blit(EnemySX, EnemySY, EnemyW, EnemyH, int(e.x), int(e.y))
	})
}

// Position returns the enemy's current pixel position.
func (e *Enemy) Position() (x, y float64) {
	return e.x, e.y
}

// Speed returns the enemy's patrol speed in pixels per tick.
func (e *Enemy) Speed() float64 {
	return e.speed
}

// Heading returns +1 while the enemy moves toward MaxX and -1 toward MinX.
func (e *Enemy) Heading() float64 {
	return e.heading
}

// Bounds returns the patrol bounds.
func (e *Enemy) Bounds() (minX, maxX float64) {
	return e.minX, e.maxX
}
