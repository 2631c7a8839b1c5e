package patrol

import (
	"testing"

	"github.com/pixelrip/pixelpatrol/internal/core"
	"github.com/pixelrip/pixelpatrol/internal/gfx"
)

func TestNewPlayerOptions(t *testing.T) {
	p := NewPlayer(PlayerOptions{X: 5, Y: 7, Speed: 3})

	x, y := p.Position()
	if x != 5 || y != 7 {
		t.Errorf("Position = (%v, %v), expected (5, 7)", x, y)
	}
	if p.Speed() != 3 {
		t.Errorf("Speed = %v, expected 3", p.Speed())
	}
}

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer(PlayerOptions{})

	x, y := p.Position()
	if x != 0 || y != 0 {
		t.Errorf("Default position should be (0, 0), got (%v, %v)", x, y)
	}
	if p.Speed() != PlayerSpeed {
		t.Errorf("Default speed should be %v, got %v", PlayerSpeed, p.Speed())
	}
}

func TestPlayerMoveRight(t *testing.T) {
	p := NewPlayer(PlayerOptions{X: 10, Y: 20, Speed: 3})

	in := core.NewButtons()
	in.Set(core.ButtonRight)
	p.Update(in)

	x, y := p.Position()
	if x != 13 {
		t.Errorf("Right should move x by exactly speed, got x = %v", x)
	}
	if y != 20 {
		t.Errorf("Right should leave y unchanged, got y = %v", y)
	}
}

func TestPlayerDiagonalNotNormalized(t *testing.T) {
	p := NewPlayer(PlayerOptions{X: 10, Y: 20, Speed: 3})

	// Up and right in the same tick: both axes move the full speed.
	in := core.NewButtons()
	in.Set(core.ButtonUp)
	in.Set(core.ButtonRight)
	p.Update(in)

	x, y := p.Position()
	if x != 13 || y != 17 {
		t.Errorf("Diagonal should be the sum of axis moves, got (%v, %v), expected (13, 17)", x, y)
	}
}

func TestPlayerNoBoundsClamping(t *testing.T) {
	p := NewPlayer(PlayerOptions{X: 1, Y: 1, Speed: 2})

	in := core.NewButtons()
	in.Set(core.ButtonLeft)
	in.Set(core.ButtonUp)
	p.Update(in)

	x, y := p.Position()
	if x != -1 || y != -1 {
		t.Errorf("Position may leave the screen, got (%v, %v), expected (-1, -1)", x, y)
	}
}

func TestPlayerIdleWithoutInput(t *testing.T) {
	p := NewPlayer(PlayerOptions{X: 10, Y: 20})

	p.Update(core.NewButtons())

	x, y := p.Position()
	if x != 10 || y != 20 {
		t.Errorf("No input should not move the player, got (%v, %v)", x, y)
	}
}

func TestPlayerInstancesIsolated(t *testing.T) {
	a := NewPlayer(PlayerOptions{X: 1, Y: 2, Speed: 5})
	b := NewPlayer(PlayerOptions{X: 9, Y: 8, Speed: 1})

	in := core.NewButtons()
	in.Set(core.ButtonDown)
	a.Update(in)

	bx, by := b.Position()
	if bx != 9 || by != 8 {
		t.Errorf("Updating a should not touch b, b moved to (%v, %v)", bx, by)
	}
	if b.Speed() != 1 {
		t.Errorf("b's speed changed to %v", b.Speed())
	}
}

func TestPlayerDrawUsesColorKey(t *testing.T) {
	r := gfx.NewRenderer(gfx.NewScreen(64, 64), sheet)
	r.Screen().Fill(gfx.ColorDarkBlue)

	p := NewPlayer(PlayerOptions{X: 0, Y: 0})
	p.Draw(r)

	// Sprite pixel (0,0) is the green key: the background shows through.
	if got := r.Screen().Get(0, 0); got != gfx.ColorDarkBlue {
		t.Errorf("Green key pixel should be transparent, got %d", got)
	}
	// Sprite pixel (6,0) is black outline: opaque under the swapped key.
	if got := r.Screen().Get(6, 0); got != gfx.ColorBlack {
		t.Errorf("Black outline should be opaque, got %d", got)
	}
}

func TestPlayerDrawRestoresPalette(t *testing.T) {
	r := gfx.NewRenderer(gfx.NewScreen(64, 64), sheet)

	p := NewPlayer(PlayerOptions{})
	p.Draw(r)

	if r.Transparent(gfx.ColorGreen) {
		t.Error("Draw should restore green to opaque")
	}
	if !r.Transparent(gfx.ColorBlack) {
		t.Error("Draw should restore black as the default key")
	}
}

func TestPlayerDrawDoesNotMutateState(t *testing.T) {
	r := gfx.NewRenderer(gfx.NewScreen(64, 64), sheet)

	p := NewPlayer(PlayerOptions{X: 12, Y: 34, Speed: 3})
	p.Draw(r)

	x, y := p.Position()
	if x != 12 || y != 34 || p.Speed() != 3 {
		t.Errorf("Draw must be read-only, state is now (%v, %v, %v)", x, y, p.Speed())
	}
}
