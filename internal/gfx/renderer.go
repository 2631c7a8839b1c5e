package gfx

// Renderer owns the console's shared drawing state: the screen, the sprite
// sheet, and the palette's per-index transparency flags. The transparency
// state is process-wide from the carts' point of view, so every draw that
// overrides it must restore the default before returning; PaletteScope
// exists so that restoration cannot be forgotten on any exit path.
type Renderer struct {
	screen *Screen
	sheet  *SpriteSheet
	transp [NumColors]bool
}

// NewRenderer creates a renderer for the given screen and sprite sheet,
// with the default palette state.
func NewRenderer(screen *Screen, sheet *SpriteSheet) *Renderer {
	r := &Renderer{
		screen: screen,
		sheet:  sheet,
	}
	r.ResetPalette()
	return r
}

// Screen returns the screen this renderer draws to.
func (r *Renderer) Screen() *Screen {
	return r.screen
}

// SetTransparent sets the color-key flag for one palette index.
// Transparent source pixels are skipped during Blit.
func (r *Renderer) SetTransparent(c Color, transparent bool) {
	if int(c) >= NumColors {
		return
	}
	r.transp[c] = transparent
}

// Transparent reports whether the given palette index is currently
// treated as transparent.
func (r *Renderer) Transparent(c Color) bool {
	if int(c) >= NumColors {
		return false
	}
	return r.transp[c]
}

// ResetPalette restores the default transparency state: color 0 is
// transparent, every other index is opaque.
func (r *Renderer) ResetPalette() {
	for i := range r.transp {
		r.transp[i] = false
	}
	r.transp[ColorBlack] = true
}

// PaletteScope runs fn with the current renderer and restores the default
// palette state afterwards, even if fn panics. Entity draws wrap their
// color-key overrides and blits in a scope so a later draw never inherits
// stale transparency settings.
func (r *Renderer) PaletteScope(fn func(*Renderer)) {
	defer r.ResetPalette()
	fn(r)
}

// Blit copies a w x h region of the sprite sheet at (sx, sy) to the screen
// at (dx, dy). Source pixels whose palette index is currently transparent
// are skipped; destination pixels outside the screen are clipped.
func (r *Renderer) Blit(sx, sy, w, h, dx, dy int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := r.sheet.At(sx+x, sy+y)
			if r.transp[c] {
				continue
			}
			r.screen.Set(dx+x, dy+y, c)
		}
	}
}
