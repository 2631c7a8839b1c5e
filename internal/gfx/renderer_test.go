package gfx

import "testing"

// testRenderer builds a renderer over a small screen and a 4x2 sheet:
//
//	0b8f
//	8888
func testRenderer(t *testing.T, w, h int) *Renderer {
	t.Helper()
	sheet, err := ParseSheet("0b8f\n8888")
	if err != nil {
		t.Fatalf("ParseSheet failed: %v", err)
	}
	return NewRenderer(NewScreen(w, h), sheet)
}

func TestRendererDefaultPalette(t *testing.T) {
	r := testRenderer(t, 8, 8)

	if !r.Transparent(ColorBlack) {
		t.Error("Color 0 should be transparent by default")
	}
	for c := Color(1); c < NumColors; c++ {
		if r.Transparent(c) {
			t.Errorf("Color %d should be opaque by default", c)
		}
	}
}

func TestRendererSetTransparentAndReset(t *testing.T) {
	r := testRenderer(t, 8, 8)

	r.SetTransparent(ColorGreen, true)
	r.SetTransparent(ColorBlack, false)

	if !r.Transparent(ColorGreen) {
		t.Error("Green should be transparent after SetTransparent")
	}
	if r.Transparent(ColorBlack) {
		t.Error("Black should be opaque after SetTransparent")
	}

	r.ResetPalette()

	if r.Transparent(ColorGreen) {
		t.Error("ResetPalette should make green opaque again")
	}
	if !r.Transparent(ColorBlack) {
		t.Error("ResetPalette should make black transparent again")
	}
}

func TestPaletteScopeRestores(t *testing.T) {
	r := testRenderer(t, 8, 8)

	r.PaletteScope(func(r *Renderer) {
		r.SetTransparent(ColorRed, true)
		if !r.Transparent(ColorRed) {
			t.Error("Override should be visible inside the scope")
		}
	})

	if r.Transparent(ColorRed) {
		t.Error("PaletteScope should restore the default palette on return")
	}
	if !r.Transparent(ColorBlack) {
		t.Error("PaletteScope should restore the default color key")
	}
}

func TestPaletteScopeRestoresOnPanic(t *testing.T) {
	r := testRenderer(t, 8, 8)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected the panic to propagate")
			}
		}()
		r.PaletteScope(func(r *Renderer) {
			r.SetTransparent(ColorRed, true)
			panic("draw failed")
		})
	}()

	if r.Transparent(ColorRed) {
		t.Error("PaletteScope should restore the palette even when fn panics")
	}
}

func TestBlitSkipsTransparentPixels(t *testing.T) {
	r := testRenderer(t, 8, 8)
	r.Screen().Fill(ColorDarkBlue)

	// Default key: sheet pixel (0,0) is color 0 and must be skipped;
	// the rest of the row is opaque.
	r.Blit(0, 0, 4, 1, 2, 3)

	if got := r.Screen().Get(2, 3); got != ColorDarkBlue {
		t.Errorf("Transparent source pixel should leave background, got %d", got)
	}
	if got := r.Screen().Get(3, 3); got != ColorGreen {
		t.Errorf("Opaque pixel should be copied, got %d", got)
	}
	if got := r.Screen().Get(4, 3); got != ColorRed {
		t.Errorf("Opaque pixel should be copied, got %d", got)
	}
	if got := r.Screen().Get(5, 3); got != ColorPeach {
		t.Errorf("Opaque pixel should be copied, got %d", got)
	}
}

func TestBlitHonorsColorKeyOverride(t *testing.T) {
	r := testRenderer(t, 8, 8)
	r.Screen().Fill(ColorDarkBlue)

	// Swap the key: black opaque, green transparent.
	r.SetTransparent(ColorBlack, false)
	r.SetTransparent(ColorGreen, true)
	r.Blit(0, 0, 4, 1, 0, 0)

	if got := r.Screen().Get(0, 0); got != ColorBlack {
		t.Errorf("Black should be drawn when made opaque, got %d", got)
	}
	if got := r.Screen().Get(1, 0); got != ColorDarkBlue {
		t.Errorf("Green should be skipped when made transparent, got %d", got)
	}
}

func TestBlitClipsAtScreenEdges(t *testing.T) {
	r := testRenderer(t, 4, 4)

	// Partially off-screen blits must neither panic nor wrap.
	r.Blit(0, 0, 4, 2, -2, -1)
	r.Blit(0, 0, 4, 2, 3, 3)

	if got := r.Screen().Get(0, 0); got != ColorRed {
		t.Errorf("Visible part of the clipped blit should land, got %d", got)
	}
	if got := r.Screen().Get(3, 3); got != ColorBlack {
		// Sheet pixel (0,0) is transparent, so the corner stays black.
		t.Errorf("Corner should keep background, got %d", got)
	}
}
