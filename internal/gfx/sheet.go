package gfx

import (
	"fmt"
	"strings"
)

// SpriteSheet is an immutable grid of palette indices shared by every
// entity of a cart. It is built once at load time and never mutated.
type SpriteSheet struct {
	width  int
	height int
	pix    []Color
}

// ParseSheet builds a sprite sheet from text art: one line per pixel row,
// one lowercase hex digit per pixel (0-f, the palette index). All rows must
// have the same width. Blank lines and leading/trailing whitespace around
// the block are ignored.
func ParseSheet(art string) (*SpriteSheet, error) {
	var rows []string
	for _, line := range strings.Split(art, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("gfx: empty sprite sheet")
	}

	width := len(rows[0])
	sheet := &SpriteSheet{
		width:  width,
		height: len(rows),
		pix:    make([]Color, 0, width*len(rows)),
	}

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("gfx: sheet row %d is %d pixels wide, expected %d", y, len(row), width)
		}
		for x, ch := range row {
			c, err := hexColor(ch)
			if err != nil {
				return nil, fmt.Errorf("gfx: sheet pixel (%d,%d): %w", x, y, err)
			}
			sheet.pix = append(sheet.pix, c)
		}
	}

	return sheet, nil
}

// MustParseSheet is ParseSheet for compile-time sheet assets; it panics on
// malformed art.
func MustParseSheet(art string) *SpriteSheet {
	sheet, err := ParseSheet(art)
	if err != nil {
		panic(err)
	}
	return sheet
}

// hexColor converts a single hex digit to a palette index.
func hexColor(ch rune) (Color, error) {
	switch {
	case ch >= '0' && ch <= '9':
		return Color(ch - '0'), nil
	case ch >= 'a' && ch <= 'f':
		return Color(ch-'a') + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", ch)
	}
}

// Width returns the sheet width in pixels.
func (sh *SpriteSheet) Width() int {
	return sh.width
}

// Height returns the sheet height in pixels.
func (sh *SpriteSheet) Height() int {
	return sh.height
}

// At returns the palette index at (x, y).
// Out-of-bounds reads return black, matching the screen convention.
func (sh *SpriteSheet) At(x, y int) Color {
	if x < 0 || x >= sh.width || y < 0 || y >= sh.height {
		return ColorBlack
	}
	return sh.pix[y*sh.width+x]
}
