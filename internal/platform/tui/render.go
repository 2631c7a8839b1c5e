package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pixelrip/pixelpatrol/internal/gfx"
)

// paletteHex maps the console's 16 palette indices to terminal colors.
var paletteHex = [gfx.NumColors]string{
	"#000000", // black
	"#1D2B53", // dark blue
	"#7E2553", // dark purple
	"#008751", // dark green
	"#AB5236", // brown
	"#5F574F", // dark gray
	"#C2C3C7", // light gray
	"#FFF1E8", // white
	"#FF004D", // red
	"#FFA300", // orange
	"#FFEC27", // yellow
	"#00E436", // green
	"#29ADFF", // blue
	"#83769C", // indigo
	"#FF77A8", // pink
	"#FFCCAA", // peach
}

// halfBlock shows two pixels per terminal cell: the foreground colors the
// upper pixel, the background the lower one.
const halfBlock = '▀'

// styleFor builds a lipgloss style for one upper/lower pixel pair.
// Styles are cached per color pair; 256 pairs at most.
var styleCache = map[[2]gfx.Color]lipgloss.Style{}

func styleFor(top, bottom gfx.Color) lipgloss.Style {
	key := [2]gfx.Color{top, bottom}
	if s, ok := styleCache[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(paletteHex[top])).
		Background(lipgloss.Color(paletteHex[bottom]))
	styleCache[key] = s
	return s
}

// RenderScreen converts a pixel screen to styled terminal output, packing
// two pixel rows into each terminal row with half blocks. Adjacent cells
// with the same color pair are grouped to minimize ANSI escape sequences.
func RenderScreen(s *gfx.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			top := s.Get(x, y)
			bottom := s.Get(x, y+1)

			// Collect consecutive cells with the same color pair
			var run strings.Builder
			for x < s.Width() && s.Get(x, y) == top && s.Get(x, y+1) == bottom {
				run.WriteRune(halfBlock)
				x++
			}

			sb.WriteString(styleFor(top, bottom).Render(run.String()))
		}
	}
	return sb.String()
}
