package gfx

// Screen is a 2D indexed-color pixel buffer for console output.
// It decouples cart rendering from the terminal: carts draw palette indices
// and the platform turns the finished frame into styled terminal output.
type Screen struct {
	width  int
	height int
	pix    []Color
}

// NewScreen creates a new screen buffer with the given dimensions,
// cleared to black.
func NewScreen(width, height int) *Screen {
	return &Screen{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with black.
func (s *Screen) Clear() {
	s.Fill(ColorBlack)
}

// Fill fills the entire screen with the given color.
func (s *Screen) Fill(c Color) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

// Set places a pixel at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = c
}

// Get returns the pixel at the given position.
// Returns black for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ColorBlack
	}
	return s.pix[y*s.width+x]
}

// Row returns a copy of the specified pixel row.
// Out-of-bounds rows come back black.
func (s *Screen) Row(y int) []Color {
	row := make([]Color, s.width)
	if y < 0 || y >= s.height {
		return row
	}
	copy(row, s.pix[y*s.width:(y+1)*s.width])
	return row
}
