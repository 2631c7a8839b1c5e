package patrol

import (
	_ "embed"

	"github.com/pixelrip/pixelpatrol/internal/gfx"
)

// The cart's sprite sheet, stored as hex-digit text art. The player sprite
// (17x13) lives at (8,0) on a green key background; the enemy sprite
// (10x9) lives at (32,0) on the default black key.
//
//go:embed sprites.txt
var rawSheet string

// sheet is parsed once at load time and shared read-only by every
// instance; it is never mutated afterwards.
var sheet = gfx.MustParseSheet(rawSheet)
