package leddy

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a linear RGB triplet as the firmware expects it.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0x00, 0x00, 0x00}
	White = Color{0xff, 0xff, 0xff}

	Red   = Color{0xff, 0x00, 0x00}
	Green = Color{0x00, 0xff, 0x00}
	Blue  = Color{0x00, 0x00, 0xff}

	Yellow  = Color{0xff, 0xff, 0x00}
	Cyan    = Color{0x00, 0xff, 0xff}
	Magenta = Color{0xff, 0x00, 0xff}
)

// ParseColor parses an RRGGBB hex value (no leading '#').
func ParseColor(s string) (Color, error) {
	if len(s) != 6 || strings.Trim(s, "0123456789abcdefABCDEF") != "" {
		return Color{}, fmt.Errorf("%w: %q is not an RRGGBB value", ErrInvalidColor, s)
	}

	c, err := colorful.Hex("#" + strings.ToLower(s))
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	return FromColorful(c), nil
}

// FromColorful converts a colorful color, clamping it into RGB byte range.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{r, g, b}
}

// Colorful returns c as a colorful color.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// String returns the RRGGBB notation accepted by ParseColor.
func (c Color) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}
