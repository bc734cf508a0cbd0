package batch

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"spritebg/erase"
)

// parseHexColor reads #RGB, #RGBA, #RRGGBB or #RRGGBBAA. Colors without an
// alpha component are fully opaque.
func parseHexColor(s string) (erase.Color, error) {
	var c erase.Color
	var n int
	var err error
	switch len(s) {
	case 4:
		n, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		c.A = 0xFF
	case 5:
		n, err = fmt.Sscanf(s, "#%1x%1x%1x%1x", &c.R, &c.G, &c.B, &c.A)
		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		c.A |= c.A << 4
	case 7:
		n, err = fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B)
		c.A = 0xFF
	case 9:
		n, err = fmt.Sscanf(s, "#%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A)
	default:
		return erase.Color{}, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}
	if err != nil {
		return erase.Color{}, fmt.Errorf("could not read color %q: %w", s, err)
	} else if n < 3 {
		return erase.Color{}, fmt.Errorf("insufficient color fields in %q: %d", s, n)
	}
	return c, nil
}

// hexColor renders the RGB part of c as #rrggbb for log attributes.
func hexColor(c erase.Color) string {
	col, ok := colorful.MakeColor(c.NRGBA())
	if !ok {
		return "transparent"
	}
	return col.Hex()
}
