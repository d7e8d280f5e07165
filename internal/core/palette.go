package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHex converts "#rrggbb" or "#rgb" (leading '#' optional) into an opaque
// color.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want 3 or 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// ParsePalette parses a comma-separated list of hex colors. Palettes are
// limited to 255 entries because cell values reserve 0 for empty.
func ParsePalette(list string) ([]color.RGBA, error) {
	var out []color.RGBA
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseHex(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("palette %q: no colors", list)
	}
	if len(out) > 255 {
		return nil, fmt.Errorf("palette has %d colors, max 255", len(out))
	}
	return out, nil
}

// MustPalette is ParsePalette for package-level defaults.
func MustPalette(hexes ...string) []color.RGBA {
	p, err := ParsePalette(strings.Join(hexes, ","))
	if err != nil {
		panic(err)
	}
	return p
}

// Blend mixes overlay onto base with the given overlay weight in [0, 1].
func Blend(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	w := overlayWeight
	inv := 1 - w
	mix := func(b, o uint8) uint8 { return uint8(float64(b)*inv + float64(o)*w + 0.5) }
	return color.RGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: mix(base.A, overlay.A),
	}
}

// Background is the clear color shared by the demos.
var Background = color.RGBA{R: 0x02, G: 0x02, B: 0x02, A: 0xff}
