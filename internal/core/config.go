package core

import (
	"image/color"
	"strconv"
)

// GridForViewport derives the cell grid covering a viewport of the given pixel
// size, rounding partial cells up.
func GridForViewport(width, height, cell int) Size {
	if cell <= 0 {
		cell = 1
	}
	return Size{W: ceilDiv(width, cell), H: ceilDiv(height, cell)}
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 1
	}
	return (a + b - 1) / b
}

// The Map* helpers read flag-style values out of a factory config map. Missing
// or unparseable entries, and values below min, leave dst untouched.

// MapInt reads an integer entry no smaller than min.
func MapInt(cfg map[string]string, key string, min int, dst *int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
		*dst = parsed
	}
}

// MapInt64 reads a 64-bit integer entry.
func MapInt64(cfg map[string]string, key string, dst *int64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
		*dst = parsed
	}
}

// MapProbability reads a float entry constrained to [0, 1].
func MapProbability(cfg map[string]string, key string, dst *float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
		*dst = parsed
	}
}

// MapPalette reads a comma-separated hex palette entry.
func MapPalette(cfg map[string]string, key string, dst *[]color.RGBA) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := ParsePalette(v); err == nil {
		*dst = parsed
	}
}

// MapGrid applies "w"/"h" cell counts, or derives them from
// "viewport_w"/"viewport_h" and the cell size when those are present.
func MapGrid(cfg map[string]string, cell int, size *Size) {
	vw, vh := 0, 0
	MapInt(cfg, "viewport_w", 1, &vw)
	MapInt(cfg, "viewport_h", 1, &vh)
	if vw > 0 && vh > 0 {
		*size = GridForViewport(vw, vh, cell)
	}
	MapInt(cfg, "w", 1, &size.W)
	MapInt(cfg, "h", 1, &size.H)
}
