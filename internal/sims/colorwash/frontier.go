package colorwash

import "math"

// Coord addresses a grid cell by column and row.
type Coord struct {
	Col, Row int
}

// Frontier is the unordered set of filled cells that may still grow. Only
// membership and size matter, so removal swaps the last entry into the hole.
// Appends go to the tail, which keeps the newest entries at the end for
// size control.
type Frontier struct {
	items []Coord
}

// Len returns the number of frontier entries.
func (f *Frontier) Len() int { return len(f.items) }

// At returns the entry at index i.
func (f *Frontier) At(i int) Coord { return f.items[i] }

// Add appends a coordinate.
func (f *Frontier) Add(c Coord) { f.items = append(f.items, c) }

// Append appends several coordinates in order.
func (f *Frontier) Append(cs ...Coord) { f.items = append(f.items, cs...) }

// RemoveAt drops the entry at index i in O(1).
func (f *Frontier) RemoveAt(i int) {
	last := len(f.items) - 1
	f.items[i] = f.items[last]
	f.items = f.items[:last]
}

// Coords returns a copy of the entries.
func (f *Frontier) Coords() []Coord {
	return append([]Coord(nil), f.items...)
}

// Reset empties the frontier, keeping its capacity.
func (f *Frontier) Reset() { f.items = f.items[:0] }

// Control bounds the frontier against a grid of total cells. When more than
// above*total entries are present only the newest floor(keep*total) survive.
// It reports whether entries were discarded.
func (f *Frontier) Control(total int, above, keep float64) bool {
	if float64(len(f.items)) <= float64(total)*above {
		return false
	}
	n := int(math.Floor(float64(total) * keep))
	if n < 0 {
		n = 0
	}
	if n >= len(f.items) {
		return false
	}
	copy(f.items, f.items[len(f.items)-n:])
	f.items = f.items[:n]
	return true
}
