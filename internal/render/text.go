package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TextSurface renders cells as terminal half blocks: each character shows two
// rows, the upper cell as foreground and the lower one as background.
type TextSurface struct {
	cols, rows int
	cells      []color.RGBA
	styles     map[[2]color.RGBA]lipgloss.Style
}

// NewTextSurface allocates a surface for a cols*rows grid.
func NewTextSurface(cols, rows int) *TextSurface {
	return &TextSurface{
		cols:   cols,
		rows:   rows,
		cells:  make([]color.RGBA, cols*rows),
		styles: map[[2]color.RGBA]lipgloss.Style{},
	}
}

// Clear sets every cell to bg.
func (t *TextSurface) Clear(bg color.RGBA) {
	for i := range t.cells {
		t.cells[i] = bg
	}
}

// FillCell sets (col, row) to c. Out-of-range cells are ignored.
func (t *TextSurface) FillCell(col, row int, c color.RGBA) {
	if col < 0 || col >= t.cols || row < 0 || row >= t.rows {
		return
	}
	t.cells[row*t.cols+col] = c
}

// At returns the color stored for (col, row).
func (t *TextSurface) At(col, row int) color.RGBA { return t.cells[row*t.cols+col] }

// String renders the surface, one line per pair of rows.
func (t *TextSurface) String() string {
	var sb strings.Builder
	for y := 0; y < t.rows; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < t.cols; x++ {
			top := t.cells[y*t.cols+x]
			bottom := top
			if y+1 < t.rows {
				bottom = t.cells[(y+1)*t.cols+x]
			}
			sb.WriteString(t.style(top, bottom).Render("▀"))
		}
	}
	return sb.String()
}

func (t *TextSurface) style(top, bottom color.RGBA) lipgloss.Style {
	key := [2]color.RGBA{top, bottom}
	if st, ok := t.styles[key]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor(top))).
		Background(lipgloss.Color(hexColor(bottom)))
	t.styles[key] = st
	return st
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
