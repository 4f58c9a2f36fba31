package techniques

import (
	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/draw"
)

// DrawGrid splits the canvas into rows x cols cells of whole-pixel size and
// strokes the right and bottom edge of every cell in grey.
func DrawGrid(s draw.Surface, width, height float64, rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}
	rowHeight := float64(int(height) / rows)
	colWidth := float64(int(width) / cols)

	draw.WithSource(s, color.Grey, func() {
		for col := 1; col <= cols; col++ {
			x := float64(col) * colWidth
			s.MoveTo(x, 0)
			s.LineTo(x, height)
			s.Stroke()
		}
		for row := 1; row <= rows; row++ {
			y := float64(row) * rowHeight
			s.MoveTo(0, y)
			s.LineTo(width, y)
			s.Stroke()
		}
	})
}
