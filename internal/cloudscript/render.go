package cloudscript

import (
	"math"

	"github.com/san-kum/genart/internal/bubblechamber"
	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/draw"
)

const DefaultMaxLineWidth = 2.5

// HalfSine is the line width of segment i of a trail with n points: zero at
// both ends and max in the middle.
func HalfSine(i, n int, maxWidth float64) float64 {
	if n == 0 {
		return 0
	}
	progress := float64(i) / (float64(n) / 2)
	return math.Sin(progress*math.Pi) * maxWidth
}

// DrawTrails strokes every trail in black with a half-sine width profile.
func DrawTrails(s draw.Surface, trails []*bubblechamber.Trail, maxWidth float64) {
	s.Save()
	defer s.Restore()

	s.SetSource(color.Black)
	s.SetLineJoin(draw.JoinRound)

	for _, t := range trails {
		if len(t.Points) == 0 {
			continue
		}
		n := len(t.Points)
		bubblechamber.StrokeCurves(s, t, func(i int) {
			s.SetLineWidth(HalfSine(i, n, maxWidth))
		})
	}
}

// DrawGrid outlines the chamber cells in grey.
func DrawGrid(s draw.Surface, sc *SuperChamber) {
	w, h := s.Width(), s.Height()
	cw, rh := float64(sc.ColWidth()), float64(sc.RowHeight())

	draw.WithSource(s, color.Grey, func() {
		for col := range sc.Columns() {
			x := float64(col) * cw
			s.MoveTo(x, 0)
			s.LineTo(x, h)
			s.Stroke()
		}
		for row := range sc.Rows() {
			y := float64(row) * rh
			s.MoveTo(0, y)
			s.LineTo(w, y)
			s.Stroke()
		}
	})
}
