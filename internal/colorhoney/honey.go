package colorhoney

import (
	"math"
	"strings"

	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/draw"
)

const DefaultScale = 10.0

// Writer lays text out on a surface and reports how many letters it drew.
type Writer interface {
	Write(s draw.Surface, text string) int
}

// Honey writes every letter as a point-down triangle under a point-up one,
// meeting at their bases.
type Honey struct {
	Scale float64
}

func (h Honey) scale() float64 {
	if h.Scale <= 0 {
		return DefaultScale
	}
	return h.Scale
}

// height of one triangle
func (h Honey) diag() float64 {
	return math.Sin(math.Pi/3) * h.scale()
}

func (h Honey) Write(s draw.Surface, text string) int {
	scale := h.scale()
	lineHeight := 2*h.diag() + scale

	var n int
	for row, line := range strings.Split(text, "\n") {
		y := 2*scale + float64(row)*lineHeight
		for i, r := range []rune(line) {
			g, ok := Lookup(r)
			if !ok {
				continue
			}
			draw.WithTranslation(s, float64(i+1)*scale, y, func() {
				h.letter(s, g)
			})
			n++
		}
	}
	return n
}

func (h Honey) letter(s draw.Surface, g Glyph) {
	s.MoveTo(0, 0)
	h.triangle(s, g.Bottom)

	// the top half is the same triangle turned upside down
	draw.WithTranslation(s, 0, -2*h.diag(), func() {
		draw.WithRotation(s, math.Pi, func() {
			s.MoveTo(0, 0)
			h.triangle(s, g.Top)
		})
	})
}

// triangle fills a triangle pointing down at the current point.
func (h Honey) triangle(s draw.Surface, c color.Color) {
	scale, diag := h.scale(), h.diag()
	draw.WithSource(s, c, func() {
		s.RelLineTo(-scale/2, -diag)
		s.RelLineTo(scale, 0)
		s.RelLineTo(-scale/2, diag)
		s.Fill()
	})
}
