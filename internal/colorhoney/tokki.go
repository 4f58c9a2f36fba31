package colorhoney

import (
	"math"
	"strings"

	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/draw"
)

const DefaultMargin = 1.0

// Tokki writes every letter as two stacked bars. Letters are grouped into
// square blocks of four, each letter of a block turned to its own side, and
// every line of text is one row of blocks.
type Tokki struct {
	Scale  float64
	Margin float64
}

type orientation struct {
	dx, dy float64
	angle  float64
}

func (t Tokki) scale() float64 {
	if t.Scale <= 0 {
		return DefaultScale
	}
	return t.Scale
}

func (t Tokki) margin() float64 {
	if t.Margin < 0 {
		return DefaultMargin
	}
	return t.Margin
}

func (t Tokki) barHeight() float64 { return t.scale() / 4 }

// orientations moves the baseline of each letter in a block to the block
// edge it sits on.
func (t Tokki) orientations() [4]orientation {
	s := t.scale()
	return [4]orientation{
		{0, 0, 0},
		{s, s, -math.Pi / 2},
		{2 * s, 0, -math.Pi / 2},
		{s, s, 0},
	}
}

func (t Tokki) Write(s draw.Surface, text string) int {
	scale := t.scale()
	block := 2 * scale
	orients := t.orientations()

	var n int
	for row, line := range strings.Split(text, "\n") {
		draw.WithTranslation(s, 3*scale, 3*scale+float64(row)*block, func() {
			for i, r := range []rune(line) {
				g, ok := Lookup(r)
				if !ok {
					continue
				}
				o := orients[i%4]
				x := float64(i/4)*block + o.dx
				draw.WithTranslation(s, x, o.dy, func() {
					draw.WithRotation(s, o.angle, func() {
						t.letter(s, g)
					})
				})
				n++
			}
		})
	}
	return n
}

func (t Tokki) letter(s draw.Surface, g Glyph) {
	s.MoveTo(0, 0)
	t.bar(s, g.Bottom)

	draw.WithTranslation(s, 0, -(t.barHeight() + t.margin()), func() {
		s.MoveTo(0, 0)
		t.bar(s, g.Top)
	})
}

// bar fills a bar standing on the current point and extending to the right.
func (t Tokki) bar(s draw.Surface, c color.Color) {
	scale, h := t.scale(), t.barHeight()
	draw.WithSource(s, c, func() {
		s.RelLineTo(0, -h)
		s.RelLineTo(scale, 0)
		s.RelLineTo(0, h)
		s.ClosePath()
		s.Fill()
	})
}
