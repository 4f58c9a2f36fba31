package selene

import (
	"math"

	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/draw"
	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/jitter"
	"github.com/san-kum/genart/internal/random"
	"github.com/san-kum/genart/internal/techniques"
)

// DrawStarBand shades the ring with a dotted gradient and scatters 20..49
// white stars along its middle.
func DrawStarBand(s draw.Surface, rng *random.Rand, c geom.Point, outer, inner float64) {
	mid := (outer + inner) / 2
	size := 0.2 * (outer - inner)
	n := rng.IntRange(20, 50)

	s.Save()
	defer s.Restore()

	s.SetFillRule(draw.FillEvenOdd)
	s.Arc(c.X, c.Y, outer, 0, 2*math.Pi)
	s.ClosePath()
	s.MoveTo(c.X+inner, c.Y)
	s.ArcNegative(c.X, c.Y, inner, 0, -2*math.Pi)
	s.ClosePath()
	s.StrokePreserve()
	s.ClipPreserve()

	ox := rng.Uniform(inner/3, inner)
	oy := rng.Uniform(inner/3, inner)
	grad := techniques.PointLinearGradient{
		Stops:   []color.Color{color.Black, color.RGBA(1, 1, 1, 0)},
		Pattern: techniques.PatternPacked,
	}
	grad.Fill(s, rng, c.X-ox, c.Y-oy, c.X+ox, c.Y+oy)

	for _, p := range jitter.Points(geom.PointsAlongArc(c.X, c.Y, mid, 0, 2*math.Pi, n), rng, size) {
		DrawStar(s, rng, p, size)
	}
}

// DrawStar draws a jittered star of 5..7 spikes, outlined in the current
// source and filled white.
func DrawStar(s draw.Surface, rng *random.Rand, pos geom.Point, size float64) {
	spikes := rng.IntRange(5, 8)
	outer := jitter.Points(geom.PointsAlongArc(pos.X, pos.Y, size, 0, 2*math.Pi, spikes), rng, 0.1*size)
	offset := math.Pi / float64(spikes)
	inner := jitter.Points(geom.PointsAlongArc(pos.X, pos.Y, size/2, offset, offset+2*math.Pi, spikes), rng, 0.1*size)

	last := inner[len(inner)-1]
	s.MoveTo(last.X, last.Y)
	for i := range outer {
		s.LineTo(outer[i].X, outer[i].Y)
		s.LineTo(inner[i].X, inner[i].Y)
	}
	s.StrokePreserve()
	draw.WithSource(s, color.White, s.Fill)
}
