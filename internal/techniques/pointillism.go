// Package techniques holds reusable drawing techniques and the small sketches
// that show them off.
package techniques

import (
	"fmt"
	"math"

	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/draw"
	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/jitter"
	"github.com/san-kum/genart/internal/random"
)

// Pattern names a way of laying out dots.
type Pattern string

const (
	PatternOrtho        Pattern = "ortho"
	PatternOrthoJitter  Pattern = "ortho-jitter"
	PatternPacked       Pattern = "packed"
	PatternPackedJitter Pattern = "packed-jitter"
)

// Patterns lists every pattern in display order.
var Patterns = []Pattern{PatternOrtho, PatternOrthoJitter, PatternPacked, PatternPackedJitter}

func ParsePattern(s string) (Pattern, error) {
	for _, p := range Patterns {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown dot pattern %q", s)
}

// FillFunc lays out dots of radius r inside the box from start to end. The
// dot density is 1 at gradStart and falls to 0 at gradEnd.
type FillFunc func(rng *random.Rand, start, end, gradStart, gradEnd geom.Point, r float64) []jitter.Dot

func (p Pattern) Func() FillFunc {
	switch p {
	case PatternOrthoJitter:
		return FillOrthogonalJitter
	case PatternPacked:
		return FillPacked
	case PatternPackedJitter:
		return FillPackedJitter
	default:
		return FillOrthogonal
	}
}

// density is the share of dots kept at y on a gradient running along +Y.
func density(y float64, gradStart, gradEnd geom.Point) float64 {
	span := gradEnd.Y - gradStart.Y
	if span == 0 {
		return 1
	}
	t := (y - gradStart.Y) / span
	return 1 - math.Max(0, math.Min(1, t))
}

func FillOrthogonal(rng *random.Rand, start, end, gradStart, gradEnd geom.Point, r float64) []jitter.Dot {
	if r <= 0 {
		return nil
	}
	step := 2 * r
	rows := int((end.Y - start.Y) / step)
	cols := int((end.X - start.X) / step)

	var dots []jitter.Dot
	for row := 0; row <= rows; row++ {
		cy := start.Y + float64(row)*step
		d := density(cy, gradStart, gradEnd)

		for col := 0; col <= cols; col++ {
			if rng.Float64() > d {
				continue
			}
			dots = append(dots, jitter.Dot{X: start.X + float64(col)*step, Y: cy, R: r})
		}
	}
	return dots
}

func FillOrthogonalJitter(rng *random.Rand, start, end, gradStart, gradEnd geom.Point, r float64) []jitter.Dot {
	dots := FillOrthogonal(rng, start, end, gradStart, gradEnd, r)
	return jitter.Dots(dots, rng, r/3, r/3, r/5)
}

// FillPacked lays dots out on a hexagonal grid, every other row shifted by
// half a dot.
func FillPacked(rng *random.Rand, start, end, gradStart, gradEnd geom.Point, r float64) []jitter.Dot {
	if r <= 0 {
		return nil
	}
	side := 2 * r
	rowHeight := math.Sin(math.Pi/3) * side
	stagger := math.Cos(math.Pi/3) * side
	rows := int((end.Y - start.Y) / rowHeight)
	cols := int((end.X - start.X) / side)

	var dots []jitter.Dot
	for row := 0; row <= rows; row++ {
		cy := start.Y + float64(row)*rowHeight
		d := density(cy, gradStart, gradEnd)
		shift := 0.0
		if row%2 == 1 {
			shift = stagger
		}

		for col := 0; col <= cols; col++ {
			if rng.Float64() > d {
				continue
			}
			dots = append(dots, jitter.Dot{X: start.X + float64(col)*side + shift, Y: cy, R: r})
		}
	}
	return dots
}

func FillPackedJitter(rng *random.Rand, start, end, gradStart, gradEnd geom.Point, r float64) []jitter.Dot {
	dots := FillPacked(rng, start, end, gradStart, gradEnd, r)
	return jitter.Dots(dots, rng, r/4, r/4, r/5)
}

const DefaultDotRadius = 3.0

// PointLinearGradient fades between two colours with dots instead of a
// smooth blend: the last stop is the ground, the first stop the dots.
type PointLinearGradient struct {
	Stops     []color.Color
	Pattern   Pattern
	DotRadius float64
}

// Fill paints the current path with the gradient running from (x1, y1) to
// (x2, y2) and returns the number of dots stamped. The path is consumed.
func (g PointLinearGradient) Fill(s draw.Surface, rng *random.Rand, x1, y1, x2, y2 float64) int {
	if len(g.Stops) == 0 {
		s.NewPath()
		return 0
	}
	r := g.DotRadius
	if r <= 0 {
		r = DefaultDotRadius
	}

	s.Save()
	s.SetSource(g.Stops[len(g.Stops)-1])
	s.FillPreserve()
	s.Restore()

	from, to := geom.Pt(x1, y1), geom.Pt(x2, y2)
	gradLen := geom.Distance(from, to)

	var n int
	// The user space is turned so that the gradient runs from the origin
	// straight along +Y.
	draw.WithSource(s, g.Stops[0], func() {
		draw.WithTranslation(s, x1, y1, func() {
			draw.WithRotation(s, geom.Angle(from, to)-math.Pi/2, func() {
				bx1, by1, bx2, by2 := s.FillExtents()
				if bx2 <= bx1 || by2 <= by1 {
					return
				}
				dots := g.Pattern.Func()(rng, geom.Pt(bx1, by1), geom.Pt(bx2, by2),
					geom.Pt(0, 0), geom.Pt(0, gradLen), r)

				s.NewPath()
				for _, d := range dots {
					s.MoveTo(d.X+d.R, d.Y)
					s.Arc(d.X, d.Y, d.R, 0, 2*math.Pi)
					s.ClosePath()
				}
				if len(dots) > 0 {
					s.Fill()
				}
				n = len(dots)
			})
		})
	})
	s.NewPath()
	return n
}
