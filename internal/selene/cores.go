package selene

import (
	"math"

	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/draw"
	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/random"
)

// CoreFunc fills the disc of the given radius left inside the bands.
type CoreFunc func(s draw.Surface, rng *random.Rand, c geom.Point, radius float64)

type Core struct {
	Name string
	Draw CoreFunc
}

var Cores = []Core{
	{"none", NoCore},
	{"dodecahedron", DrawDodecahedron},
	{"crown", DrawCrown},
}

func NoCore(draw.Surface, *random.Rand, geom.Point, float64) {}

var (
	frontside = color.RadialGradient{Stops: []color.Color{color.RGB(0.7, 0.7, 0.7), color.RGB(0.5, 0.5, 0.5)}}
	backside  = color.RadialGradient{Stops: []color.Color{color.RGB(0.5, 0.5, 0.5), color.RGB(0.3, 0.3, 0.3)}}
)

// DrawCrown outlines the core and fills it with a disc shifted up, leaving
// a crescent at the bottom.
func DrawCrown(s draw.Surface, _ *random.Rand, c geom.Point, radius float64) {
	const eclipse = -0.2

	s.Save()
	defer s.Restore()

	s.Arc(c.X, c.Y, radius, 0, 2*math.Pi)
	s.StrokePreserve()
	s.Clip()

	s.Arc(c.X, c.Y+eclipse*2*radius, radius, 0, 2*math.Pi)
	s.Fill()
}

// DrawDodecahedron draws the wireframe of a dodecahedron seen along one of
// its axes: a decagon outline, the front pentagon and the back pentagon
// turned by a tenth of a turn, each joined to every other outline corner.
func DrawDodecahedron(s draw.Surface, _ *random.Rand, c geom.Point, radius float64) {
	const rotation = 0.0

	outline := geom.PointsAlongArc(c.X, c.Y, radius, rotation, rotation+2*math.Pi, 10)
	front := geom.PointsAlongArc(c.X, c.Y, 0.6*radius, rotation, rotation+2*math.Pi, 5)
	offset := math.Pi / 5
	back := geom.PointsAlongArc(c.X, c.Y, 0.6*radius, rotation+offset, rotation+offset+2*math.Pi, 5)

	draw.WithSource(s, frontside.Pattern(c.X, c.Y, radius), func() {
		strokePolygon(s, outline)
		strokePolygon(s, front)
		for i, p := range front {
			strokeLine(s, p, outline[2*i])
		}
	})

	draw.WithSource(s, backside.Pattern(c.X, c.Y, radius), func() {
		strokePolygon(s, back)
		for i, p := range back {
			strokeLine(s, p, outline[2*i+1])
		}
	})
}

func strokePolygon(s draw.Surface, pts []geom.Point) {
	for i, p := range pts {
		prev := pts[(i+len(pts)-1)%len(pts)]
		strokeLine(s, prev, p)
	}
}

func strokeLine(s draw.Surface, a, b geom.Point) {
	s.MoveTo(a.X, a.Y)
	s.LineTo(b.X, b.Y)
	s.Stroke()
}
