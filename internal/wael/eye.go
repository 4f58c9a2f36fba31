// Package wael fills the canvas with eyes: "He Who Sees and Is Not Seen".
//
// Every eye is drawn around its own centre, so the parts of an [Eye] hold
// offsets relative to [Eye.Pos] and are rotated together with the eye.
package wael

import (
	"math"

	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/draw"
	"github.com/san-kum/genart/internal/geom"
)

// Flesh paints the whole canvas in one colour.
type Flesh struct {
	Color color.Color
}

func (f Flesh) Draw(s draw.Surface) {
	draw.WithSource(s, f.Color, s.Paint)
}

// Pupil is drawn in the current source at the centre of the eye.
type Pupil interface {
	Draw(s draw.Surface)
}

type RoundPupil struct {
	Offset geom.Point
	Size   float64
}

func (p RoundPupil) Draw(s draw.Surface) {
	s.Arc(p.Offset.X, p.Offset.Y, p.Size, 0, 2*math.Pi)
	s.Fill()
}

// SlitPupil is the lens between the two circles through its top and bottom
// tips and one of its sides each.
type SlitPupil struct {
	Offset geom.Point
	Size   float64
	Width  float64
}

func (p SlitPupil) Draw(s draw.Surface) {
	top := p.Offset.Add(geom.Pt(0, p.Size))
	bottom := p.Offset.Sub(geom.Pt(0, p.Size))
	right := p.Offset.Add(geom.Pt(p.Width/2, 0))
	left := p.Offset.Sub(geom.Pt(p.Width/2, 0))

	c1, r1, ok1 := geom.CircleFrom3Points(top, right, bottom)
	c2, r2, ok2 := geom.CircleFrom3Points(top, left, bottom)
	if !ok1 || !ok2 {
		return
	}

	s.Save()
	defer s.Restore()

	s.Arc(c1.X, c1.Y, r1, 0, 2*math.Pi)
	s.Clip()
	s.Arc(c2.X, c2.Y, r2, 0, 2*math.Pi)
	s.Clip()
	s.Paint()
}

type Iris struct {
	Offset   geom.Point
	Size     float64
	Gradient color.RadialGradient
}

func (i Iris) Draw(s draw.Surface) {
	pat := i.Gradient.Pattern(i.Offset.X, i.Offset.Y, i.Size)
	draw.WithSource(s, pat, func() {
		s.Arc(i.Offset.X, i.Offset.Y, i.Size, 0, 2*math.Pi)
		s.Fill()
	})
}

// Eyelids cover the eyeball except for a lens-shaped opening between two
// arcs through the lid corners at ±Size.
type Eyelids struct {
	Offset  geom.Point
	Size    float64
	Opening float64
	Color   color.Color
}

func (e Eyelids) Draw(s draw.Surface, eyeRadius float64) {
	left := e.Offset.Sub(geom.Pt(e.Size, 0))
	right := e.Offset.Add(geom.Pt(e.Size, 0))
	top := e.Offset.Add(geom.Pt(0, e.Opening/2))
	bottom := e.Offset.Sub(geom.Pt(0, e.Opening/2))

	for _, mid := range []geom.Point{top, bottom} {
		c, r, ok := geom.CircleFrom3Points(left, mid, right)
		if !ok {
			continue
		}
		e.drawLid(s, eyeRadius, c, r)
	}
}

// drawLid paints the eyeball minus one circle.
func (e Eyelids) drawLid(s draw.Surface, eyeRadius float64, c geom.Point, r float64) {
	s.Save()
	defer s.Restore()

	s.Arc(e.Offset.X, e.Offset.Y, eyeRadius+1, 0, 2*math.Pi)
	s.Clip()

	s.SetSource(e.Color)
	s.SetFillRule(draw.FillEvenOdd)
	s.Arc(e.Offset.X, e.Offset.Y, eyeRadius+1, 0, 2*math.Pi)
	s.ClosePath()
	s.MoveTo(c.X+r, c.Y)
	s.Arc(c.X, c.Y, r, 0, 2*math.Pi)
	s.ClosePath()
	s.Fill()
}

type Eye struct {
	Pos      geom.Point
	Size     float64
	Color    color.Color
	Pupil    Pupil
	Iris     *Iris
	Eyelids  *Eyelids
	Rotation float64
}

func (e *Eye) Draw(s draw.Surface) {
	draw.WithTranslation(s, e.Pos.X, e.Pos.Y, func() {
		draw.WithRotation(s, e.Rotation, func() {
			draw.WithSource(s, e.Color, func() {
				s.Arc(0, 0, e.Size, 0, 2*math.Pi)
				s.Fill()
			})

			if e.Iris != nil {
				e.Iris.Draw(s)
			}

			draw.WithSource(s, color.Black, func() {
				e.Pupil.Draw(s)
			})

			if e.Eyelids != nil {
				e.Eyelids.Draw(s, e.Size)
			}
		})
	})
}
