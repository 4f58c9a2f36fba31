// Package draw defines the drawing surface the sketches paint on and an SVG
// implementation of it.
//
// [Surface] is an immediate-mode, path based API: build a path with MoveTo,
// LineTo, CurveTo and Arc, then Stroke, Fill or Clip it. Transforms and the
// source pattern are part of the surface state and can be saved and restored.
//
//	s := draw.NewSVG(f, 500, 500)
//	s.Arc(250, 250, 100, 0, 2*math.Pi)
//	s.Stroke()
//	err := s.Finish()
//
// [WithTranslation], [WithRotation] and [WithSource] apply a temporary state
// change around a function.
package draw

import "github.com/san-kum/genart/internal/color"

type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

type FillRule int

const (
	FillWinding FillRule = iota
	FillEvenOdd
)

type Surface interface {
	Width() float64
	Height() float64

	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(angle float64)

	SetSource(p color.Pattern)
	Source() color.Pattern
	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	SetLineJoin(j LineJoin)
	SetFillRule(r FillRule)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	RelLineTo(dx, dy float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	Arc(xc, yc, radius, angle1, angle2 float64)
	ArcNegative(xc, yc, radius, angle1, angle2 float64)
	ClosePath()
	NewPath()
	FillExtents() (x1, y1, x2, y2 float64)

	Stroke()
	StrokePreserve()
	Fill()
	FillPreserve()
	Paint()
	Clip()
	ClipPreserve()
	ResetClip()

	SelectFont(family string)
	SetFontSize(size float64)
	ShowText(text string)
	TextExtents(text string) (width, height float64)
}

// WithTranslation shifts the origin by (x, y) while fn runs.
func WithTranslation(s Surface, x, y float64, fn func()) {
	s.Translate(x, y)
	defer s.Translate(-x, -y)
	fn()
}

// WithRotation rotates the user space by angle while fn runs.
func WithRotation(s Surface, angle float64, fn func()) {
	s.Rotate(angle)
	defer s.Rotate(-angle)
	fn()
}

// WithSource paints with p while fn runs. The whole surface state is
// restored afterwards, so state changes made by fn do not leak out.
func WithSource(s Surface, p color.Pattern, fn func()) {
	s.Save()
	defer s.Restore()
	s.SetSource(p)
	fn()
}
