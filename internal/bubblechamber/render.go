package bubblechamber

import (
	"fmt"
	"math"

	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/draw"
)

type ColorScheme string

const (
	SchemeBW    ColorScheme = "bw"
	SchemeComic ColorScheme = "comic"
)

type LineWidth string

const (
	WidthConstant LineWidth = "constant"
	WidthMass     LineWidth = "mass"
	WidthCharge   LineWidth = "charge"
)

const (
	constantWidth = 2.0
	minWidth      = 0.1
)

func ParseColorScheme(s string) (ColorScheme, error) {
	switch ColorScheme(s) {
	case SchemeBW, SchemeComic:
		return ColorScheme(s), nil
	case "":
		return SchemeBW, nil
	}
	return "", fmt.Errorf("unknown color scheme %q (want bw or comic)", s)
}

func ParseLineWidth(s string) (LineWidth, error) {
	switch LineWidth(s) {
	case WidthConstant, WidthMass, WidthCharge:
		return LineWidth(s), nil
	case "":
		return WidthConstant, nil
	}
	return "", fmt.Errorf("unknown line width %q (want constant, mass or charge)", s)
}

type Renderer struct {
	Scheme ColorScheme
	Width  LineWidth
}

// width returns the stroke width for a trail.
func (r Renderer) width(t *Trail) float64 {
	switch r.Width {
	case WidthMass:
		return math.Log(float64(t.Mass)) + 0.1
	case WidthCharge:
		return math.Max(minWidth, math.Log(math.Abs(float64(t.Charge))))
	}
	return constantWidth
}

func (r Renderer) color(t *Trail) color.Color {
	if r.Scheme == SchemeComic {
		return ChargeHue(t.Charge)
	}
	return color.Black
}

// ChargeHue maps a charge onto the colour wheel, neutral at cyan.
func ChargeHue(charge int) color.Color {
	h := math.Mod(float64(charge)/20+0.5, 1)
	if h < 0 {
		h++
	}
	return color.HSV(h, 0.66, 0.9)
}

// Draw strokes every trail as a chain of curves through its points. Each
// odd point is the control point of the curve ending on the next one.
func (r Renderer) Draw(s draw.Surface, trails []*Trail) {
	s.Save()
	defer s.Restore()

	s.SetLineJoin(draw.JoinRound)
	s.SetLineCap(draw.CapRound)

	for _, t := range trails {
		if len(t.Points) == 0 {
			continue
		}
		s.SetSource(r.color(t))
		s.SetLineWidth(r.width(t))
		StrokeCurves(s, t, nil)
	}
}

// StrokeCurves strokes the curve chain of t one segment at a time. If
// width is set it is called with the segment index before each stroke.
func StrokeCurves(s draw.Surface, t *Trail, width func(i int)) {
	pts := t.Points
	s.MoveTo(pts[0].X, pts[0].Y)
	for i := 0; 2*i+2 < len(pts); i++ {
		cp, dest := pts[2*i+1], pts[2*i+2]
		if width != nil {
			width(i)
		}
		s.CurveTo(cp.X, cp.Y, cp.X, cp.Y, dest.X, dest.Y)
		s.Stroke()
		s.MoveTo(dest.X, dest.Y)
	}
	s.NewPath()
}
