// Package color holds the colour and gradient values sketches paint with.
// Colours are kept as 0..1 RGBA floats; conversion and HSV construction go
// through go-colorful.
package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

type Color struct {
	R, G, B, A float64
}

var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
	Grey  = RGB(0.5, 0.5, 0.5)
)

func RGB(r, g, b float64) Color     { return Color{R: r, G: g, B: b, A: 1} }
func RGBA(r, g, b, a float64) Color { return Color{R: r, G: g, B: b, A: a} }

// HSV builds an opaque colour from hue in [0, 1) and saturation/value in [0, 1].
func HSV(h, s, v float64) Color {
	c := colorful.Hsv(h*360, s, v)
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// Hex parses "#rrggbb".
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("color: %w", err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
}

// Hex renders the RGB part as "#rrggbb"; alpha is reported by Opacity.
func (c Color) Hex() string { return c.colorful().Hex() }

func (c Color) Opacity() float64 {
	switch {
	case c.A < 0:
		return 0
	case c.A > 1:
		return 1
	}
	return c.A
}

func (Color) isPattern() {}
