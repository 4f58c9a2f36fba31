package jitter

import (
	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/random"
)

// Dot is a circle on the canvas: position and radius, jittered as a unit.
type Dot struct {
	X, Y, R float64
}

// Points moves every point by up to size in each direction.
func Points(points []geom.Point, rng *random.Rand, size float64) []geom.Point {
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[i] = geom.Point{
			X: rng.Uniform(p.X-size, p.X+size),
			Y: rng.Uniform(p.Y-size, p.Y+size),
		}
	}
	return out
}

// Dots jitters x, y and r by their own amounts. Missing entries in sizes
// leave the coordinate untouched.
func Dots(dots []Dot, rng *random.Rand, sizes ...float64) []Dot {
	jit := func(i int, v float64) float64 {
		if i >= len(sizes) {
			return rng.Uniform(v, v)
		}
		return rng.Uniform(v-sizes[i], v+sizes[i])
	}

	out := make([]Dot, len(dots))
	for i, d := range dots {
		out[i] = Dot{X: jit(0, d.X), Y: jit(1, d.Y), R: jit(2, d.R)}
	}
	return out
}
