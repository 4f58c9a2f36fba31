// Package packing fills a canvas with non-overlapping circles that grow
// until they touch each other or the canvas edge.
package packing

import (
	"errors"
	"fmt"

	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/random"
)

const (
	DefaultMaxAttempts   = 2001
	DefaultMaxIterations = 100_000
)

// ErrIterationLimit is returned with the circles packed so far when growth
// did not settle in time.
var ErrIterationLimit = errors.New("packing: iteration limit reached")

type Circle struct {
	Pos     geom.Point
	R       float64
	Growing bool
}

type Options struct {
	// GrowRate is both the starting radius and the growth per iteration.
	GrowRate   float64
	MaxCircles int
	// Unbounded lets circles grow past the canvas edge.
	Unbounded bool

	MaxAttempts   int
	MaxIterations int
}

func (o Options) withDefaults() Options {
	if o.GrowRate <= 0 {
		o.GrowRate = 1
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// NewCircle tries to place a circle of the given radius somewhere inside the
// canvas without overlapping any existing circle. It gives up after
// attempts tries and returns nil.
func NewCircle(rng *random.Rand, radius, width, height float64, existing []*Circle, attempts int) *Circle {
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	for range attempts {
		pos := geom.Pt(
			rng.Uniform(radius, width-radius),
			rng.Uniform(radius, height-radius),
		)
		if fits(pos, radius, existing) {
			return &Circle{Pos: pos, R: radius, Growing: true}
		}
	}
	return nil
}

func fits(pos geom.Point, r float64, circles []*Circle) bool {
	for _, c := range circles {
		if geom.Distance(pos, c.Pos) < c.R+r {
			return false
		}
	}
	return true
}

// Grow enlarges c by rate unless that would make it touch the canvas edge
// (when bounded) or another circle, in which case it stops growing for good.
func Grow(c *Circle, rate, width, height float64, circles []*Circle, unbounded bool) {
	r := c.R + rate

	if !unbounded && (c.Pos.X+r >= width || c.Pos.X-r <= 0 || c.Pos.Y+r >= height || c.Pos.Y-r <= 0) {
		c.Growing = false
		return
	}

	for _, o := range circles {
		if o == c {
			continue
		}
		if geom.Distance(c.Pos, o.Pos) <= r+o.R {
			c.Growing = false
			return
		}
	}

	c.R = r
}

// Pack adds one circle per iteration until MaxCircles is reached and grows
// all circles that are still growing. It stops when nothing grows any more,
// or as soon as a new circle cannot be placed.
func Pack(rng *random.Rand, width, height float64, opts Options) ([]*Circle, error) {
	opts = opts.withDefaults()

	var circles []*Circle
	for i := 0; len(circles) < opts.MaxCircles || anyGrowing(circles); i++ {
		if i >= opts.MaxIterations {
			return circles, fmt.Errorf("%w: %d iterations, %d circles", ErrIterationLimit, i, len(circles))
		}

		if len(circles) < opts.MaxCircles {
			c := NewCircle(rng, opts.GrowRate, width, height, circles, opts.MaxAttempts)
			if c == nil {
				return circles, nil
			}
			circles = append(circles, c)
		}

		for _, c := range circles {
			if c.Growing {
				Grow(c, opts.GrowRate, width, height, circles, opts.Unbounded)
			}
		}
	}
	return circles, nil
}

func anyGrowing(circles []*Circle) bool {
	for _, c := range circles {
		if c.Growing {
			return true
		}
	}
	return false
}

// Radii lists the circle radii in packing order.
func Radii(circles []*Circle) []float64 {
	rs := make([]float64, len(circles))
	for i, c := range circles {
		rs[i] = c.R
	}
	return rs
}
