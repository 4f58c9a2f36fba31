package jitter

import (
	"math"
	"testing"

	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/random"
)

func TestPointsStayWithinBounds(t *testing.T) {
	rng := random.New(1)
	points := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: -5}}

	for i := 0; i < 100; i++ {
		for j, p := range Points(points, rng, 0.5) {
			if math.Abs(p.X-points[j].X) > 0.5 || math.Abs(p.Y-points[j].Y) > 0.5 {
				t.Fatalf("point %v moved too far from %v", p, points[j])
			}
		}
	}
}

func TestDotsPartialSizes(t *testing.T) {
	rng := random.New(2)
	dots := []Dot{{X: 1, Y: 1, R: 3}}

	out := Dots(dots, rng, 0.1, 0.1)
	if out[0].R != 3 {
		t.Errorf("radius without jitter size should be unchanged, got %f", out[0].R)
	}
	if math.Abs(out[0].X-1) > 0.1 {
		t.Errorf("x jittered beyond 0.1: %f", out[0].X)
	}
}
