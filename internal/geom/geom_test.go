package geom

import (
	"math"
	"testing"
)

func TestSlope(t *testing.T) {
	tests := []struct {
		p1, p2 Point
		want   float64
	}{
		{Pt(0, 0), Pt(1, 1), 1},
		{Pt(0, 1), Pt(1, 0), -1},
		{Pt(0, 0), Pt(1, 100), 100},
	}

	for _, tt := range tests {
		if got := Slope(tt.p1, tt.p2); got != tt.want {
			t.Errorf("Slope(%v, %v) = %f, want %f", tt.p1, tt.p2, got, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Pt(0, 0), Pt(3, 4)); d != 5 {
		t.Errorf("expected 5, got %f", d)
	}
}

func TestCircleFrom3Points(t *testing.T) {
	center, radius, ok := CircleFrom3Points(Pt(0, 1), Pt(1, 0), Pt(0, -1))
	if !ok {
		t.Fatal("expected a circle")
	}
	if math.Abs(center.X) > 1e-12 || math.Abs(center.Y) > 1e-12 {
		t.Errorf("expected center at origin, got %v", center)
	}
	if math.Abs(radius-1) > 1e-12 {
		t.Errorf("expected radius 1, got %f", radius)
	}
}

func TestCircleFrom3PointsCollinear(t *testing.T) {
	if _, _, ok := CircleFrom3Points(Pt(0, 0), Pt(1, 1), Pt(2, 2)); ok {
		t.Error("collinear points should not form a circle")
	}
}

func TestPointsAlongArc(t *testing.T) {
	points := PointsAlongArc(0, 0, 2, 0, 2*math.Pi, 4)
	want := []Point{Pt(2, 0), Pt(0, 2), Pt(-2, 0), Pt(0, -2)}

	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(points))
	}
	for i := range want {
		if Distance(points[i], want[i]) > 1e-9 {
			t.Errorf("point %d: expected %v, got %v", i, want[i], points[i])
		}
	}

	if PointsAlongArc(0, 0, 1, 0, 1, 0) != nil {
		t.Error("zero steps should yield no points")
	}
}

func TestRotate(t *testing.T) {
	p := Pt(0, 1).Rotate(math.Pi / 2)
	if Distance(p, Pt(-1, 0)) > 1e-12 {
		t.Errorf("expected (-1, 0), got %v", p)
	}
}

func TestProjectedPointOnLine(t *testing.T) {
	p := ProjectedPointOnLine(Pt(0, 0), Pt(10, 0), Pt(3, 5))
	if Distance(p, Pt(3, 0)) > 1e-12 {
		t.Errorf("expected (3, 0), got %v", p)
	}
}

func TestCross(t *testing.T) {
	got := V3(1, 0, 0).Cross(V3(0, 0, 2))
	want := V3(0, -2, 0)
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}
