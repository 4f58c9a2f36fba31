package asparagus

import (
	"bytes"
	"context"
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/sketch"
)

func near(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestWalkAlong(t *testing.T) {
	b := NewBranch(geom.Pt(0, 0), geom.Pt(10, 0))

	pts := b.WalkAlong(1)
	if len(pts) != 11 {
		t.Fatalf("expected 11 points, got %d", len(pts))
	}
	for i, p := range pts {
		if !near(p, geom.Pt(float64(i), 0)) {
			t.Errorf("point %d: expected (%d, 0), got %v", i, i, p)
		}
	}
}

func TestWalkAlongDegenerate(t *testing.T) {
	b := NewBranch(geom.Pt(3, 3), geom.Pt(3, 3))
	if pts := b.WalkAlong(1); len(pts) != 1 {
		t.Errorf("expected only the start point, got %v", pts)
	}
}

func TestBranchAt(t *testing.T) {
	root := NewBranch(geom.Pt(0, 0), geom.Pt(0, 10))

	tests := []struct {
		name  string
		angle float64
		want  geom.Point
	}{
		{"left", math.Pi / 2, geom.Pt(-5, 0)},
		{"right", -math.Pi / 2, geom.Pt(5, 0)},
		{"straight", 0, geom.Pt(0, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := root.BranchAt(geom.Pt(0, 0), 5, tt.angle)
			if child.Start != geom.Pt(0, 0) {
				t.Errorf("expected child to start at origin, got %v", child.Start)
			}
			if !near(child.End, tt.want) {
				t.Errorf("expected end %v, got %v", tt.want, child.End)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = 1
	plant := Generate(geom.Pt(0, 0), geom.Pt(0, 150), cfg)

	// 16 buds, the first two skipped
	if len(plant.Children) != 14 {
		t.Fatalf("expected 14 children, got %d", len(plant.Children))
	}

	first, second := plant.Children[0], plant.Children[1]
	if first.Length() < second.Length() {
		t.Errorf("expected children to get shorter, got %v then %v", first.Length(), second.Length())
	}
	if math.Abs(first.Length()-cfg.MaxLength) > 1e-9 {
		t.Errorf("expected first child of full length, got %v", first.Length())
	}
	if (first.End.X < 0) == (second.End.X < 0) {
		t.Errorf("expected children on alternating sides, got %v and %v", first.End, second.End)
	}
	for _, c := range plant.Children {
		if len(c.Children) < 13 {
			t.Errorf("expected children to branch once more, got %d", len(c.Children))
		}
		if len(c.Children) > 0 && len(c.Children[0].Children) != 0 {
			t.Error("expected growth to stop below max depth")
		}
	}
}

func TestGenerateMinSize(t *testing.T) {
	cfg := Config{MaxLength: 0.01, MaxDepth: 0, Buds: 15}
	plant := Generate(geom.Pt(0, 0), geom.Pt(100, 0), cfg)
	for _, c := range plant.Children {
		if c.Length() < MinSize-1e-9 {
			t.Errorf("expected children of at least %v, got %v", MinSize, c.Length())
		}
	}
}

func TestSketch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = 1
	var buf bytes.Buffer
	stats, err := sketch.Render(context.Background(), New(cfg, zap.NewNop()), &buf, 100, 100, 1)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if stats.Values["branches"] < 15 {
		t.Errorf("expected a branching plant, got %v branches", stats.Values["branches"])
	}
}
