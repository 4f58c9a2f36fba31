package techniques

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/draw"
	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/random"
	"github.com/san-kum/genart/internal/sketch"
)

func TestParsePattern(t *testing.T) {
	for _, p := range Patterns {
		got, err := ParsePattern(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePattern(%q): expected %q, got %q (%v)", p, p, got, err)
		}
	}
	if _, err := ParsePattern("spiral"); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestFillOrthogonalDensity(t *testing.T) {
	dots := FillOrthogonal(random.New(1), geom.Pt(0, 0), geom.Pt(20, 20), geom.Pt(0, 0), geom.Pt(0, 20), 1)

	var first, last int
	for _, d := range dots {
		switch d.Y {
		case 0:
			first++
		case 20:
			last++
		}
		if d.R != 1 {
			t.Errorf("expected radius 1, got %v", d.R)
		}
	}
	if first != 11 {
		t.Errorf("expected a full first row of 11 dots, got %d", first)
	}
	if last != 0 {
		t.Errorf("expected an empty last row, got %d dots", last)
	}
}

func TestFillPackedStagger(t *testing.T) {
	// no gradient, every dot is kept
	dots := FillPacked(random.New(1), geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(0, 0), geom.Pt(0, 0), 1)

	rowHeight := math.Sin(math.Pi / 3) * 2
	for _, d := range dots {
		row := int(math.Round(d.Y / rowHeight))
		x := d.X
		if row%2 == 1 {
			x -= 1
		}
		if math.Abs(math.Mod(x, 2)) > 1e-9 {
			t.Errorf("dot %v is off the hexagonal grid", d)
		}
	}
	if len(dots) != 6*6 {
		t.Errorf("expected 36 dots, got %d", len(dots))
	}
}

func TestJitterPatternsStayClose(t *testing.T) {
	tests := []struct {
		pat  Pattern
		base Pattern
		xy   float64
	}{
		{PatternOrthoJitter, PatternOrtho, 1.0 / 3},
		{PatternPackedJitter, PatternPacked, 1.0 / 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.pat), func(t *testing.T) {
			start, end := geom.Pt(0, 0), geom.Pt(30, 30)
			dots := tt.pat.Func()(random.New(4), start, end, start, start, 1)
			if len(dots) == 0 {
				t.Fatal("expected dots")
			}
			for _, d := range dots {
				if d.R < 0.8-1e-9 || d.R > 1.2+1e-9 {
					t.Errorf("expected radius within 1±0.2, got %v", d.R)
				}
				if d.X < start.X-tt.xy || d.Y < start.Y-tt.xy {
					t.Errorf("dot %v jittered too far", d)
				}
			}
		})
	}
}

func TestPointLinearGradientFill(t *testing.T) {
	var buf bytes.Buffer
	s := draw.NewSVG(&buf, 100, 100)

	s.Arc(50, 50, 20, 0, 2*math.Pi)
	g := PointLinearGradient{Stops: []color.Color{color.Black, color.White}, Pattern: PatternOrtho}
	n := g.Fill(s, random.New(2), 30, 50, 70, 50)
	if err := s.Finish(); err != nil {
		t.Fatal(err)
	}

	if n == 0 {
		t.Fatal("expected dots to be stamped")
	}
	out := buf.String()
	ground := strings.Index(out, "fill:#ffffff")
	dots := strings.Index(out, "fill:#000000")
	if ground < 0 || dots < 0 || ground > dots {
		t.Errorf("expected ground in the last stop before dots in the first, got:\n%s", out)
	}
}

func TestPointLinearGradientEmptyPath(t *testing.T) {
	var buf bytes.Buffer
	s := draw.NewSVG(&buf, 100, 100)
	g := PointLinearGradient{Stops: []color.Color{color.Black, color.White}}
	if n := g.Fill(s, random.New(2), 0, 0, 10, 10); n != 0 {
		t.Errorf("expected no dots without a path, got %d", n)
	}
}

func TestDrawGrid(t *testing.T) {
	var buf bytes.Buffer
	s := draw.NewSVG(&buf, 100, 90)
	DrawGrid(s, 100, 90, 3, 4)
	if err := s.Finish(); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "stroke:#808080"); n != 7 {
		t.Errorf("expected 7 grid lines, got %d", n)
	}
}

func TestCirclePacking(t *testing.T) {
	cfg := DefaultCirclePackingConfig()
	cfg.MaxCircles = 30

	var buf bytes.Buffer
	stats, err := sketch.Render(context.Background(), NewCirclePacking(cfg, zap.NewNop()), &buf, 200, 200, 3)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if stats.Values["circles"] == 0 || stats.Values["circles"] > 30 {
		t.Errorf("expected 1..30 circles, got %v", stats.Values["circles"])
	}
	if len(stats.Series["radius"]) != int(stats.Values["circles"]) {
		t.Errorf("expected one radius per circle, got %d", len(stats.Series["radius"]))
	}
}

func TestPointillism(t *testing.T) {
	var buf bytes.Buffer
	stats, err := sketch.Render(context.Background(),
		NewPointillism(DefaultPointillismConfig(), zap.NewNop()), &buf, 400, 300, 5)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, p := range Patterns {
		counts := stats.Series[string(p)]
		if len(counts) != 3 {
			t.Errorf("%s: expected one count per row, got %v", p, counts)
			continue
		}
		for row, n := range counts {
			if n == 0 {
				t.Errorf("%s: expected dots in row %d", p, row)
			}
		}
	}
}

func BenchmarkFillPacked(b *testing.B) {
	rng := random.New(1)
	start, end := geom.Pt(0, 0), geom.Pt(500, 500)
	for b.Loop() {
		FillPacked(rng, start, end, start, end, 3)
	}
}
