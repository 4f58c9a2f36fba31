package techniques

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/draw"
	"github.com/san-kum/genart/internal/packing"
	"github.com/san-kum/genart/internal/random"
	"github.com/san-kum/genart/internal/sketch"
)

type CirclePackingConfig struct {
	GrowRate   float64 `yaml:"grow_rate"`
	MaxCircles int     `yaml:"max_circles"`
	Unbounded  bool    `yaml:"unbounded"`
}

func DefaultCirclePackingConfig() CirclePackingConfig {
	return CirclePackingConfig{GrowRate: 5, MaxCircles: 1000}
}

// CirclePacking strokes the outline of every packed circle.
type CirclePacking struct {
	cfg    CirclePackingConfig
	logger *zap.Logger
}

func NewCirclePacking(cfg CirclePackingConfig, logger *zap.Logger) *CirclePacking {
	return &CirclePacking{cfg: cfg, logger: logger}
}

func (*CirclePacking) Name() string { return "circlepacking" }

func (c *CirclePacking) Draw(_ context.Context, s draw.Surface, rng *random.Rand) (*sketch.Stats, error) {
	circles, err := packing.Pack(rng, s.Width(), s.Height(), packing.Options{
		GrowRate:   c.cfg.GrowRate,
		MaxCircles: c.cfg.MaxCircles,
		Unbounded:  c.cfg.Unbounded,
	})
	if err != nil {
		return nil, err
	}
	c.logger.Debug("circles packed", zap.Int("circles", len(circles)))

	for _, circle := range circles {
		s.Arc(circle.Pos.X, circle.Pos.Y, circle.R, 0, 2*math.Pi)
		s.Stroke()
	}

	stats := sketch.NewStats()
	stats.Set("circles", float64(len(circles)))
	stats.SetSeries("radius", packing.Radii(circles))
	return stats, nil
}

type PointillismConfig struct {
	Rows      int     `yaml:"rows"`
	DotRadius float64 `yaml:"dot_radius"`
}

func DefaultPointillismConfig() PointillismConfig {
	return PointillismConfig{Rows: 3, DotRadius: DefaultDotRadius}
}

// Pointillism lays the canvas out as a grid with one dot pattern per column
// and turns the gradient a little further on every row, from horizontal in
// the first row to vertical in the last.
type Pointillism struct {
	cfg    PointillismConfig
	logger *zap.Logger
}

func NewPointillism(cfg PointillismConfig, logger *zap.Logger) *Pointillism {
	if cfg.Rows <= 0 {
		cfg.Rows = DefaultPointillismConfig().Rows
	}
	return &Pointillism{cfg: cfg, logger: logger}
}

func (*Pointillism) Name() string { return "pointillism" }

func (p *Pointillism) Draw(_ context.Context, s draw.Surface, rng *random.Rand) (*sketch.Stats, error) {
	width, height := s.Width(), s.Height()
	rows, cols := p.cfg.Rows, len(Patterns)
	DrawGrid(s, width, height, rows, cols)

	rowHeight := float64(int(height) / rows)
	colWidth := float64(int(width) / cols)
	radius := math.Min(rowHeight, colWidth) / 2

	angleStep := 0.0
	if rows > 1 {
		angleStep = math.Pi / 2 / float64(rows-1)
	}

	stats := sketch.NewStats()
	for row := range rows {
		cy := (float64(row) + 0.5) * rowHeight
		angle := float64(row) * angleStep
		ox, oy := math.Cos(angle)*radius, math.Sin(angle)*radius

		for col, pat := range Patterns {
			cx := (float64(col) + 0.5) * colWidth

			s.Save()
			s.Arc(cx, cy, radius, 0, 2*math.Pi)
			s.Clip()

			s.Arc(cx, cy, radius, 0, 2*math.Pi)
			grad := PointLinearGradient{
				Stops:     []color.Color{color.Black, color.White},
				Pattern:   pat,
				DotRadius: p.cfg.DotRadius,
			}
			n := grad.Fill(s, rng, cx, cy, cx+ox, cy+oy)
			s.Restore()

			stats.Append(string(pat), float64(n))
		}
	}
	p.logger.Debug("pointillism grid drawn", zap.Int("rows", rows), zap.Int("columns", cols))
	return stats, nil
}
