package asparagus

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/draw"
	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/random"
	"github.com/san-kum/genart/internal/sketch"
)

const MinSize = 1.0

type Config struct {
	MaxLength float64 `yaml:"max_length"`
	MaxDepth  int     `yaml:"max_depth"`
	Buds      int     `yaml:"buds"`
	LineWidth float64 `yaml:"line_width"`
}

func DefaultConfig() Config {
	return Config{
		MaxLength: 800,
		MaxDepth:  3,
		Buds:      15,
		LineWidth: 1,
	}
}

// Generate grows a plant along the main branch from start to end.
func Generate(start, end geom.Point, cfg Config) *Branch {
	if cfg.Buds <= 0 {
		cfg.Buds = DefaultConfig().Buds
	}
	main := NewBranch(start, end)
	grow(main, cfg.MaxLength, 0, cfg)
	return main
}

// grow puts a child on every bud of b except the first two, which sit on
// the parent. Children alternate sides, each one shorter and at a slightly
// smaller angle than the one before.
func grow(b *Branch, maxLength float64, depth int, cfg Config) {
	step := b.Length() / float64(cfg.Buds)
	angleMod, lengthMod := 1.0, 1.0

	buds := b.WalkAlong(step)
	if len(buds) <= 2 {
		return
	}

	for _, bud := range buds[2:] {
		length := math.Max(lengthMod*maxLength, MinSize)
		child := b.BranchAt(bud, length, angleMod*math.Pi/2)
		b.Children = append(b.Children, child)

		angleMod *= -0.95
		lengthMod *= 0.85

		if depth < cfg.MaxDepth {
			grow(child, 0.4*length, depth+1, cfg)
		}
	}
}

type Sketch struct {
	cfg    Config
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Sketch {
	return &Sketch{cfg: cfg, logger: logger}
}

func (*Sketch) Name() string { return "asparagus" }

// Draw grows a plant diagonally across the canvas. The plant is fully
// determined by the canvas size; rng is unused.
func (a *Sketch) Draw(_ context.Context, s draw.Surface, _ *random.Rand) (*sketch.Stats, error) {
	plant := Generate(geom.Pt(0, 0), geom.Pt(s.Width(), s.Height()), a.cfg)
	a.logger.Debug("plant grown", zap.Int("branches", plant.Count()))

	s.Save()
	defer s.Restore()
	s.SetSource(color.Black)
	if a.cfg.LineWidth > 0 {
		s.SetLineWidth(a.cfg.LineWidth)
	}
	plant.Draw(s)

	stats := sketch.NewStats()
	stats.Set("branches", float64(plant.Count()))
	return stats, nil
}
