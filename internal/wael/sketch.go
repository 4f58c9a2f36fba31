package wael

import (
	"context"

	"go.uber.org/zap"

	"github.com/san-kum/genart/internal/draw"
	"github.com/san-kum/genart/internal/packing"
	"github.com/san-kum/genart/internal/random"
	"github.com/san-kum/genart/internal/sketch"
)

type Config struct {
	GrowRate float64 `yaml:"grow_rate"`
	MaxEyes  int     `yaml:"max_eyes"`
	// Flesh paints the background in flesh colour instead of leaving it
	// transparent.
	Flesh bool `yaml:"flesh"`
}

func DefaultConfig() Config {
	return Config{
		GrowRate: 1,
		MaxEyes:  200,
	}
}

type Sketch struct {
	cfg    Config
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Sketch {
	if cfg.MaxEyes <= 0 {
		cfg.MaxEyes = DefaultConfig().MaxEyes
	}
	return &Sketch{cfg: cfg, logger: logger}
}

func (*Sketch) Name() string { return "wael" }

func (w *Sketch) Draw(_ context.Context, s draw.Surface, rng *random.Rand) (*sketch.Stats, error) {
	if w.cfg.Flesh {
		Flesh{Color: FleshColor}.Draw(s)
	}

	eyes, err := Fill(rng, s.Width(), s.Height(), packing.Options{
		GrowRate:   w.cfg.GrowRate,
		MaxCircles: w.cfg.MaxEyes,
	})
	if err != nil {
		return nil, err
	}
	w.logger.Debug("eyes packed", zap.Int("eyes", len(eyes)))

	stats := sketch.NewStats()
	radii := make([]float64, 0, len(eyes))
	var irises, lids, slits int
	for _, e := range eyes {
		e.Draw(s)

		radii = append(radii, e.Size)
		if e.Iris != nil {
			irises++
		}
		if e.Eyelids != nil {
			lids++
		}
		if _, ok := e.Pupil.(SlitPupil); ok {
			slits++
		}
	}

	stats.Set("eyes", float64(len(eyes)))
	stats.Set("irises", float64(irises))
	stats.Set("eyelids", float64(lids))
	stats.Set("slit_pupils", float64(slits))
	stats.SetSeries("radius", radii)
	return stats, nil
}
