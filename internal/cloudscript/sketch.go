package cloudscript

import (
	"context"

	"go.uber.org/zap"

	"github.com/san-kum/genart/internal/bubblechamber"
	"github.com/san-kum/genart/internal/draw"
	"github.com/san-kum/genart/internal/fps"
	"github.com/san-kum/genart/internal/particle"
	"github.com/san-kum/genart/internal/random"
	"github.com/san-kum/genart/internal/sketch"
)

type Config struct {
	Text         string  `yaml:"text"`
	Padding      []int   `yaml:"padding"`
	Grid         bool    `yaml:"grid"`
	FPS          float64 `yaml:"fps"`
	MaxLineWidth float64 `yaml:"max_linewidth"`
	TimeModifier float64 `yaml:"time_modifier"`
	MaxSteps     int     `yaml:"max_steps"`
}

func DefaultConfig() Config {
	return Config{
		Text:         "Hello\nWorld",
		Padding:      []int{1},
		FPS:          bubblechamber.DefaultFPS,
		MaxLineWidth: DefaultMaxLineWidth,
		TimeModifier: 1,
		MaxSteps:     particle.DefaultMaxSteps,
	}
}

type Sketch struct {
	cfg    Config
	pad    Padding
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) (*Sketch, error) {
	pad, err := ParsePadding(cfg.Padding)
	if err != nil {
		return nil, err
	}
	if cfg.MaxLineWidth <= 0 {
		cfg.MaxLineWidth = DefaultMaxLineWidth
	}
	if cfg.TimeModifier <= 0 {
		cfg.TimeModifier = 1
	}
	return &Sketch{cfg: cfg, pad: pad, logger: logger}, nil
}

func (*Sketch) Name() string { return "cloudscript" }

func (c *Sketch) Draw(ctx context.Context, s draw.Surface, rng *random.Rand) (*sketch.Stats, error) {
	stats := sketch.NewStats()

	layout := LayoutText(c.cfg.Text, c.pad)
	sc := MakeSuperChamber(rng, int(s.Width()), int(s.Height()), layout)
	particles, err := GenerateParticles(rng, sc)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("layout ready",
		zap.Int("rows", sc.Rows()),
		zap.Int("columns", sc.Columns()),
		zap.Int("particles", len(particles)),
	)

	if c.cfg.Grid {
		DrawGrid(s, sc)
	}

	rec := bubblechamber.NewRecorder(c.cfg.FPS)
	counter := fps.New(c.logger, c.Name())
	sim := particle.New(sc, particles, Spawner,
		particle.WithTimeModifier(c.cfg.TimeModifier),
		particle.WithMaxSteps(c.cfg.MaxSteps),
		particle.WithLogger(c.logger),
		particle.WithObserver(rec),
		particle.WithObserver(particle.ObserverFunc(func(sim *particle.Simulation) {
			counter.FrameDone()
			stats.Append("alive", float64(sim.Alive()))
		})),
	)

	counter.Start()
	res, err := sim.Run(ctx)
	if err != nil {
		return nil, err
	}
	rec.Flush(sim)

	trails := rec.Trails()
	DrawTrails(s, trails, c.cfg.MaxLineWidth)

	stats.Set("rows", float64(sc.Rows()))
	stats.Set("columns", float64(sc.Columns()))
	stats.Set("steps", float64(res.Steps))
	stats.Set("sim_time", res.SimTime)
	stats.Set("particles", float64(res.Particles))
	stats.Set("trails", float64(len(trails)))
	return stats, nil
}
