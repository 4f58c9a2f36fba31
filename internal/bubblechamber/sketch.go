package bubblechamber

import (
	"context"

	"go.uber.org/zap"

	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/draw"
	"github.com/san-kum/genart/internal/fps"
	"github.com/san-kum/genart/internal/particle"
	"github.com/san-kum/genart/internal/random"
	"github.com/san-kum/genart/internal/sketch"
)

// Config holds the knobs of the sketch. Zero magnet, friction or particle
// count are drawn at random.
type Config struct {
	Magnet       float64 `yaml:"magnet"`
	Friction     float64 `yaml:"friction"`
	Particles    int     `yaml:"particles"`
	Allow3D      bool    `yaml:"allow_3d"`
	FPS          float64 `yaml:"fps"`
	ColorScheme  string  `yaml:"color_scheme"`
	LineWidth    string  `yaml:"line_width"`
	TimeModifier float64 `yaml:"time_modifier"`
	MaxSteps     int     `yaml:"max_steps"`
}

func DefaultConfig() Config {
	return Config{
		FPS:          DefaultFPS,
		ColorScheme:  string(SchemeBW),
		LineWidth:    string(WidthConstant),
		TimeModifier: 1,
		MaxSteps:     particle.DefaultMaxSteps,
	}
}

// sampleEvery is how often, in simulated seconds, the alive count is
// recorded for plots.
const sampleEvery = 0.1

type Sketch struct {
	cfg      Config
	renderer Renderer
	logger   *zap.Logger
}

func New(cfg Config, logger *zap.Logger) (*Sketch, error) {
	scheme, err := ParseColorScheme(cfg.ColorScheme)
	if err != nil {
		return nil, err
	}
	width, err := ParseLineWidth(cfg.LineWidth)
	if err != nil {
		return nil, err
	}
	if cfg.TimeModifier <= 0 {
		cfg.TimeModifier = 1
	}

	return &Sketch{
		cfg:      cfg,
		renderer: Renderer{Scheme: scheme, Width: width},
		logger:   logger,
	}, nil
}

func (*Sketch) Name() string { return "bubblechamber" }

func (b *Sketch) Draw(ctx context.Context, s draw.Surface, rng *random.Rand) (*sketch.Stats, error) {
	stats := sketch.NewStats()

	draw.WithSource(s, color.White, s.Paint)

	chamber := MakeChamber(rng, b.cfg.Magnet, b.cfg.Friction)
	particles, err := GenerateParticles(rng, s.Width(), s.Height(), b.cfg.Particles, b.cfg.Allow3D)
	if err != nil {
		return nil, err
	}
	b.logger.Info("chamber ready",
		zap.Float64("magnet", chamber.MagneticField),
		zap.Float64("friction", chamber.Friction),
		zap.Int("particles", len(particles)),
	)

	rec := NewRecorder(b.cfg.FPS)
	counter := fps.New(b.logger, b.Name())
	nextSample := 0.0

	sim := particle.New(chamber, particles, NewSpawner(rng),
		particle.WithTimeModifier(b.cfg.TimeModifier),
		particle.WithMaxSteps(b.cfg.MaxSteps),
		particle.WithLogger(b.logger),
		particle.WithObserver(rec),
		particle.WithObserver(particle.ObserverFunc(func(sim *particle.Simulation) {
			counter.FrameDone()
			if sim.Elapsed() >= nextSample {
				stats.Append("alive", float64(sim.Alive()))
				nextSample += sampleEvery
			}
		})),
	)

	counter.Start()
	res, err := sim.Run(ctx)
	if err != nil {
		return nil, err
	}
	rec.Flush(sim)

	trails := rec.Trails()
	b.renderer.Draw(s, trails)

	stats.Set("magnet", chamber.MagneticField)
	stats.Set("friction", chamber.Friction)
	stats.Set("steps", float64(res.Steps))
	stats.Set("sim_time", res.SimTime)
	stats.Set("particles", float64(res.Particles))
	stats.Set("peak_alive", float64(res.PeakAlive))
	stats.Set("trails", float64(len(trails)))
	stats.Set("points", float64(rec.Points()))
	return stats, nil
}
