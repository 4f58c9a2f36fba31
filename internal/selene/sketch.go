package selene

import (
	"context"

	"go.uber.org/zap"

	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/draw"
	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/packing"
	"github.com/san-kum/genart/internal/random"
	"github.com/san-kum/genart/internal/sketch"
)

type Background string

const (
	BackgroundGrey      Background = "grey"
	BackgroundParchment Background = "parchment"
)

var backgrounds = map[Background]color.RadialGradient{
	BackgroundGrey:      {Stops: []color.Color{color.RGB(0.7, 0.7, 0.7), color.RGB(0.2, 0.2, 0.2)}},
	BackgroundParchment: {Stops: []color.Color{color.RGB(0.84, 0.81, 0.74), color.RGB(0.55, 0.50, 0.36)}},
}

// DrawBackground paints a radial gradient centred on the canvas.
func DrawBackground(s draw.Surface, bg Background) {
	g, ok := backgrounds[bg]
	if !ok {
		g = backgrounds[BackgroundGrey]
	}
	cx, cy := s.Width()/2, s.Height()/2
	draw.WithSource(s, g.Pattern(cx, cy, cx), s.Paint)
}

type Config struct {
	Background Background `yaml:"background"`
	MinCircles int        `yaml:"min_circles"`
	MaxCircles int        `yaml:"max_circles"`
	GrowRate   float64    `yaml:"grow_rate"`
}

func DefaultConfig() Config {
	return Config{
		Background: BackgroundGrey,
		MinCircles: 4,
		MaxCircles: 11,
		GrowRate:   10,
	}
}

// Fill is what a circle was filled with.
type Fill struct {
	Bands []string
	Core  string
}

// FillCircle draws 2..3 bands from the outside in, each taking 10..40% of
// the radius left, and a core of 50..90% of what remains.
func FillCircle(s draw.Surface, rng *random.Rand, c geom.Point, radius float64) Fill {
	var f Fill

	n := rng.IntRange(2, 4)
	left := radius
	for range n {
		band := random.Pick(rng, Bands)
		width := rng.Uniform(0.1, 0.4) * left
		band.Draw(s, rng, c, left, left-width)
		left -= width
		f.Bands = append(f.Bands, band.Name)
	}

	size := rng.Uniform(0.5, 0.9) * left
	core := random.Pick(rng, Cores)
	core.Draw(s, rng, c, size)
	f.Core = core.Name
	return f
}

type Sketch struct {
	cfg    Config
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Sketch {
	def := DefaultConfig()
	if cfg.MinCircles <= 0 {
		cfg.MinCircles = def.MinCircles
	}
	if cfg.MaxCircles < cfg.MinCircles {
		cfg.MaxCircles = cfg.MinCircles
	}
	if cfg.GrowRate <= 0 {
		cfg.GrowRate = def.GrowRate
	}
	return &Sketch{cfg: cfg, logger: logger}
}

func (*Sketch) Name() string { return "selene" }

func (sk *Sketch) Draw(_ context.Context, s draw.Surface, rng *random.Rand) (*sketch.Stats, error) {
	DrawBackground(s, sk.cfg.Background)

	n := rng.IntRange(sk.cfg.MinCircles, sk.cfg.MaxCircles+1)
	circles, err := packing.Pack(rng, s.Width(), s.Height(), packing.Options{
		GrowRate:   sk.cfg.GrowRate,
		MaxCircles: n,
	})
	if err != nil {
		return nil, err
	}

	stats := sketch.NewStats()
	for _, c := range circles {
		f := FillCircle(s, rng, c.Pos, c.R)
		sk.logger.Debug("calendar drawn",
			zap.Float64("radius", c.R),
			zap.Strings("bands", f.Bands),
			zap.String("core", f.Core),
		)
		for _, b := range f.Bands {
			stats.Values["band_"+b]++
		}
		stats.Values["core_"+f.Core]++
	}

	stats.Set("circles", float64(len(circles)))
	stats.SetSeries("radius", packing.Radii(circles))
	return stats, nil
}
