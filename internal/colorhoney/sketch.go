package colorhoney

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/san-kum/genart/internal/draw"
	"github.com/san-kum/genart/internal/random"
	"github.com/san-kum/genart/internal/sketch"
)

type System string

const (
	SystemHoney System = "honey"
	SystemTokki System = "tokki"
)

type Config struct {
	Text   string  `yaml:"text"`
	System System  `yaml:"system"`
	Scale  float64 `yaml:"scale"`
	Margin float64 `yaml:"margin"`
}

func DefaultConfig() Config {
	return Config{
		Text:   "Color Honey",
		System: SystemHoney,
		Scale:  DefaultScale,
		Margin: DefaultMargin,
	}
}

// NewWriter returns the writer of a writing system. An empty system is
// ColorHoney.
func NewWriter(cfg Config) (Writer, error) {
	switch cfg.System {
	case SystemHoney, "":
		return Honey{Scale: cfg.Scale}, nil
	case SystemTokki:
		return Tokki{Scale: cfg.Scale, Margin: cfg.Margin}, nil
	}
	return nil, fmt.Errorf("unknown writing system %q", cfg.System)
}

type Sketch struct {
	cfg    Config
	writer Writer
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) (*Sketch, error) {
	w, err := NewWriter(cfg)
	if err != nil {
		return nil, err
	}
	return &Sketch{cfg: cfg, writer: w, logger: logger}, nil
}

func (*Sketch) Name() string { return "colorhoney" }

// Draw writes the configured text. The drawing does not depend on rng.
func (c *Sketch) Draw(_ context.Context, s draw.Surface, _ *random.Rand) (*sketch.Stats, error) {
	text := strings.TrimSpace(c.cfg.Text)
	n := c.writer.Write(s, text)
	c.logger.Debug("text written", zap.String("system", string(c.cfg.System)), zap.Int("letters", n))

	stats := sketch.NewStats()
	stats.Set("letters", float64(n))
	stats.Set("lines", float64(strings.Count(text, "\n")+1))
	return stats, nil
}
