// Package sketch defines what a generative sketch is and how one is rendered
// to SVG.
package sketch

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/san-kum/genart/internal/draw"
	"github.com/san-kum/genart/internal/random"
)

// Sketch draws one piece onto a surface. All randomness must come from rng
// so that a seed reproduces the drawing.
type Sketch interface {
	Name() string
	Draw(ctx context.Context, s draw.Surface, rng *random.Rand) (*Stats, error)
}

// Stats are the numbers a sketch reports about a drawing: scalar values for
// the run metadata and series for terminal plots.
type Stats struct {
	Values map[string]float64
	Series map[string][]float64
}

func NewStats() *Stats {
	return &Stats{
		Values: make(map[string]float64),
		Series: make(map[string][]float64),
	}
}

func (s *Stats) Set(key string, v float64) { s.Values[key] = v }

func (s *Stats) Append(key string, v float64) {
	s.Series[key] = append(s.Series[key], v)
}

// SetSeries replaces a whole series.
func (s *Stats) SetSeries(key string, vs []float64) { s.Series[key] = vs }

// Keys returns the value names in sorted order.
func (s *Stats) Keys() []string {
	return slices.Sorted(maps.Keys(s.Values))
}

// SeriesKeys returns the series names in sorted order.
func (s *Stats) SeriesKeys() []string {
	return slices.Sorted(maps.Keys(s.Series))
}

// Render draws sk on a new width x height SVG document written to w.
func Render(ctx context.Context, sk Sketch, w io.Writer, width, height int, seed int64) (*Stats, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render %s: invalid size %dx%d", sk.Name(), width, height)
	}

	surface := draw.NewSVG(w, width, height)
	stats, err := sk.Draw(ctx, surface, random.New(seed))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", sk.Name(), err)
	}
	if err := surface.Finish(); err != nil {
		return nil, fmt.Errorf("write %s: %w", sk.Name(), err)
	}

	if stats == nil {
		stats = NewStats()
	}
	return stats, nil
}
