// Package gallery maps sketch names to constructors built from the config.
package gallery

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/san-kum/genart/internal/asparagus"
	"github.com/san-kum/genart/internal/bubblechamber"
	"github.com/san-kum/genart/internal/cloudscript"
	"github.com/san-kum/genart/internal/colorhoney"
	"github.com/san-kum/genart/internal/config"
	"github.com/san-kum/genart/internal/selene"
	"github.com/san-kum/genart/internal/sketch"
	"github.com/san-kum/genart/internal/techniques"
	"github.com/san-kum/genart/internal/wael"
)

var ErrUnknownSketch = errors.New("unknown sketch")

type Factory func(cfg *config.Config, logger *zap.Logger) (sketch.Sketch, error)

type entry struct {
	help   string
	new    Factory
	params func(cfg *config.Config) any
}

type Registry struct {
	sketches   map[string]entry
	techniques map[string]entry
}

func NewRegistry() *Registry {
	r := &Registry{
		sketches:   make(map[string]entry),
		techniques: make(map[string]entry),
	}

	r.sketches["asparagus"] = entry{
		help: "Asparagus plumosus",
		new: func(cfg *config.Config, logger *zap.Logger) (sketch.Sketch, error) {
			return asparagus.New(cfg.Asparagus, logger), nil
		},
		params: func(cfg *config.Config) any { return cfg.Asparagus },
	}
	r.sketches["bubblechamber"] = entry{
		help: "charged particles decaying in a magnetic field",
		new: func(cfg *config.Config, logger *zap.Logger) (sketch.Sketch, error) {
			return bubblechamber.New(cfg.BubbleChamber, logger)
		},
		params: func(cfg *config.Config) any { return cfg.BubbleChamber },
	}
	r.sketches["cloudscript"] = entry{
		help: "text written by particles in a grid of chambers",
		new: func(cfg *config.Config, logger *zap.Logger) (sketch.Sketch, error) {
			return cloudscript.New(cfg.CloudScript, logger)
		},
		params: func(cfg *config.Config) any { return cfg.CloudScript },
	}
	r.sketches["selene"] = entry{
		help: "O Chaire Selene",
		new: func(cfg *config.Config, logger *zap.Logger) (sketch.Sketch, error) {
			return selene.New(cfg.Selene, logger), nil
		},
		params: func(cfg *config.Config) any { return cfg.Selene },
	}
	r.sketches["wael"] = entry{
		help: "He Who Sees and Is Not Seen",
		new: func(cfg *config.Config, logger *zap.Logger) (sketch.Sketch, error) {
			return wael.New(cfg.Wael, logger), nil
		},
		params: func(cfg *config.Config) any { return cfg.Wael },
	}
	r.sketches["colorhoney"] = entry{
		help: "ColorHoney writing system by Kim Godgul",
		new: func(cfg *config.Config, logger *zap.Logger) (sketch.Sketch, error) {
			return colorhoney.New(cfg.ColorHoney, logger)
		},
		params: func(cfg *config.Config) any { return cfg.ColorHoney },
	}

	r.techniques["circlepacking"] = entry{
		help: "stroked circle packing",
		new: func(cfg *config.Config, logger *zap.Logger) (sketch.Sketch, error) {
			return techniques.NewCirclePacking(cfg.CirclePacking, logger), nil
		},
		params: func(cfg *config.Config) any { return cfg.CirclePacking },
	}
	r.techniques["pointillism"] = entry{
		help: "dotted gradients in every fill pattern",
		new: func(cfg *config.Config, logger *zap.Logger) (sketch.Sketch, error) {
			return techniques.NewPointillism(cfg.Pointillism, logger), nil
		},
		params: func(cfg *config.Config) any { return cfg.Pointillism },
	}

	return r
}

func (r *Registry) lookup(name string) (entry, bool) {
	if e, ok := r.sketches[name]; ok {
		return e, true
	}
	e, ok := r.techniques[name]
	return e, ok
}

// Get builds a sketch or technique by name.
func (r *Registry) Get(name string, cfg *config.Config, logger *zap.Logger) (sketch.Sketch, error) {
	e, ok := r.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSketch, name)
	}
	sk, err := e.new(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", name, err)
	}
	return sk, nil
}

// Params is the part of cfg the named sketch reads, or nil.
func (r *Registry) Params(name string, cfg *config.Config) any {
	e, ok := r.lookup(name)
	if !ok {
		return nil
	}
	return e.params(cfg)
}

func (r *Registry) Help(name string) string {
	e, _ := r.lookup(name)
	return e.help
}

func (r *Registry) ListSketches() []string {
	return slices.Sorted(maps.Keys(r.sketches))
}

func (r *Registry) ListTechniques() []string {
	return slices.Sorted(maps.Keys(r.techniques))
}
