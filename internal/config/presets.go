package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/san-kum/genart/internal/bubblechamber"
	"github.com/san-kum/genart/internal/colorhoney"
	"github.com/san-kum/genart/internal/selene"
)

var ErrUnknownPreset = errors.New("unknown preset")

// preset is the default config with fn applied.
func preset(fn func(c *Config)) *Config {
	c := DefaultConfig()
	fn(c)
	return c
}

var Presets = map[string]map[string]*Config{
	"asparagus": {
		"sparse": preset(func(c *Config) { c.Asparagus.Buds = 8; c.Asparagus.MaxDepth = 2 }),
		"lush":   preset(func(c *Config) { c.Asparagus.Buds = 25 }),
	},
	"bubblechamber": {
		"comic": preset(func(c *Config) {
			c.BubbleChamber.ColorScheme = string(bubblechamber.SchemeComic)
			c.BubbleChamber.LineWidth = string(bubblechamber.WidthCharge)
		}),
		"flat": preset(func(c *Config) { c.BubbleChamber.Particles = 50 }),
		"dense": preset(func(c *Config) {
			c.BubbleChamber.Particles = 400
			c.BubbleChamber.Allow3D = true
			c.BubbleChamber.LineWidth = string(bubblechamber.WidthMass)
		}),
		"slowmo": preset(func(c *Config) { c.BubbleChamber.TimeModifier = 0.25 }),
	},
	"cloudscript": {
		"grid":  preset(func(c *Config) { c.CloudScript.Grid = true }),
		"tight": preset(func(c *Config) { c.CloudScript.Padding = []int{0} }),
		"bold":  preset(func(c *Config) { c.CloudScript.MaxLineWidth = 5 }),
	},
	"selene": {
		"parchment": preset(func(c *Config) { c.Selene.Background = selene.BackgroundParchment }),
		"crowded":   preset(func(c *Config) { c.Selene.MinCircles = 10; c.Selene.MaxCircles = 20; c.Selene.GrowRate = 5 }),
	},
	"wael": {
		"flesh": preset(func(c *Config) { c.Wael.Flesh = true }),
		"few":   preset(func(c *Config) { c.Wael.MaxEyes = 12; c.Wael.GrowRate = 4 }),
	},
	"colorhoney": {
		"tokki": preset(func(c *Config) { c.ColorHoney.System = colorhoney.SystemTokki }),
	},
	"circlepacking": {
		"fine":      preset(func(c *Config) { c.CirclePacking.GrowRate = 1 }),
		"unbounded": preset(func(c *Config) { c.CirclePacking.Unbounded = true }),
	},
	"pointillism": {
		"coarse": preset(func(c *Config) { c.Pointillism.DotRadius = 6 }),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(sketch, name string) *Config {
	sketchPresets, ok := Presets[sketch]
	if !ok {
		return nil
	}
	cfg, ok := sketchPresets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.CloudScript.Padding = slices.Clone(cfg.CloudScript.Padding)
	return &c
}

func ListPresets(sketch string) []string {
	sketchPresets, ok := Presets[sketch]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(sketchPresets))
}

// ApplyPreset overwrites the section of dst that sketch reads with the
// named preset's. The rest of dst is left alone.
func ApplyPreset(dst *Config, sketch, name string) error {
	p := GetPreset(sketch, name)
	if p == nil {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets(sketch))
	}
	switch sketch {
	case "asparagus":
		dst.Asparagus = p.Asparagus
	case "bubblechamber":
		dst.BubbleChamber = p.BubbleChamber
	case "cloudscript":
		text := dst.CloudScript.Text
		dst.CloudScript = p.CloudScript
		dst.CloudScript.Text = text
	case "selene":
		dst.Selene = p.Selene
	case "wael":
		dst.Wael = p.Wael
	case "colorhoney":
		text := dst.ColorHoney.Text
		dst.ColorHoney = p.ColorHoney
		dst.ColorHoney.Text = text
	case "circlepacking":
		dst.CirclePacking = p.CirclePacking
	case "pointillism":
		dst.Pointillism = p.Pointillism
	}
	return nil
}
