package cloudscript

import (
	"math"

	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/particle"
	"github.com/san-kum/genart/internal/random"
)

var (
	// EmptyChamber is shared by every cell without a symbol.
	EmptyChamber = &particle.Chamber{MagneticField: 1, Friction: 1}

	// DefaultChamber applies outside the grid.
	DefaultChamber = particle.Chamber{}
)

// SuperChamber is a grid of chambers laid over the canvas.
type SuperChamber struct {
	Width, Height int
	Chambers      [][]*particle.Chamber
}

func (s *SuperChamber) Rows() int { return len(s.Chambers) }

func (s *SuperChamber) Columns() int {
	if len(s.Chambers) == 0 {
		return 0
	}
	return len(s.Chambers[0])
}

func (s *SuperChamber) RowHeight() int {
	if s.Rows() == 0 {
		return 0
	}
	return s.Height / s.Rows()
}

func (s *SuperChamber) ColWidth() int {
	if s.Columns() == 0 {
		return 0
	}
	return s.Width / s.Columns()
}

// At returns the chamber of the cell containing pos, or DefaultChamber when
// pos is outside the grid.
func (s *SuperChamber) At(pos geom.Vec3) particle.Chamber {
	rh, cw := s.RowHeight(), s.ColWidth()
	if rh == 0 || cw == 0 || pos.X < 0 || pos.Y < 0 {
		return DefaultChamber
	}

	// compare before converting, huge or NaN coordinates do not fit an int
	fr := math.Floor(pos.Y / float64(rh))
	fc := math.Floor(pos.X / float64(cw))
	if !(fr < float64(s.Rows())) || !(fc < float64(s.Columns())) {
		return DefaultChamber
	}
	row, col := int(fr), int(fc)
	if row < 0 || col < 0 || col >= len(s.Chambers[row]) {
		return DefaultChamber
	}
	return *s.Chambers[row][col]
}

// MakeSuperChamber gives every distinct symbol of the layout its own random
// chamber. Empty cells share EmptyChamber.
func MakeSuperChamber(rng *random.Rand, width, height int, layout Layout) *SuperChamber {
	cache := map[string]*particle.Chamber{Empty: EmptyChamber}

	chambers := make([][]*particle.Chamber, len(layout))
	for i, row := range layout {
		chambers[i] = make([]*particle.Chamber, len(row))
		for j, symbol := range row {
			c, ok := cache[symbol]
			if !ok {
				c = RandomChamber(rng)
				cache[symbol] = c
			}
			chambers[i][j] = c
		}
	}

	return &SuperChamber{Width: width, Height: height, Chambers: chambers}
}

func RandomChamber(rng *random.Rand) *particle.Chamber {
	return &particle.Chamber{
		MagneticField: rng.LogNormal(1, 0.2),
		Friction:      rng.Uniform(0.2, 0.5),
	}
}
