package cloudscript

import (
	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/particle"
	"github.com/san-kum/genart/internal/random"
)

var chargeChoices = []int{-1, 0, 1}

// RandomCharges returns 2 to 4 charges out of {-1, 0, 1}.
func RandomCharges(rng *random.Rand) []int {
	charges := make([]int, rng.IntRange(2, 5))
	for i := range charges {
		charges[i] = random.Pick(rng, chargeChoices)
	}
	return charges
}

// NewParticle makes a particle that decays after as many seconds as it
// has mass.
func NewParticle(pos, velocity geom.Vec3, charges []int, tree particle.SplitTree) (*particle.Particle, error) {
	return particle.NewParticle(pos, velocity, charges, float64(len(charges)), tree)
}

// Spawner builds decay products with the usual mass-based lifetime.
var Spawner = particle.SpawnFunc(func(parent *particle.Particle, charges []int, tree particle.SplitTree) (*particle.Particle, error) {
	return NewParticle(parent.Position, parent.Velocity, charges, tree)
})

// templateParticle places a particle near a random corner of a cell, given
// by the octant 1..7 around the cell centre, heading roughly inward. Octant 4
// starts at the bottom but still heads down.
func templateParticle(rng *random.Rand, colWidth, rowHeight float64) (*particle.Particle, error) {
	octant := rng.IntRange(1, 8)

	x := 0.3 * colWidth * rng.Float64()
	right := octant == 1 || octant == 2 || octant == 7
	if right {
		x = colWidth - x
	}

	y := 0.3 * rowHeight * rng.Float64()
	if octant >= 4 {
		y = rowHeight - y
	}

	vx := rng.Normal(colWidth/2, colWidth/50)
	if right {
		vx = -vx
	}
	vy := rng.Normal(rowHeight/2, rowHeight/50)
	if octant > 4 {
		vy = -vy
	}

	charges := RandomCharges(rng)
	tree := particle.RandomSplitTree(rng, len(charges))
	return NewParticle(geom.V3(x, y, 0), geom.V3(vx, vy, 0), charges, tree)
}

// GenerateParticles creates one particle template per distinct chamber and
// copies it into every cell using that chamber, offset to the cell corner.
// Empty cells get no particle.
func GenerateParticles(rng *random.Rand, sc *SuperChamber) ([]*particle.Particle, error) {
	colWidth := float64(sc.ColWidth())
	rowHeight := float64(sc.RowHeight())
	templates := make(map[*particle.Chamber]*particle.Particle)

	var res []*particle.Particle
	for i, row := range sc.Chambers {
		for j, c := range row {
			if c == EmptyChamber {
				continue
			}

			tmpl, ok := templates[c]
			if !ok {
				var err error
				tmpl, err = templateParticle(rng, colWidth, rowHeight)
				if err != nil {
					return nil, err
				}
				templates[c] = tmpl
			}

			p := tmpl.Clone()
			p.Position = tmpl.Position.Add(geom.V3(float64(j)*colWidth, float64(i)*rowHeight, 0))
			res = append(res, p)
		}
	}
	return res, nil
}
