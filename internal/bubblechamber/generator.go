// Package bubblechamber draws the trails charged particles leave while they
// spiral through a magnetic field and decay.
package bubblechamber

import (
	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/particle"
	"github.com/san-kum/genart/internal/random"
)

var chargeChoices = []int{-2, -1, 1, 2}

// DefaultLifetime is the mean of the exponential lifetime of a particle.
const DefaultLifetime = 2.0

// MakeChamber fills in a random magnet strength and friction for zero values.
func MakeChamber(rng *random.Rand, magnet, friction float64) particle.Chamber {
	if magnet == 0 {
		magnet = rng.LogNormal(1, 0.2)
	}
	if friction == 0 {
		friction = rng.Uniform(0.2, 0.6)
	}
	return particle.Chamber{MagneticField: magnet, Friction: friction}
}

// RandomCharges returns 5 to 99 charges out of {-2, -1, 1, 2}.
func RandomCharges(rng *random.Rand) []int {
	charges := make([]int, rng.IntRange(5, 100))
	for i := range charges {
		charges[i] = random.Pick(rng, chargeChoices)
	}
	return charges
}

// MakeParticle draws the missing charges and split tree. The particle lives
// for an exponentially distributed time.
func MakeParticle(rng *random.Rand, pos, velocity geom.Vec3, charges []int, tree *particle.SplitTree) (*particle.Particle, error) {
	if charges == nil {
		charges = RandomCharges(rng)
	}
	lifetime := rng.Exponential(DefaultLifetime)

	t := particle.RandomSplitTree(rng, len(charges))
	if tree != nil {
		t = *tree
	}
	return particle.NewParticle(pos, velocity, charges, lifetime, t)
}

// GenerateParticles starts n particles in the centre of the canvas with
// normally distributed velocities. n <= 0 picks 1 to 4.
func GenerateParticles(rng *random.Rand, width, height float64, n int, allow3D bool) ([]*particle.Particle, error) {
	center := geom.V3(width/2, height/2, 0)
	avgSpeed := center.Norm()

	if n <= 0 {
		n = rng.IntRange(1, 5)
	}

	res := make([]*particle.Particle, 0, n)
	for range n {
		v := geom.V3(
			rng.Normal(0, avgSpeed/5),
			rng.Normal(0, avgSpeed/5),
			rng.Normal(0, avgSpeed/5),
		)
		if !allow3D {
			v.Z = 0
		}

		p, err := MakeParticle(rng, center, v, nil, nil)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

// Spawner makes decay products that inherit the parent's position and
// velocity and draw a fresh lifetime.
type Spawner struct {
	rng *random.Rand
}

func NewSpawner(rng *random.Rand) *Spawner {
	return &Spawner{rng: rng}
}

func (s *Spawner) Spawn(parent *particle.Particle, charges []int, tree particle.SplitTree) (*particle.Particle, error) {
	return MakeParticle(s.rng, parent.Position, parent.Velocity, charges, &tree)
}
