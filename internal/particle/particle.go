// Package particle simulates charged particles moving through magnetic
// fields and decaying into smaller particles.
//
// A [Simulation] advances on a fixed simulated time step, so a run is fully
// determined by its initial particles and the random source of its
// [Spawner]. Each step ages every live particle; particles past their decay
// time split along their [SplitTree], the others are pushed by the Lorentz
// force of the [Chamber] they are in.
package particle

import (
	"fmt"

	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/random"
)

// SplitTree describes how a particle of mass Count decays. A leaf has
// Count 1 and no parts.
type SplitTree struct {
	Count int
	Parts []SplitTree
}

// Leaf is the split tree of a single-mass particle.
var Leaf = SplitTree{Count: 1}

func NewSplitTree(count int, parts ...SplitTree) (SplitTree, error) {
	t := SplitTree{Count: count, Parts: parts}
	if err := t.Validate(); err != nil {
		return SplitTree{}, err
	}
	return t, nil
}

// Validate checks that the parts of every node add up to its count.
func (t SplitTree) Validate() error {
	if t.Count < 1 {
		return fmt.Errorf("%w: count %d", ErrInvalidSplitTree, t.Count)
	}
	if t.Count == 1 {
		return nil
	}

	sum := 0
	for _, p := range t.Parts {
		if err := p.Validate(); err != nil {
			return err
		}
		sum += p.Count
	}
	if sum != t.Count {
		return fmt.Errorf("%w: mass of %d cannot be built from parts summing to %d", ErrInvalidSplitTree, t.Count, sum)
	}
	return nil
}

// Depth is the number of decays until every piece is a leaf.
func (t SplitTree) Depth() int {
	d := 0
	for _, p := range t.Parts {
		d = max(d, p.Depth()+1)
	}
	return d
}

// RandomSplitTree builds a tree for mass by repeatedly cutting off a random
// subtree while more than 2 mass is left. The last 1 or 2 become leaves.
func RandomSplitTree(rng *random.Rand, mass int) SplitTree {
	if mass <= 1 {
		return Leaf
	}

	left := mass
	var parts []SplitTree
	for left > 2 {
		sub := rng.IntRange(1, left-1)
		parts = append(parts, RandomSplitTree(rng, sub))
		left -= sub
	}
	for ; left > 0; left-- {
		parts = append(parts, Leaf)
	}

	return SplitTree{Count: mass, Parts: parts}
}

// Particle is a clump of charged atoms. Its mass is the number of atoms.
type Particle struct {
	ID       int
	Position geom.Vec3
	Velocity geom.Vec3
	Charges  []int

	DecaysAfter float64
	Lifetime    float64
	Tree        SplitTree

	Alive bool
	// Dirty stays set after death until a renderer has seen the final
	// position.
	Dirty bool
}

func NewParticle(pos, velocity geom.Vec3, charges []int, decaysAfter float64, tree SplitTree) (*Particle, error) {
	if tree.Count != len(charges) {
		return nil, fmt.Errorf("%w: tree of mass %d for particle of mass %d", ErrInvalidSplitTree, tree.Count, len(charges))
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}

	return &Particle{
		Position:    pos,
		Velocity:    velocity,
		Charges:     append([]int(nil), charges...),
		DecaysAfter: decaysAfter,
		Tree:        tree,
		Alive:       true,
		Dirty:       true,
	}, nil
}

func (p *Particle) Mass() int { return len(p.Charges) }

func (p *Particle) TotalCharge() int {
	total := 0
	for _, c := range p.Charges {
		total += c
	}
	return total
}

// Clone copies p with its own charge slice. The split tree is shared, trees
// are never mutated.
func (p *Particle) Clone() *Particle {
	c := *p
	c.Charges = append([]int(nil), p.Charges...)
	return &c
}

func (p *Particle) String() string {
	return fmt.Sprintf("particle#%d(mass=%d charge=%d pos=(%.1f,%.1f,%.1f))",
		p.ID, p.Mass(), p.TotalCharge(), p.Position.X, p.Position.Y, p.Position.Z)
}

// Spawner builds the decay products of a particle.
type Spawner interface {
	Spawn(parent *Particle, charges []int, tree SplitTree) (*Particle, error)
}

// SpawnFunc adapts a function to [Spawner].
type SpawnFunc func(parent *Particle, charges []int, tree SplitTree) (*Particle, error)

func (f SpawnFunc) Spawn(parent *Particle, charges []int, tree SplitTree) (*Particle, error) {
	return f(parent, charges, tree)
}
