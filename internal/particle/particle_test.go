package particle_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/particle"
	"github.com/san-kum/genart/internal/random"
)

// fixedSpawner gives every decay product the same lifetime.
func fixedSpawner(lifetime float64) particle.Spawner {
	return particle.SpawnFunc(func(parent *particle.Particle, charges []int, tree particle.SplitTree) (*particle.Particle, error) {
		return particle.NewParticle(parent.Position, parent.Velocity, charges, lifetime, tree)
	})
}

func mustParticle(pos, vel geom.Vec3, charges []int, decaysAfter float64, tree particle.SplitTree) *particle.Particle {
	p, err := particle.NewParticle(pos, vel, charges, decaysAfter, tree)
	Expect(err).NotTo(HaveOccurred())
	return p
}

var _ = Describe("SplitTree", func() {
	It("accepts parts that add up to the count", func() {
		leaf := particle.Leaf
		two, err := particle.NewSplitTree(2, leaf, leaf)
		Expect(err).NotTo(HaveOccurred())

		tree, err := particle.NewSplitTree(3, two, leaf)
		Expect(err).NotTo(HaveOccurred())
		Expect(tree.Count).To(Equal(3))
		Expect(tree.Depth()).To(Equal(2))
	})

	It("rejects parts that do not add up", func() {
		_, err := particle.NewSplitTree(3, particle.Leaf)
		Expect(err).To(MatchError(particle.ErrInvalidSplitTree))
	})

	It("accepts a leaf without parts", func() {
		_, err := particle.NewSplitTree(1)
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable("random trees are valid",
		func(seed int64, mass int) {
			tree := particle.RandomSplitTree(random.New(seed), mass)
			Expect(tree.Count).To(Equal(mass))
			Expect(tree.Validate()).To(Succeed())
		},
		Entry("leaf", int64(1), 1),
		Entry("pair", int64(2), 2),
		Entry("small", int64(3), 5),
		Entry("large", int64(4), 99),
	)

	It("ends a random tree with single-mass leaves", func() {
		tree := particle.RandomSplitTree(random.New(7), 2)
		Expect(tree.Parts).To(Equal([]particle.SplitTree{particle.Leaf, particle.Leaf}))
	})
})

var _ = Describe("Particle", func() {
	It("derives mass and charge from its atoms", func() {
		tree := particle.RandomSplitTree(random.New(1), 4)
		p := mustParticle(geom.Vec3{}, geom.Vec3{}, []int{-2, 1, 1, 2}, 1, tree)

		Expect(p.Mass()).To(Equal(4))
		Expect(p.TotalCharge()).To(Equal(2))
		Expect(p.Alive).To(BeTrue())
		Expect(p.Dirty).To(BeTrue())
	})

	It("rejects a tree of the wrong mass", func() {
		_, err := particle.NewParticle(geom.Vec3{}, geom.Vec3{}, []int{1, 1}, 1, particle.Leaf)
		Expect(errors.Is(err, particle.ErrInvalidSplitTree)).To(BeTrue())
	})

	DescribeTable("rejects a tree whose parts do not add up",
		func(tree particle.SplitTree) {
			_, err := particle.NewParticle(geom.Vec3{}, geom.Vec3{}, []int{1, 1, 1}, 1, tree)
			Expect(err).To(MatchError(particle.ErrInvalidSplitTree))
		},
		Entry("short top level", particle.SplitTree{Count: 3, Parts: []particle.SplitTree{particle.Leaf}}),
		Entry("short subtree", particle.SplitTree{Count: 3, Parts: []particle.SplitTree{
			{Count: 2, Parts: []particle.SplitTree{particle.Leaf}},
			particle.Leaf,
		}}),
		Entry("no parts", particle.SplitTree{Count: 3}),
	)

	It("copies its charges", func() {
		charges := []int{1}
		p := mustParticle(geom.Vec3{}, geom.Vec3{}, charges, 1, particle.Leaf)
		charges[0] = 5
		Expect(p.Charges).To(Equal([]int{1}))

		c := p.Clone()
		c.Charges[0] = 2
		Expect(p.Charges).To(Equal([]int{1}))
	})
})

var _ = Describe("Chamber", func() {
	It("pushes a positive charge clockwise in a positive field", func() {
		f := particle.LorentzForce(1, geom.V3(1, 0, 0), particle.Chamber{MagneticField: 2})
		Expect(f.X).To(BeNumerically("~", 0, 1e-12))
		Expect(f.Y).To(BeNumerically("~", -2, 1e-12))
		Expect(f.Z).To(BeNumerically("~", 0, 1e-12))
	})

	It("is a uniform field", func() {
		c := particle.Chamber{MagneticField: 1, Friction: 0.5}
		Expect(c.At(geom.V3(100, -3, 2))).To(Equal(c))
	})
})

var _ = Describe("Simulation", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("moves a neutral particle in a straight line", func() {
		p := mustParticle(geom.Vec3{}, geom.V3(240, 0, 0), []int{1, -1}, 10, particle.RandomSplitTree(random.New(1), 2))
		sim := particle.New(particle.Chamber{MagneticField: 3}, []*particle.Particle{p}, fixedSpawner(1))

		Expect(sim.Step()).To(Succeed())
		Expect(p.Position.X).To(BeNumerically("~", 1, 1e-9))
		Expect(p.Position.Y).To(BeNumerically("~", 0, 1e-9))
		Expect(sim.Elapsed()).To(BeNumerically("~", particle.DefaultTimeStep, 1e-12))
	})

	It("slows particles down by friction", func() {
		p := mustParticle(geom.Vec3{}, geom.V3(100, 0, 0), []int{0}, 10, particle.Leaf)
		sim := particle.New(particle.Chamber{Friction: 0.6}, []*particle.Particle{p}, fixedSpawner(1),
			particle.WithTimeStep(0.5))

		Expect(sim.Step()).To(Succeed())
		Expect(p.Velocity.X).To(BeNumerically("~", 70, 1e-9))
		Expect(p.Position.X).To(BeNumerically("~", 35, 1e-9))
	})

	It("keeps the speed of a charged particle without friction", func() {
		p := mustParticle(geom.Vec3{}, geom.V3(50, 0, 0), []int{1}, 10, particle.Leaf)
		sim := particle.New(particle.Chamber{MagneticField: 1}, []*particle.Particle{p}, fixedSpawner(1),
			particle.WithTimeStep(0.001))

		for range 100 {
			Expect(sim.Step()).To(Succeed())
		}
		Expect(p.Velocity.Y).To(BeNumerically("<", 0))
		Expect(p.Velocity.Norm()).To(BeNumerically("~", 50, 0.1))
	})

	It("decays along the split tree", func() {
		left, err := particle.NewSplitTree(2, particle.Leaf, particle.Leaf)
		Expect(err).NotTo(HaveOccurred())
		tree, err := particle.NewSplitTree(3, left, particle.Leaf)
		Expect(err).NotTo(HaveOccurred())

		p := mustParticle(geom.V3(5, 5, 0), geom.V3(1, 2, 0), []int{1, 2, -1}, 0.1, tree)
		sim := particle.New(particle.Chamber{}, []*particle.Particle{p}, fixedSpawner(0.1),
			particle.WithTimeStep(0.1))

		Expect(sim.Step()).To(Succeed())
		Expect(p.Alive).To(BeFalse())

		parts := sim.Particles()
		Expect(parts).To(HaveLen(3))
		Expect(parts[1].Charges).To(Equal([]int{1, 2}))
		Expect(parts[2].Charges).To(Equal([]int{-1}))
		Expect(parts[1].ID).To(Equal(1))
		Expect(parts[2].ID).To(Equal(2))
		Expect(parts[1].Position).To(Equal(geom.V3(5, 5, 0)))
		Expect(parts[1].Velocity).To(Equal(geom.V3(1, 2, 0)))
	})

	It("adds decay products after the step", func() {
		tree, err := particle.NewSplitTree(2, particle.Leaf, particle.Leaf)
		Expect(err).NotTo(HaveOccurred())
		p := mustParticle(geom.Vec3{}, geom.V3(1, 0, 0), []int{1, 1}, 0.1, tree)

		sim := particle.New(particle.Chamber{}, []*particle.Particle{p}, fixedSpawner(1),
			particle.WithTimeStep(0.1))
		Expect(sim.Step()).To(Succeed())

		for _, child := range sim.Particles()[1:] {
			Expect(child.Lifetime).To(BeZero())
			Expect(child.Alive).To(BeTrue())
		}
	})

	It("runs until every particle has decayed", func() {
		rng := random.New(42)
		tree := particle.RandomSplitTree(rng, 12)
		charges := make([]int, 12)
		for i := range charges {
			charges[i] = 1
		}
		p := mustParticle(geom.V3(100, 100, 0), geom.V3(30, 0, 0), charges, 0.5, tree)

		var observed int
		sim := particle.New(particle.Chamber{MagneticField: 2, Friction: 0.3}, []*particle.Particle{p}, fixedSpawner(0.5),
			particle.WithObserver(particle.ObserverFunc(func(*particle.Simulation) { observed++ })))

		res, err := sim.Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(sim.Alive()).To(BeZero())
		Expect(res.Steps).To(Equal(observed))
		Expect(res.Decays).To(Equal(res.Particles))
		Expect(res.Spawned).To(Equal(res.Particles - 1))
		Expect(res.SimTime).To(BeNumerically("~", float64(res.Steps)*particle.DefaultTimeStep, 1e-9))
		Expect(res.PeakAlive).To(BeNumerically(">=", 2))
	})

	It("honours the time modifier", func() {
		p := mustParticle(geom.Vec3{}, geom.Vec3{}, []int{1}, 1, particle.Leaf)
		sim := particle.New(particle.Chamber{}, []*particle.Particle{p}, fixedSpawner(1),
			particle.WithTimeStep(0.1), particle.WithTimeModifier(2))

		res, err := sim.Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Steps).To(Equal(5))
	})

	It("stops at the step limit", func() {
		p := mustParticle(geom.Vec3{}, geom.Vec3{}, []int{1}, 100, particle.Leaf)
		sim := particle.New(particle.Chamber{}, []*particle.Particle{p}, fixedSpawner(1),
			particle.WithMaxSteps(10))

		res, err := sim.Run(ctx)
		Expect(err).To(MatchError(particle.ErrStepLimit))
		Expect(res.Steps).To(Equal(10))
	})

	It("stops when the context is cancelled", func() {
		p := mustParticle(geom.Vec3{}, geom.Vec3{}, []int{1}, 100, particle.Leaf)
		sim := particle.New(particle.Chamber{}, []*particle.Particle{p}, fixedSpawner(1))

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := sim.Run(cctx)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("wraps spawn failures in a step error", func() {
		tree, err := particle.NewSplitTree(2, particle.Leaf, particle.Leaf)
		Expect(err).NotTo(HaveOccurred())
		p := mustParticle(geom.Vec3{}, geom.Vec3{}, []int{1, 1}, 0.01, tree)

		boom := errors.New("boom")
		spawner := particle.SpawnFunc(func(*particle.Particle, []int, particle.SplitTree) (*particle.Particle, error) {
			return nil, boom
		})
		sim := particle.New(particle.Chamber{}, []*particle.Particle{p}, spawner)

		_, err = sim.Run(ctx)
		var stepErr *particle.StepError
		Expect(errors.As(err, &stepErr)).To(BeTrue())
		Expect(stepErr.Step).To(Equal(2))
		Expect(errors.Is(err, boom)).To(BeTrue())
	})

	It("rejects a non-positive time step", func() {
		p := mustParticle(geom.Vec3{}, geom.Vec3{}, []int{1}, 1, particle.Leaf)
		sim := particle.New(particle.Chamber{}, []*particle.Particle{p}, fixedSpawner(1),
			particle.WithTimeStep(0))
		Expect(sim.Step()).To(MatchError(particle.ErrInvalidTimeStep))
	})

	It("reports diverging particles", func() {
		p := mustParticle(geom.Vec3{}, geom.V3(math.Inf(1), 0, 0), []int{0}, 1, particle.Leaf)
		sim := particle.New(particle.Chamber{}, []*particle.Particle{p}, fixedSpawner(1))
		Expect(errors.Is(sim.Step(), particle.ErrInvalidState)).To(BeTrue())
	})
})
