package particle

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	DefaultTimeStep = 1.0 / 240
	DefaultMaxSteps = 1 << 20
)

// Observer is notified after every completed step.
type Observer interface {
	OnStep(s *Simulation)
}

type ObserverFunc func(s *Simulation)

func (f ObserverFunc) OnStep(s *Simulation) { f(s) }

type Option func(*Simulation)

// WithTimeStep sets the simulated seconds per step.
func WithTimeStep(dt float64) Option {
	return func(s *Simulation) { s.timeStep = dt }
}

// WithTimeModifier scales the time step, speeding up or slowing down the
// simulation without changing the step count per simulated second.
func WithTimeModifier(m float64) Option {
	return func(s *Simulation) { s.timeModifier = m }
}

// WithMaxSteps bounds Run. Zero or less disables the bound.
func WithMaxSteps(n int) Option {
	return func(s *Simulation) { s.maxSteps = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

func WithObserver(o Observer) Option {
	return func(s *Simulation) { s.observers = append(s.observers, o) }
}

type Simulation struct {
	field     Field
	spawner   Spawner
	particles []*Particle
	pending   []*Particle

	timeStep     float64
	timeModifier float64
	maxSteps     int

	elapsed float64
	steps   int
	nextID  int
	spawned int
	decays  int

	observers []Observer
	logger    *zap.Logger
}

// Result summarises a finished run.
type Result struct {
	Steps     int
	SimTime   float64
	Spawned   int
	Decays    int
	Particles int
	PeakAlive int
}

// New sets up a simulation of particles in field. Particles get sequential
// IDs in the order given; decay products get IDs after them.
func New(field Field, particles []*Particle, spawner Spawner, opts ...Option) *Simulation {
	s := &Simulation{
		field:        field,
		spawner:      spawner,
		particles:    make([]*Particle, 0, len(particles)),
		timeStep:     DefaultTimeStep,
		timeModifier: 1,
		maxSteps:     DefaultMaxSteps,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, p := range particles {
		p.ID = s.nextID
		s.nextID++
		s.particles = append(s.particles, p)
	}

	return s
}

func (s *Simulation) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Particles returns every particle seen so far, dead ones included.
func (s *Simulation) Particles() []*Particle { return s.particles }

// Elapsed is the simulated time in seconds.
func (s *Simulation) Elapsed() float64 { return s.elapsed }

func (s *Simulation) Steps() int { return s.steps }

// Dt is the effective time step.
func (s *Simulation) Dt() float64 { return s.timeStep * s.timeModifier }

func (s *Simulation) Alive() int {
	n := 0
	for _, p := range s.particles {
		if p.Alive {
			n++
		}
	}
	return n
}

// Dirty reports whether any particle still needs rendering.
func (s *Simulation) Dirty() bool {
	for _, p := range s.particles {
		if p.Dirty {
			return true
		}
	}
	return false
}

// Step advances the simulation by one time step. Decay products join the
// population after every existing particle has been updated.
func (s *Simulation) Step() error {
	dt := s.Dt()
	if dt <= 0 {
		return ErrInvalidTimeStep
	}

	s.elapsed += dt
	for _, p := range s.particles {
		if !p.Alive {
			continue
		}
		if err := s.update(p, dt); err != nil {
			return &StepError{Step: s.steps, Time: s.elapsed, Err: err}
		}
	}

	if len(s.pending) > 0 {
		s.particles = append(s.particles, s.pending...)
		s.pending = s.pending[:0]
	}
	s.steps++

	for _, o := range s.observers {
		o.OnStep(s)
	}
	return nil
}

func (s *Simulation) update(p *Particle, dt float64) error {
	p.Lifetime += dt
	if p.Lifetime >= p.DecaysAfter {
		p.Alive = false
		s.decays++
		if p.Mass() > 1 {
			return s.split(p)
		}
		return nil
	}

	c := s.field.At(p.Position)
	force := LorentzForce(p.TotalCharge(), p.Velocity, c)

	accel := force.Scale(1 / float64(p.Mass()))
	p.Velocity = p.Velocity.Add(accel.Scale(dt))
	p.Velocity = p.Velocity.Scale(1 - c.Friction*dt)
	p.Position = p.Position.Add(p.Velocity.Scale(dt))

	if !p.Position.IsValid() || !p.Velocity.IsValid() {
		return fmt.Errorf("%v: %w", p, ErrInvalidState)
	}
	return nil
}

func (s *Simulation) split(p *Particle) error {
	if len(p.Tree.Parts) == 0 {
		return fmt.Errorf("%v: %w: no parts for mass %d", p, ErrInvalidSplitTree, p.Mass())
	}

	i := 0
	for _, part := range p.Tree.Parts {
		if i+part.Count > len(p.Charges) {
			return fmt.Errorf("%v: %w", p, ErrInvalidSplitTree)
		}
		charges := p.Charges[i : i+part.Count]
		i += part.Count

		child, err := s.spawner.Spawn(p, charges, part)
		if err != nil {
			return fmt.Errorf("spawn from %v: %w", p, err)
		}
		child.ID = s.nextID
		s.nextID++
		s.spawned++
		s.pending = append(s.pending, child)
	}
	return nil
}

// Run steps until no particle is alive. It stops early on context
// cancellation or when the step limit is hit, returning the partial result
// with the error.
func (s *Simulation) Run(ctx context.Context) (*Result, error) {
	s.logger.Debug("simulation started",
		zap.Int("particles", len(s.particles)),
		zap.Float64("dt", s.Dt()),
	)

	res := &Result{PeakAlive: s.Alive()}
	for s.Alive() > 0 {
		select {
		case <-ctx.Done():
			return s.result(res), ctx.Err()
		default:
		}

		if s.maxSteps > 0 && s.steps >= s.maxSteps {
			return s.result(res), fmt.Errorf("%w: %d steps, %d alive", ErrStepLimit, s.steps, s.Alive())
		}

		if err := s.Step(); err != nil {
			return s.result(res), err
		}
		res.PeakAlive = max(res.PeakAlive, s.Alive())
	}

	s.result(res)
	s.logger.Debug("simulation finished",
		zap.Int("steps", res.Steps),
		zap.Float64("sim_time", res.SimTime),
		zap.Int("spawned", res.Spawned),
		zap.Int("decays", res.Decays),
	)
	return res, nil
}

func (s *Simulation) result(res *Result) *Result {
	res.Steps = s.steps
	res.SimTime = s.elapsed
	res.Spawned = s.spawned
	res.Decays = s.decays
	res.Particles = len(s.particles)
	return res
}
