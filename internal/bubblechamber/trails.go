package bubblechamber

import (
	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/particle"
)

const DefaultFPS = 120

// Trail is the recorded path of one charged particle.
type Trail struct {
	ID     int
	Mass   int
	Charge int
	Points []geom.Point
}

// Recorder samples particle positions at a fixed frame rate of simulated
// time. Neutral particles leave no trail. Add it to a simulation as an
// observer.
type Recorder struct {
	frameTime float64
	lastFrame float64

	trails map[int]*Trail
	order  []int
}

func NewRecorder(fps float64) *Recorder {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Recorder{
		frameTime: 1 / fps,
		trails:    make(map[int]*Trail),
	}
}

func (r *Recorder) OnStep(sim *particle.Simulation) {
	if sim.Elapsed()-r.lastFrame < r.frameTime {
		return
	}
	r.lastFrame = sim.Elapsed()
	r.sample(sim)
}

// Flush records the final position of particles that died since the last
// frame.
func (r *Recorder) Flush(sim *particle.Simulation) {
	for _, p := range sim.Particles() {
		if !p.Alive && p.Dirty {
			p.Dirty = false
			r.record(p)
		}
	}
}

func (r *Recorder) sample(sim *particle.Simulation) {
	for _, p := range sim.Particles() {
		switch {
		case p.Alive:
			r.record(p)
		case p.Dirty:
			p.Dirty = false
			r.record(p)
		}
	}
}

func (r *Recorder) record(p *particle.Particle) {
	charge := p.TotalCharge()
	if charge == 0 {
		return
	}

	t, ok := r.trails[p.ID]
	if !ok {
		t = &Trail{ID: p.ID}
		r.trails[p.ID] = t
		r.order = append(r.order, p.ID)
	}
	t.Mass = p.Mass()
	t.Charge = charge
	t.Points = append(t.Points, p.Position.XY())
}

// Trails returns the trails in the order their particles were first seen.
func (r *Recorder) Trails() []*Trail {
	res := make([]*Trail, 0, len(r.order))
	for _, id := range r.order {
		res = append(res, r.trails[id])
	}
	return res
}

// Points is the total number of recorded points.
func (r *Recorder) Points() int {
	n := 0
	for _, t := range r.trails {
		n += len(t.Points)
	}
	return n
}
