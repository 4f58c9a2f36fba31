package particle

import "github.com/san-kum/genart/internal/geom"

// Chamber is a region with a magnetic field along the z axis and a
// friction coefficient.
type Chamber struct {
	MagneticField float64
	Friction      float64
}

func (c Chamber) Magnet() geom.Vec3 {
	return geom.Vec3{Z: c.MagneticField}
}

// At makes a single chamber a uniform [Field].
func (c Chamber) At(geom.Vec3) Chamber { return c }

// Field maps a position to the chamber a particle there is in.
type Field interface {
	At(pos geom.Vec3) Chamber
}

// LorentzForce is the magnetic part of the Lorentz force, q * (v x B).
func LorentzForce(charge int, velocity geom.Vec3, c Chamber) geom.Vec3 {
	return velocity.Cross(c.Magnet()).Scale(float64(charge))
}
