package draw

import "math"

// matrix maps user space to device space:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type matrix struct {
	a, b, c, d, e, f float64
}

var identity = matrix{a: 1, d: 1}

func (m matrix) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

// applyDistance transforms a vector, ignoring the translation.
func (m matrix) applyDistance(dx, dy float64) (float64, float64) {
	return m.a*dx + m.c*dy, m.b*dx + m.d*dy
}

func (m matrix) invert(x, y float64) (float64, float64) {
	det := m.a*m.d - m.b*m.c
	if det == 0 {
		return x, y
	}
	x -= m.e
	y -= m.f
	return (m.d*x - m.c*y) / det, (-m.b*x + m.a*y) / det
}

func (m matrix) translate(tx, ty float64) matrix {
	m.e += m.a*tx + m.c*ty
	m.f += m.b*tx + m.d*ty
	return m
}

func (m matrix) rotate(angle float64) matrix {
	sin, cos := math.Sincos(angle)
	return matrix{
		a: m.a*cos + m.c*sin,
		b: m.b*cos + m.d*sin,
		c: -m.a*sin + m.c*cos,
		d: -m.b*sin + m.d*cos,
		e: m.e,
		f: m.f,
	}
}

// angle is the rotation part of the matrix.
func (m matrix) angle() float64 {
	return math.Atan2(m.b, m.a)
}
