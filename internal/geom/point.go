package geom

import "math"

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(o Point) Point      { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point      { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Scale(f float64) Point  { return Point{p.X * f, p.Y * f} }
func (p Point) Dot(o Point) float64    { return p.X*o.X + p.Y*o.Y }
func (p Point) Norm() float64          { return math.Hypot(p.X, p.Y) }
func (p Point) XY() (float64, float64) { return p.X, p.Y }

// Rotate turns p around the origin by angle.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

func Distance(p1, p2 Point) float64 {
	return p1.Sub(p2).Norm()
}

// Slope of the line through p1 and p2. Vertical lines give ±Inf.
func Slope(p1, p2 Point) float64 {
	return (p2.Y - p1.Y) / (p2.X - p1.X)
}

// Angle of the vector from p1 to p2.
func Angle(p1, p2 Point) float64 {
	return math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
}

// UnitVector returns the normalised direction from p2 to p1.
func UnitVector(p1, p2 Point) Point {
	diff := p1.Sub(p2)
	n := diff.Norm()
	if n == 0 {
		return Point{}
	}
	return diff.Scale(1 / n)
}

// ProjectedPointOnLine projects p onto the infinite line through start and end.
func ProjectedPointOnLine(start, end, p Point) Point {
	line := end.Sub(start)
	lineLen := line.Norm()
	if lineLen == 0 {
		return start
	}
	proj := p.Sub(start).Dot(line) / lineLen
	return start.Add(line.Scale(proj / lineLen))
}

// PointsAlongArc returns steps points on the circle around (cx, cy), starting
// at startAt and spaced (endAt-startAt)/steps apart. The end angle itself is
// not included, so a full turn yields no duplicate point.
func PointsAlongArc(cx, cy, radius, startAt, endAt float64, steps int) []Point {
	if steps <= 0 {
		return nil
	}
	perStep := (endAt - startAt) / float64(steps)
	points := make([]Point, steps)
	for i := range points {
		sin, cos := math.Sincos(startAt + float64(i)*perStep)
		points[i] = Point{X: cx + cos*radius, Y: cy + sin*radius}
	}
	return points
}

// CircleFrom3Points returns the circle passing through all three points.
// ok is false when the points are collinear.
func CircleFrom3Points(p1, p2, p3 Point) (center Point, radius float64, ok bool) {
	// http://paulbourke.net/geometry/circlesphere/, written with the
	// determinant form so vertical chords need no special case.
	d := 2 * (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y))
	if math.Abs(d) < 1e-12 {
		return Point{}, 0, false
	}

	s1 := p1.X*p1.X + p1.Y*p1.Y
	s2 := p2.X*p2.X + p2.Y*p2.Y
	s3 := p3.X*p3.X + p3.Y*p3.Y

	center = Point{
		X: (s1*(p2.Y-p3.Y) + s2*(p3.Y-p1.Y) + s3*(p1.Y-p2.Y)) / d,
		Y: (s1*(p3.X-p2.X) + s2*(p1.X-p3.X) + s3*(p2.X-p1.X)) / d,
	}
	return center, Distance(p1, center), true
}
