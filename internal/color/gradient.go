package color

// Pattern is anything a drawing surface can use as its source: a solid
// [Color] or a gradient placed on the canvas.
type Pattern interface {
	isPattern()
}

// Stop is one colour of a placed gradient at Offset in [0, 1].
type Stop struct {
	Offset float64
	Color  Color
}

// LinearGradient spreads its stops evenly from the start to the end point.
type LinearGradient struct {
	Stops []Color
}

// RadialGradient spreads its stops evenly from the inner to the outer circle.
type RadialGradient struct {
	Stops []Color
}

type LinearPattern struct {
	X1, Y1, X2, Y2 float64
	Stops          []Stop
}

type RadialPattern struct {
	CX, CY       float64
	StartR, EndR float64
	Stops        []Stop
}

func (LinearPattern) isPattern() {}
func (RadialPattern) isPattern() {}

func (g LinearGradient) Pattern(x1, y1, x2, y2 float64) LinearPattern {
	return LinearPattern{X1: x1, Y1: y1, X2: x2, Y2: y2, Stops: spread(g.Stops)}
}

// Pattern centres the gradient on (x, y), fading out at radius size. The
// inner circle has radius 1.
func (g RadialGradient) Pattern(x, y, size float64) RadialPattern {
	return RadialPattern{CX: x, CY: y, StartR: 1, EndR: size, Stops: spread(g.Stops)}
}

func spread(colors []Color) []Stop {
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		offset := 0.0
		if len(colors) > 1 {
			offset = float64(i) / float64(len(colors)-1)
		}
		stops[i] = Stop{Offset: offset, Color: c}
	}
	return stops
}
