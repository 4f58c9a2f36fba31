package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	svg "github.com/ajstarks/svgo"

	"github.com/san-kum/genart/internal/color"
)

const (
	defaultLineWidth = 2.0
	defaultFont      = "sans-serif"
	defaultFontSize  = 10.0

	// Text metrics are estimated, there is no font shaping.
	glyphWidth  = 0.6
	glyphHeight = 0.7
)

type state struct {
	m         matrix
	source    color.Pattern
	sourceID  string
	lineWidth float64
	cap       LineCap
	join      LineJoin
	fillRule  FillRule
	clips     []string
	font      string
	fontSize  float64
}

func (st state) clone() state {
	st.clips = append([]string(nil), st.clips...)
	return st
}

// SVGSurface renders a [Surface] into an SVG document.
type SVGSurface struct {
	canvas *svg.SVG
	out    *errWriter

	width, height float64

	st    state
	stack []state
	path  *path

	openClips []string
	nextID    int
	finished  bool
}

var _ Surface = (*SVGSurface)(nil)

// NewSVG starts an SVG document of the given size on w. Call Finish to
// close it.
func NewSVG(w io.Writer, width, height int) *SVGSurface {
	out := &errWriter{w: w}
	canvas := svg.New(out)
	canvas.Start(width, height)

	return &SVGSurface{
		canvas: canvas,
		out:    out,
		width:  float64(width),
		height: float64(height),
		st: state{
			m:         identity,
			source:    color.Black,
			lineWidth: defaultLineWidth,
			font:      defaultFont,
			fontSize:  defaultFontSize,
		},
		path: newPath(),
	}
}

func (s *SVGSurface) Width() float64  { return s.width }
func (s *SVGSurface) Height() float64 { return s.height }

// Finish closes every open group and the document. It reports the first
// write error seen while rendering.
func (s *SVGSurface) Finish() error {
	if s.finished {
		return s.out.err
	}
	s.finished = true
	s.syncClips(nil)
	s.canvas.End()
	return s.out.err
}

func (s *SVGSurface) Save() {
	s.stack = append(s.stack, s.st.clone())
}

func (s *SVGSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.st = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *SVGSurface) Translate(dx, dy float64) { s.st.m = s.st.m.translate(dx, dy) }
func (s *SVGSurface) Rotate(angle float64)     { s.st.m = s.st.m.rotate(angle) }

// SetSource locks the pattern to the current transform, like the path does.
func (s *SVGSurface) SetSource(p color.Pattern) {
	s.st.sourceID = ""
	switch pat := p.(type) {
	case color.LinearPattern:
		pat.X1, pat.Y1 = s.st.m.apply(pat.X1, pat.Y1)
		pat.X2, pat.Y2 = s.st.m.apply(pat.X2, pat.Y2)
		s.st.source = pat
	case color.RadialPattern:
		pat.CX, pat.CY = s.st.m.apply(pat.CX, pat.CY)
		s.st.source = pat
	case nil:
		s.st.source = color.Black
	default:
		s.st.source = p
	}
}

func (s *SVGSurface) Source() color.Pattern { return s.st.source }

func (s *SVGSurface) SetLineWidth(w float64) { s.st.lineWidth = w }
func (s *SVGSurface) SetLineCap(c LineCap)   { s.st.cap = c }
func (s *SVGSurface) SetLineJoin(j LineJoin) { s.st.join = j }
func (s *SVGSurface) SetFillRule(r FillRule) { s.st.fillRule = r }

func (s *SVGSurface) MoveTo(x, y float64) {
	s.path.moveTo(s.st.m.apply(x, y))
}

func (s *SVGSurface) LineTo(x, y float64) {
	s.path.lineTo(s.st.m.apply(x, y))
}

func (s *SVGSurface) RelLineTo(dx, dy float64) {
	ddx, ddy := s.st.m.applyDistance(dx, dy)
	s.path.lineTo(s.path.cx+ddx, s.path.cy+ddy)
}

func (s *SVGSurface) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	dx1, dy1 := s.st.m.apply(x1, y1)
	dx2, dy2 := s.st.m.apply(x2, y2)
	dx3, dy3 := s.st.m.apply(x3, y3)
	s.path.curveTo(dx1, dy1, dx2, dy2, dx3, dy3)
}

// Arc adds a clockwise (in device space, y down) arc from angle1 to angle2.
// If there is a current point a line joins it to the start of the arc.
func (s *SVGSurface) Arc(xc, yc, radius, angle1, angle2 float64) {
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}
	cx, cy := s.st.m.apply(xc, yc)
	s.path.arc(cx, cy, radius, angle1+s.st.m.angle(), angle2-angle1)
}

func (s *SVGSurface) ArcNegative(xc, yc, radius, angle1, angle2 float64) {
	for angle2 > angle1 {
		angle2 -= 2 * math.Pi
	}
	cx, cy := s.st.m.apply(xc, yc)
	s.path.arc(cx, cy, radius, angle1+s.st.m.angle(), angle2-angle1)
}

func (s *SVGSurface) ClosePath() { s.path.closePath() }
func (s *SVGSurface) NewPath()   { s.path = newPath() }

// FillExtents returns the user-space bounding box of the current path.
func (s *SVGSurface) FillExtents() (x1, y1, x2, y2 float64) {
	p := s.path
	if p.empty {
		return 0, 0, 0, 0
	}

	x1, y1 = math.Inf(1), math.Inf(1)
	x2, y2 = math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{
		{p.minX, p.minY}, {p.maxX, p.minY}, {p.minX, p.maxY}, {p.maxX, p.maxY},
	} {
		ux, uy := s.st.m.invert(c[0], c[1])
		x1, y1 = math.Min(x1, ux), math.Min(y1, uy)
		x2, y2 = math.Max(x2, ux), math.Max(y2, uy)
	}
	return x1, y1, x2, y2
}

func (s *SVGSurface) Stroke() {
	s.StrokePreserve()
	s.NewPath()
}

func (s *SVGSurface) StrokePreserve() {
	if s.path.len() == 0 {
		return
	}
	s.syncClips(s.st.clips)
	paint, opacity := s.paint()
	s.canvas.Path(s.path.String(), fmt.Sprintf(
		"fill:none;stroke:%s;stroke-opacity:%s;stroke-width:%s;stroke-linecap:%s;stroke-linejoin:%s",
		paint, num(opacity), num(s.st.lineWidth), capName(s.st.cap), joinName(s.st.join),
	))
}

func (s *SVGSurface) Fill() {
	s.FillPreserve()
	s.NewPath()
}

func (s *SVGSurface) FillPreserve() {
	if s.path.len() == 0 {
		return
	}
	s.syncClips(s.st.clips)
	paint, opacity := s.paint()
	s.canvas.Path(s.path.String(), fmt.Sprintf(
		"fill:%s;fill-opacity:%s;fill-rule:%s;stroke:none", paint, num(opacity), ruleName(s.st.fillRule),
	))
}

// Paint covers the whole canvas, limited by the current clip.
func (s *SVGSurface) Paint() {
	s.syncClips(s.st.clips)
	paint, opacity := s.paint()
	d := fmt.Sprintf("M0 0 H%s V%s H0 Z", num(s.width), num(s.height))
	s.canvas.Path(d, fmt.Sprintf("fill:%s;fill-opacity:%s;stroke:none", paint, num(opacity)))
}

func (s *SVGSurface) Clip() {
	s.ClipPreserve()
	s.NewPath()
}

// ClipPreserve intersects the clip region with the current path.
func (s *SVGSurface) ClipPreserve() {
	id := s.id("clip")

	s.syncClips(s.st.clips)
	s.canvas.ClipPath(fmt.Sprintf(`id="%s"`, id))
	if s.path.len() == 0 {
		s.canvas.Path("M0 0")
	} else {
		s.canvas.Path(s.path.String(), fmt.Sprintf(`clip-rule="%s"`, ruleName(s.st.fillRule)))
	}
	s.canvas.ClipEnd()

	s.st.clips = append(s.st.clips, id)
}

func (s *SVGSurface) ResetClip() {
	s.st.clips = nil
}

func (s *SVGSurface) SelectFont(family string) { s.st.font = family }
func (s *SVGSurface) SetFontSize(size float64) { s.st.fontSize = size }

// ShowText draws text with its baseline starting at the current point and
// advances the current point past it.
func (s *SVGSurface) ShowText(text string) {
	if text == "" {
		return
	}
	s.syncClips(s.st.clips)

	paint, opacity := s.paint()
	x, y := s.path.cx, s.path.cy
	deg := s.st.m.angle() * 180 / math.Pi
	s.canvas.Text(0, 0, text,
		fmt.Sprintf(`transform="translate(%s %s) rotate(%s)"`, num(x), num(y), num(deg)),
		fmt.Sprintf("font-family:%s;font-size:%s;fill:%s;fill-opacity:%s", s.st.font, num(s.st.fontSize), paint, num(opacity)),
	)

	w, _ := s.TextExtents(text)
	dx, dy := s.st.m.applyDistance(w, 0)
	s.path.cx, s.path.cy = x+dx, y+dy
	s.path.hasCurrent = true
}

func (s *SVGSurface) TextExtents(text string) (width, height float64) {
	n := float64(utf8.RuneCountInString(text))
	return glyphWidth * s.st.fontSize * n, glyphHeight * s.st.fontSize
}

// paint returns the CSS paint and opacity for the current source, writing a
// gradient definition the first time a gradient source is used.
func (s *SVGSurface) paint() (string, float64) {
	switch pat := s.st.source.(type) {
	case color.Color:
		return pat.Hex(), pat.Opacity()
	case color.LinearPattern, color.RadialPattern:
		if s.st.sourceID == "" {
			s.st.sourceID = s.writeGradient(pat)
		}
		return fmt.Sprintf("url(#%s)", s.st.sourceID), 1
	}
	return "#000000", 1
}

func (s *SVGSurface) writeGradient(p color.Pattern) string {
	id := s.id("grad")
	var sb strings.Builder

	switch pat := p.(type) {
	case color.LinearPattern:
		fmt.Fprintf(&sb, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`,
			id, num(pat.X1), num(pat.Y1), num(pat.X2), num(pat.Y2))
		writeStops(&sb, pat.Stops, func(o float64) float64 { return o })
		sb.WriteString("</linearGradient>\n")
	case color.RadialPattern:
		fmt.Fprintf(&sb, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s">`,
			id, num(pat.CX), num(pat.CY), num(pat.EndR))
		// SVG 1.1 has no inner radius; fold it into the stop offsets.
		writeStops(&sb, pat.Stops, func(o float64) float64 {
			if pat.EndR <= 0 {
				return o
			}
			return (pat.StartR + o*(pat.EndR-pat.StartR)) / pat.EndR
		})
		sb.WriteString("</radialGradient>\n")
	}

	s.canvas.Def()
	io.WriteString(s.out, sb.String())
	s.canvas.DefEnd()
	return id
}

func writeStops(sb *strings.Builder, stops []color.Stop, offset func(float64) float64) {
	for _, st := range stops {
		fmt.Fprintf(sb, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`,
			num(math.Max(0, math.Min(1, offset(st.Offset)))), st.Color.Hex(), num(st.Color.Opacity()))
	}
}

// syncClips makes the open clip groups match target, closing groups that
// are no longer wanted and opening the missing ones.
func (s *SVGSurface) syncClips(target []string) {
	common := 0
	for common < len(s.openClips) && common < len(target) && s.openClips[common] == target[common] {
		common++
	}
	for len(s.openClips) > common {
		s.canvas.Gend()
		s.openClips = s.openClips[:len(s.openClips)-1]
	}
	for _, id := range target[common:] {
		s.canvas.Group(fmt.Sprintf(`clip-path="url(#%s)"`, id))
		s.openClips = append(s.openClips, id)
	}
}

func (s *SVGSurface) id(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s%d", prefix, s.nextID)
}

func capName(c LineCap) string {
	switch c {
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	}
	return "butt"
}

func joinName(j LineJoin) string {
	switch j {
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	}
	return "miter"
}

func ruleName(r FillRule) string {
	if r == FillEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, nil
}
