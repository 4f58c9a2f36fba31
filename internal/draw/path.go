package draw

import (
	"math"
	"strconv"
	"strings"
)

// path accumulates SVG path data in device coordinates.
type path struct {
	d          strings.Builder
	hasCurrent bool
	cx, cy     float64
	sx, sy     float64

	empty                  bool
	minX, minY, maxX, maxY float64
}

func newPath() *path {
	return &path{empty: true}
}

func (p *path) len() int { return p.d.Len() }

func (p *path) String() string { return strings.TrimSpace(p.d.String()) }

func (p *path) cmd(op byte, coords ...float64) {
	p.d.WriteByte(op)
	for i, c := range coords {
		if i > 0 {
			p.d.WriteByte(' ')
		}
		p.d.WriteString(num(c))
	}
	p.d.WriteByte(' ')
}

func (p *path) extend(x, y float64) {
	if p.empty {
		p.minX, p.maxX, p.minY, p.maxY = x, x, y, y
		p.empty = false
		return
	}
	p.minX = math.Min(p.minX, x)
	p.maxX = math.Max(p.maxX, x)
	p.minY = math.Min(p.minY, y)
	p.maxY = math.Max(p.maxY, y)
}

func (p *path) moveTo(x, y float64) {
	p.cmd('M', x, y)
	p.extend(x, y)
	p.cx, p.cy = x, y
	p.sx, p.sy = x, y
	p.hasCurrent = true
}

func (p *path) lineTo(x, y float64) {
	if !p.hasCurrent {
		p.moveTo(x, y)
		return
	}
	p.cmd('L', x, y)
	p.extend(x, y)
	p.cx, p.cy = x, y
}

func (p *path) curveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !p.hasCurrent {
		p.moveTo(x1, y1)
	}
	p.cmd('C', x1, y1, x2, y2, x3, y3)
	// Control points bound the curve, which is enough for extents.
	p.extend(x1, y1)
	p.extend(x2, y2)
	p.extend(x3, y3)
	p.cx, p.cy = x3, y3
}

// arc appends a circular arc in device space, from angle a1 sweeping by
// sweep radians (negative sweeps run backwards). The arc is split in pieces
// of at most half a turn so the SVG large-arc flag is never needed.
func (p *path) arc(xc, yc, r, a1, sweep float64) {
	sin, cos := math.Sincos(a1)
	startX, startY := xc+r*cos, yc+r*sin
	p.lineTo(startX, startY)

	if sweep == 0 || r == 0 {
		return
	}

	flag := 1.0
	if sweep < 0 {
		flag = 0
	}
	pieces := int(math.Ceil(math.Abs(sweep) / math.Pi))
	step := sweep / float64(pieces)

	for i := 1; i <= pieces; i++ {
		end := a1 + float64(i)*step
		sin, cos := math.Sincos(end)
		x, y := xc+r*cos, yc+r*sin
		p.cmd('A', r, r, 0, 0, flag, x, y)

		for k := 1; k <= 8; k++ {
			sin, cos := math.Sincos(a1 + (float64(i-1)+float64(k)/8)*step)
			p.extend(xc+r*cos, yc+r*sin)
		}
		p.cx, p.cy = x, y
	}
}

func (p *path) closePath() {
	if !p.hasCurrent {
		return
	}
	p.d.WriteString("Z ")
	p.cx, p.cy = p.sx, p.sy
}

func num(v float64) string {
	if math.Abs(v) < 5e-4 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
