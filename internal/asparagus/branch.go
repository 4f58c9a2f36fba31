// Package asparagus grows fern-like plants out of recursively branching
// line segments, after the self-similar growth of Asparagus plumosus.
package asparagus

import (
	"github.com/san-kum/genart/internal/draw"
	"github.com/san-kum/genart/internal/geom"
)

type Branch struct {
	Start, End geom.Point
	Children   []*Branch
}

func NewBranch(start, end geom.Point) *Branch {
	return &Branch{Start: start, End: end}
}

func (b *Branch) Length() float64 {
	return geom.Distance(b.Start, b.End)
}

// WalkAlong returns the points from Start toward End every step, starting
// at Start itself and stopping once the next offset would pass End.
func (b *Branch) WalkAlong(step float64) []geom.Point {
	length := b.Length()
	if length == 0 || step <= 0 {
		return []geom.Point{b.Start}
	}

	dir := b.End.Sub(b.Start).Scale(1 / length)
	var pts []geom.Point
	for i := 0; ; i++ {
		offset := float64(i) * step
		if offset > length {
			break
		}
		pts = append(pts, b.Start.Add(dir.Scale(offset)))
	}
	return pts
}

// BranchAt starts a child at the given point, turned by angle from this
// branch's direction. Positive angles branch to the left.
func (b *Branch) BranchAt(at geom.Point, length, angle float64) *Branch {
	dir := geom.UnitVector(b.End, b.Start).Rotate(angle)
	return NewBranch(at, at.Add(dir.Scale(length)))
}

// Count is the number of branches in the tree rooted at b.
func (b *Branch) Count() int {
	n := 1
	for _, c := range b.Children {
		n += c.Count()
	}
	return n
}

// Draw strokes the branch and all of its descendants.
func (b *Branch) Draw(s draw.Surface) {
	s.MoveTo(b.Start.X, b.Start.Y)
	s.LineTo(b.End.X, b.End.Y)
	s.Stroke()

	for _, c := range b.Children {
		c.Draw(s)
	}
}
