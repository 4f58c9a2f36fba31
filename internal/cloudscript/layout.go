// Package cloudscript writes text with tiny bubble chambers: every letter
// of the text gets a cell with its own magnetic field, and particles drift
// through the grid of cells.
package cloudscript

import (
	"fmt"
	"strings"
)

// Empty marks a cell without a symbol.
const Empty = ""

// Layout is a grid of symbols, one row per text line.
type Layout [][]string

type Padding struct {
	Top, Right, Bottom, Left int
}

// Pad pads every side with n empty cells.
func Pad(n int) Padding {
	return Padding{Top: n, Right: n, Bottom: n, Left: n}
}

// ParsePadding accepts one value for every side or four values in
// top, right, bottom, left order.
func ParsePadding(vs []int) (Padding, error) {
	switch len(vs) {
	case 0:
		return Padding{}, nil
	case 1:
		return Pad(vs[0]), nil
	case 4:
		return Padding{Top: vs[0], Right: vs[1], Bottom: vs[2], Left: vs[3]}, nil
	}
	return Padding{}, fmt.Errorf("padding needs 1 or 4 values, got %d", len(vs))
}

// LayoutText puts every character of text in its own cell. Spaces become
// empty cells and short lines are filled up to the longest one.
func LayoutText(text string, pad Padding) Layout {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	longest := 0
	runes := make([][]rune, len(lines))
	for i, line := range lines {
		runes[i] = []rune(strings.TrimSuffix(line, "\r"))
		longest = max(longest, len(runes[i]))
	}
	width := pad.Left + longest + pad.Right

	var res Layout
	for range pad.Top {
		res = append(res, emptyRow(width))
	}

	for _, line := range runes {
		row := emptyRow(width)
		for j, r := range line {
			if r != ' ' {
				row[pad.Left+j] = string(r)
			}
		}
		res = append(res, row)
	}

	for range pad.Bottom {
		res = append(res, emptyRow(width))
	}
	return res
}

func emptyRow(n int) []string {
	return make([]string, n)
}

func (l Layout) Rows() int { return len(l) }

func (l Layout) Columns() int {
	if len(l) == 0 {
		return 0
	}
	return len(l[0])
}

func (l Layout) String() string {
	var sb strings.Builder
	for _, row := range l {
		for _, cell := range row {
			if cell == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(cell)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
