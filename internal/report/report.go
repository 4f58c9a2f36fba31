// Package report formats render results for the terminal.
package report

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/genart/internal/storage"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ccff")).
		Bold(true)

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Failed = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff4444"))

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)
)

const (
	PlotWidth  = 70
	PlotHeight = 10
)

// Summary describes one saved run with its stats in key order.
func Summary(meta *storage.RunMetadata) string {
	var sb strings.Builder
	sb.WriteString(Title.Render(meta.Sketch))
	sb.WriteString(" ")
	sb.WriteString(Subtle.Render(meta.Run))
	sb.WriteString("\n")

	line := func(k, v string) {
		fmt.Fprintf(&sb, "%s %s\n", Label.Render(fmt.Sprintf("%-12s", k)), Value.Render(v))
	}
	line("file", meta.File)
	line("seed", fmt.Sprint(meta.Seed))
	line("size", fmt.Sprintf("%dx%d", meta.Width, meta.Height))

	for _, k := range slices.Sorted(maps.Keys(meta.Stats)) {
		line(k, formatValue(meta.Stats[k]))
	}
	return Panel.Render(strings.TrimRight(sb.String(), "\n"))
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.4g", v)
}

// Plot draws a series as an ASCII line chart. An empty series yields "".
func Plot(caption string, series []float64) string {
	if len(series) == 0 {
		return ""
	}
	if len(series) == 1 {
		series = []float64{series[0], series[0]}
	}
	return asciigraph.Plot(series,
		asciigraph.Height(PlotHeight),
		asciigraph.Width(PlotWidth),
		asciigraph.Caption(caption),
	)
}

// Distribution sorts a copy of values from largest to smallest, so that a
// plot of it reads as a rank-size curve.
func Distribution(values []float64) []float64 {
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, func(a, b float64) int { return cmp.Compare(b, a) })
	return sorted
}

// Table lists runs one per line.
func Table(runs []storage.RunMetadata) string {
	if len(runs) == 0 {
		return Subtle.Render("no runs found")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", Title.Render(fmt.Sprintf("%-44s %-14s %-19s %-10s %s", "RUN", "SKETCH", "TIME", "SIZE", "SEED")))
	for _, r := range runs {
		fmt.Fprintf(&sb, "%-44s %-14s %-19s %-10s %d\n",
			r.Run,
			r.Sketch,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Seed,
		)
	}
	return strings.TrimRight(sb.String(), "\n")
}
