package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/san-kum/genart/internal/storage"
)

func TestSummary(t *testing.T) {
	meta := &storage.RunMetadata{
		Run:    "wael_20240101T000000_abcd1234",
		Sketch: "wael",
		Seed:   42,
		Width:  500,
		Height: 300,
		File:   "wael_20240101T000000_abcd1234.svg",
		Stats:  map[string]float64{"eyes": 12, "ratio": 0.125},
	}

	out := Summary(meta)
	for _, want := range []string{"wael", "42", "500x300", "eyes", "12", "0.125"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "eyes"), strings.Index(out, "ratio"))
}

func TestPlot(t *testing.T) {
	assert.Empty(t, Plot("nothing", nil))

	out := Plot("alive", []float64{1, 5, 3, 8, 2})
	assert.Contains(t, out, "alive")
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), PlotHeight)

	assert.NotEmpty(t, Plot("single", []float64{4}))
}

func TestDistribution(t *testing.T) {
	in := []float64{2, 9, 4}
	assert.Equal(t, []float64{9, 4, 2}, Distribution(in))
	assert.Equal(t, []float64{2, 9, 4}, in)
}

func TestTable(t *testing.T) {
	assert.Contains(t, Table(nil), "no runs found")

	runs := []storage.RunMetadata{
		{Run: "selene_a", Sketch: "selene", Timestamp: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC), Width: 10, Height: 20, Seed: 3},
		{Run: "wael_b", Sketch: "wael", Width: 30, Height: 40, Seed: 4},
	}
	out := Table(runs)
	assert.Contains(t, out, "2024-05-06 07:08:09")
	assert.Contains(t, out, "30x40")
	assert.Equal(t, 3, len(strings.Split(out, "\n")))
}
