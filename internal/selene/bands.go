// Package selene draws radial calendars into packed circles: "O Chaire
// Selene". Every circle is filled from the outside in with concentric bands
// and finished with a core.
package selene

import (
	"math"

	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/draw"
	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/numbering"
	"github.com/san-kum/genart/internal/random"
)

// BandFunc draws a ring around c between the inner and outer radius.
type BandFunc func(s draw.Surface, rng *random.Rand, c geom.Point, outer, inner float64)

type Band struct {
	Name string
	Draw BandFunc
}

var Bands = []Band{
	{"moon_cycles", DrawMoonCycles},
	{"tangents", DrawTangents},
	{"roman", DrawRoman},
	{"planets", DrawPlanets},
	{"zodiac", DrawZodiac},
	{"alchemical", DrawAlchemical},
	{"hexagrams", DrawHexagrams},
	{"stars", DrawStarBand},
}

const (
	symbolFont  = "Noto Sans Symbols"
	symbolFont2 = "Noto Sans Symbols2"
)

var moonColor = color.RGB(0.9, 0.9, 0.9)

// DrawMoonCycles puts 6..11 moons along the band, waxing from new to full
// and waning again.
func DrawMoonCycles(s draw.Surface, rng *random.Rand, c geom.Point, outer, inner float64) {
	n := rng.IntRange(6, 12)
	radius := (outer - inner) / 2.3

	for i, p := range geom.PointsAlongArc(c.X, c.Y, (outer+inner)/2, 0, 2*math.Pi, n) {
		eclipse := 2*float64(i)/float64(n) - 1
		DrawMoon(s, p, radius, eclipse)
	}
}

// DrawMoon paints a moon shadowed by a black disc shifted by eclipse
// diameters: -1 and 1 leave it full, 0 hides it.
func DrawMoon(s draw.Surface, pos geom.Point, radius, eclipse float64) {
	s.Save()
	defer s.Restore()

	s.SetSource(moonColor)
	s.Arc(pos.X, pos.Y, radius, 0, 2*math.Pi)
	s.FillPreserve()
	s.Clip()

	s.SetSource(color.Black)
	s.Arc(pos.X+eclipse*2*radius, pos.Y, radius, 0, 2*math.Pi)
	s.Fill()
}

// DrawTangents draws, from evenly spaced points of the outer circle, the two
// tangents to the inner circle.
func DrawTangents(s draw.Surface, rng *random.Rand, c geom.Point, outer, inner float64) {
	n := random.Pick(rng, []int{12, 24, 36, 48, 60})
	if outer <= 0 {
		return
	}
	toTangent := math.Acos(inner / outer)

	for _, p := range geom.PointsAlongArc(c.X, c.Y, outer, 0, 2*math.Pi, n) {
		toPoint := geom.Angle(c, p)
		for _, a := range []float64{toPoint + toTangent, toPoint - toTangent} {
			s.MoveTo(p.X, p.Y)
			s.LineTo(c.X+inner*math.Cos(a), c.Y+inner*math.Sin(a))
			s.Stroke()
		}
	}
}

// calendarBase strokes both rings and the spokes between them.
func calendarBase(s draw.Surface, c geom.Point, outer, inner float64, chunks int) {
	s.Arc(c.X, c.Y, outer, 0, 2*math.Pi)
	s.Stroke()
	s.Arc(c.X, c.Y, inner, 0, 2*math.Pi)
	s.Stroke()

	from := geom.PointsAlongArc(c.X, c.Y, inner, 0, 2*math.Pi, chunks)
	to := geom.PointsAlongArc(c.X, c.Y, outer, 0, 2*math.Pi, chunks)
	for i := range from {
		s.MoveTo(from[i].X, from[i].Y)
		s.LineTo(to[i].X, to[i].Y)
		s.Stroke()
	}
}

// calendarSymbols writes one symbol centred in every chunk, turned to read
// along the band.
func calendarSymbols(s draw.Surface, c geom.Point, outer, inner float64, font string, symbols []string) {
	chunks := len(symbols)
	s.Save()
	defer s.Restore()

	s.SelectFont(font)
	s.SetFontSize(0.8 * (outer - inner))

	offset := math.Pi / float64(chunks)
	mid := geom.PointsAlongArc(c.X, c.Y, (outer+inner)/2, offset, offset+2*math.Pi, chunks)
	for i, p := range mid {
		angle := float64(i+1)*2*math.Pi/float64(chunks) + math.Pi/2 - offset
		draw.WithTranslation(s, p.X, p.Y, func() {
			draw.WithRotation(s, angle, func() {
				w, h := s.TextExtents(symbols[i])
				s.MoveTo(-w/2, h/2)
				s.ShowText(symbols[i])
				s.NewPath()
			})
		})
	}
}

// DrawRoman numbers 6..15 chunks with Roman numerals.
func DrawRoman(s draw.Surface, rng *random.Rand, c geom.Point, outer, inner float64) {
	chunks := rng.IntRange(6, 16)
	calendarBase(s, c, outer, inner, chunks)

	symbols := make([]string, chunks)
	for i := range symbols {
		symbols[i] = numbering.IntToRoman(i+1, true)
	}
	calendarSymbols(s, c, outer, inner, symbolFont, symbols)
}

// calendarMapped fills the chunks with distinct symbols drawn from alphabet.
func calendarMapped(s draw.Surface, rng *random.Rand, c geom.Point, outer, inner float64, font string, alphabet []string) {
	chunks := rng.IntRange(6, min(len(alphabet), 24))
	calendarBase(s, c, outer, inner, chunks)

	symbols := make([]string, chunks)
	for i, idx := range rng.Sample(len(alphabet), chunks) {
		symbols[i] = alphabet[idx]
	}
	calendarSymbols(s, c, outer, inner, font, symbols)
}

// unicodeRange lists the code points from first to last inclusive.
func unicodeRange(first, last rune) []string {
	res := make([]string, 0, last-first+1)
	for r := first; r <= last; r++ {
		res = append(res, string(r))
	}
	return res
}

var (
	planets    = unicodeRange(0x263F, 0x2647)
	zodiac     = unicodeRange(0x2648, 0x2654)
	alchemical = unicodeRange(0x1F700, 0x1F773)
	hexagrams  = unicodeRange(0x4DC0, 0x4DFF)
)

func DrawPlanets(s draw.Surface, rng *random.Rand, c geom.Point, outer, inner float64) {
	calendarMapped(s, rng, c, outer, inner, symbolFont, planets)
}

func DrawZodiac(s draw.Surface, rng *random.Rand, c geom.Point, outer, inner float64) {
	calendarMapped(s, rng, c, outer, inner, symbolFont, zodiac)
}

func DrawAlchemical(s draw.Surface, rng *random.Rand, c geom.Point, outer, inner float64) {
	calendarMapped(s, rng, c, outer, inner, symbolFont, alchemical)
}

func DrawHexagrams(s draw.Surface, rng *random.Rand, c geom.Point, outer, inner float64) {
	calendarMapped(s, rng, c, outer, inner, symbolFont2, hexagrams)
}
