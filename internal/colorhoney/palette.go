// Package colorhoney writes text in Kim Godgul's colour writing systems.
// Every letter is a pair of coloured shapes: two stacked triangles in
// ColorHoney, two stacked bars in ColorTokki.
package colorhoney

import (
	"unicode"

	"github.com/san-kum/genart/internal/color"
)

var (
	Red     = color.RGB(1, 0, 0)
	Green   = color.RGB(0, 153.0/255, 0)
	Blue    = color.RGB(0, 102.0/255, 1)
	Cyan    = color.RGB(0, 204.0/255, 1)
	Magenta = color.RGB(204.0/255, 102.0/255, 1)
	Yellow  = color.RGB(1, 204.0/255, 0)
)

// Glyph is the colour of the top and bottom half of a letter.
type Glyph struct {
	Top, Bottom color.Color
}

var Alphabet = map[rune]Glyph{
	'A': {Magenta, Magenta},
	'B': {Magenta, Cyan},
	'C': {Magenta, Blue},
	'D': {Magenta, Green},
	'E': {Red, Red},
	'F': {Red, Green},
	'G': {Red, Blue},
	'H': {Red, Cyan},
	'I': {Green, Green},
	'J': {Green, Blue},
	'K': {Green, Cyan},
	'L': {Green, Magenta},
	'M': {Green, Yellow},
	'N': {Green, Red},
	'O': {Yellow, Yellow},
	'P': {Yellow, Magenta},
	'Q': {Yellow, Cyan},
	'R': {Yellow, Blue},
	'S': {Yellow, Green},
	'T': {Yellow, Red},
	'U': {Blue, Blue},
	'V': {Yellow, Cyan},
	'W': {Blue, Magenta},
	'X': {Blue, Yellow},
	'Y': {Cyan, Cyan},
	'Z': {Cyan, Blue},
}

// Lookup finds the glyph of a letter in either case. ok is false for
// anything outside A-Z.
func Lookup(r rune) (Glyph, bool) {
	g, ok := Alphabet[unicode.ToUpper(r)]
	return g, ok
}
