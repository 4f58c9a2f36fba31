package numbering

import "strings"

type romanNumeral struct {
	value   int
	ascii   string
	unicode string
}

var romanNumerals = []romanNumeral{
	{1000, "M", "Ⅿ"},
	{900, "CM", "ⅭⅯ"},
	{500, "D", "Ⅾ"},
	{400, "CD", "ⅭⅮ"},
	{100, "C", "Ⅽ"},
	{90, "XC", "ⅩⅭ"},
	{50, "L", "Ⅼ"},
	{40, "XL", "ⅩⅬ"},
	{10, "X", "Ⅹ"},
	{9, "IX", "Ⅸ"},
	{5, "V", "Ⅴ"},
	{4, "IV", "Ⅳ"},
	{1, "I", "Ⅰ"},
}

// IntToRoman renders n as a Roman numeral, using the Unicode Number Forms
// glyphs when unicode is set. Non-positive numbers yield "".
func IntToRoman(n int, unicode bool) string {
	var sb strings.Builder
	for _, rn := range romanNumerals {
		if n <= 0 {
			break
		}
		factor := n / rn.value
		n %= rn.value

		glyph := rn.ascii
		if unicode {
			glyph = rn.unicode
		}
		sb.WriteString(strings.Repeat(glyph, factor))
	}
	return sb.String()
}
