package svgpattern

import (
	"math"
	"strings"
)

// Color is a paint value as it appears in SVG markup. Gradient math
// understands the hex forms "#rgb", "#rgba", "#rrggbb" and "#rrggbbaa"
// (the leading '#' is optional); any other value, such as "inherit" or
// "currentColor", passes through rendering untouched and mixes as
// transparent black.
type Color string

// RGBA is a parsed Color: 8-bit channels and a straight alpha in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// transparent is the fallback for colors that do not parse.
var transparent = RGBA{}

// ParseColor parses a hex color. It reports false, together with
// transparent black, when c is not a 3, 4, 6 or 8 digit hex color.
func ParseColor(c Color) (RGBA, bool) {
	hex := strings.TrimPrefix(string(c), "#")

	var digits [8]uint8
	if len(hex) > len(digits) {
		return transparent, false
	}
	for i := 0; i < len(hex); i++ {
		v, ok := parseHexDigit(hex[i])
		if !ok {
			return transparent, false
		}
		digits[i] = v
	}

	switch len(hex) {
	case 3: // RGB
		return RGBA{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 1}, true
	case 4: // RGBA
		return RGBA{
			R: digits[0] * 17,
			G: digits[1] * 17,
			B: digits[2] * 17,
			A: float64(digits[3]*17) / 255,
		}, true
	case 6: // RRGGBB
		return RGBA{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: 1,
		}, true
	case 8: // RRGGBBAA
		return RGBA{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: float64(digits[6]<<4|digits[7]) / 255,
		}, true
	}
	return transparent, false
}

// parseHexDigit decodes a single hex digit.
func parseHexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when its alpha does not
// round to fully opaque.
func (c RGBA) Hex() Color {
	const digits = "0123456789abcdef"

	alpha := uint8(roundHalfUp(clamp(c.A, 0, 1) * 255))
	buf := make([]byte, 1, 9)
	buf[0] = '#'
	for _, v := range [...]uint8{c.R, c.G, c.B} {
		buf = append(buf, digits[v>>4], digits[v&0x0f])
	}
	if alpha != 255 {
		buf = append(buf, digits[alpha>>4], digits[alpha&0x0f])
	}
	return Color(buf)
}

// Mix blends a toward b. amount 0 yields a's channels and 1 yields b's.
//
// The RGB weights account for the alpha difference between the two
// colors. The resulting alpha is a.A*amount + b.A*(1-amount), weighted
// opposite to the RGB channels.
//
// Colors that fail to parse mix as transparent black.
func Mix(a, b Color, amount float64) Color {
	c1, _ := ParseColor(a)
	c2, _ := ParseColor(b)

	w := 2*amount - 1
	aDiff := c2.A - c1.A

	var w2 float64
	if w*aDiff == -1 {
		w2 = (w + 1) / 2
	} else {
		w2 = ((w+aDiff)/(1+w*aDiff) + 1) / 2
	}
	w1 := 1 - w2

	return RGBA{
		R: mixChannel(c1.R, c2.R, w1, w2),
		G: mixChannel(c1.G, c2.G, w1, w2),
		B: mixChannel(c1.B, c2.B, w1, w2),
		A: c1.A*amount + c2.A*(1-amount),
	}.Hex()
}

// mixChannel weights two 8-bit channels and rounds half up.
func mixChannel(a, b uint8, w1, w2 float64) uint8 {
	return uint8(clamp(roundHalfUp(w1*float64(a)+w2*float64(b)), 0, 255))
}

// roundHalfUp rounds to the nearest integer, ties toward +Inf.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// clamp restricts x to [lo, hi]. NaN clamps to lo.
func clamp(x, lo, hi float64) float64 {
	if x > hi {
		return hi
	}
	if x >= lo {
		return x
	}
	return lo
}
