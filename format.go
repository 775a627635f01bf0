package svgpattern

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber formats v the way a browser prints a number: shortest
// round-trip digits, plain notation for magnitudes in [1e-6, 1e21) and
// exponent notation ("6.123233995736766e-17", "1e+21") outside it.
// Negative zero prints as "0".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// strconv pads the exponent to two digits; browsers do not.
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}

// ForcePercent formats a gradient offset for an SVG attribute. Numbers
// render as n*100 followed by '%'; strings are taken as already
// formatted and returned unchanged.
func ForcePercent(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return FormatNumber(n*100) + "%"
	case float32:
		return FormatNumber(float64(n)*100) + "%"
	case int:
		return FormatNumber(float64(n)*100) + "%"
	case int64:
		return FormatNumber(float64(n)*100) + "%"
	case fmt.Stringer:
		return n.String()
	}
	return fmt.Sprint(v)
}
