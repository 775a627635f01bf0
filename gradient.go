package svgpattern

import (
	"fmt"
	"math"
)

// SpreadMethod defines how gradients extend beyond their defined bounds.
type SpreadMethod int

const (
	// SpreadPad extends edge colors beyond bounds (default behavior).
	SpreadPad SpreadMethod = iota
	// SpreadReflect mirrors the gradient pattern.
	SpreadReflect
	// SpreadRepeat repeats the gradient pattern.
	SpreadRepeat
)

// String returns the SVG spreadMethod attribute value.
func (m SpreadMethod) String() string {
	switch m {
	case SpreadReflect:
		return "reflect"
	case SpreadRepeat:
		return "repeat"
	default:
		return "pad"
	}
}

// ParseSpreadMethod parses an SVG spreadMethod value.
// The empty string parses as SpreadPad.
func ParseSpreadMethod(s string) (SpreadMethod, error) {
	switch s {
	case "", "pad":
		return SpreadPad, nil
	case "reflect":
		return SpreadReflect, nil
	case "repeat":
		return SpreadRepeat, nil
	}
	return SpreadPad, fmt.Errorf("svgpattern: unknown spread method %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m SpreadMethod) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SpreadMethod) UnmarshalText(text []byte) error {
	v, err := ParseSpreadMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// applySpread folds a normalized position outside [0, 1] back into the
// gradient according to m. offset is the unscaled offset; a
// repeated gradient maps positive whole offsets to 1 rather than 0.
//
// Pad leaves t alone: the stop search clamps to the edge stops.
func applySpread(t, offset float64, m SpreadMethod) float64 {
	if t >= 0 && t <= 1 {
		return t
	}
	switch m {
	case SpreadReflect:
		t = math.Mod(math.Abs(t), 2)
		if math.Floor(t) == 1 {
			t = -t
		}
		t = math.Mod(t, 1)
		if t < 0 {
			t++
		}
	case SpreadRepeat:
		t = math.Mod(t, 1)
		if t <= 0 && offset != 0 && !math.IsNaN(offset) {
			t++
		}
	}
	return t
}
