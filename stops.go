package svgpattern

import "sort"

// GradientStop represents a color at a specific position in a gradient.
//
// ProcessStops keeps Offset only when Placed is true. Build placed
// stops with Stop and bare colors with Colors; a literal such as
// GradientStop{Offset: 0.9, Color: "#f00"} leaves Placed false, so
// ProcessStops treats it as a bare color and replaces its offset.
// Offsets are not limited to [0, 1].
type GradientStop struct {
	Offset float64 // Position in gradient, nominally 0.0 to 1.0
	Color  Color   // Color at this position
	Placed bool    // Offset was supplied by the caller
}

// GradientStops is an ordered list of stops.
type GradientStops []GradientStop

// Stop returns a stop at an explicit offset.
func Stop(offset float64, c Color) GradientStop {
	return GradientStop{Offset: offset, Color: c, Placed: true}
}

// Colors returns unplaced stops for the given colors, in order.
func Colors(colors ...Color) GradientStops {
	stops := make(GradientStops, len(colors))
	for i, c := range colors {
		stops[i] = GradientStop{Color: c}
	}
	return stops
}

// ProcessStops assigns offsets to unplaced stops, spacing them by index:
// stop i of n gets offset i/(n-1). A lone unplaced stop gets offset 0.
//
// When every stop is already placed, ProcessStops returns stops itself
// (same backing array) and false, so callers can skip recomputing
// anything derived from the list. Otherwise it returns a new list and
// true; the input is never modified.
func ProcessStops(stops GradientStops) (GradientStops, bool) {
	var processed GradientStops
	n := len(stops)
	for i, s := range stops {
		if s.Placed {
			if processed != nil {
				processed[i] = s
			}
			continue
		}
		if processed == nil {
			processed = make(GradientStops, n)
			copy(processed, stops[:i])
		}
		offset := 0.0
		if n > 1 {
			offset = float64(i) / float64(n-1)
		}
		processed[i] = Stop(offset, s.Color)
	}
	if processed == nil {
		return stops, false
	}
	return processed, true
}

// stopsOrDefault returns stops, or a two-stop list [from, to] when
// stops is empty. Empty from/to default to "inherit".
func stopsOrDefault(stops GradientStops, from, to Color) GradientStops {
	if len(stops) > 0 {
		return stops
	}
	if from == "" {
		from = Inherit
	}
	if to == "" {
		to = Inherit
	}
	return Colors(from, to)
}

// sortStops returns a copy of stops sorted by offset.
// Stops with equal offsets keep their relative order.
func sortStops(stops GradientStops) GradientStops {
	sorted := make(GradientStops, len(stops))
	copy(sorted, stops)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
}
