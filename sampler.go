package svgpattern

import (
	"math"

	"github.com/gogpu/svgpattern/internal/memo"
)

// Sampler maps positions along a gradient to colors.
//
// Results are memoized per exact offset for the lifetime of the Sampler;
// the memo is never evicted, so keep a Sampler only as long as the
// gradient it describes. A Sampler is safe for concurrent use.
type Sampler struct {
	stops  GradientStops // sorted by offset
	scale  float64
	spread SpreadMethod
	cache  *memo.Table[float64, Color]
}

// NewSampler creates a sampler over stops. Stops are sorted by offset
// (stable, so equal offsets keep their order); unplaced stops are used
// with whatever Offset they carry, so run ProcessStops first.
// A zero scale means 1.
func NewSampler(stops GradientStops, scale float64, spread SpreadMethod) *Sampler {
	if scale == 0 {
		scale = 1
	}
	return &Sampler{
		stops:  sortStops(stops),
		scale:  scale,
		spread: spread,
		cache:  memo.New[float64, Color](),
	}
}

// CreateGetColor returns NewSampler(stops, scale, spread).ColorAt.
func CreateGetColor(stops GradientStops, scale float64, spread SpreadMethod) func(offset float64) Color {
	return NewSampler(stops, scale, spread).ColorAt
}

// ColorAt returns the color at offset. The offset is divided by the
// sampler's scale and folded back into [0, 1] by its spread method;
// positions outside the stop range take the nearest edge stop's color.
//
// With no stops, every offset is transparent black.
func (s *Sampler) ColorAt(offset float64) Color {
	if math.IsNaN(offset) {
		return s.compute(offset)
	}
	return s.cache.GetOrCreate(offset, func() Color {
		return s.compute(offset)
	})
}

// compute samples the gradient without consulting the memo.
func (s *Sampler) compute(offset float64) Color {
	if len(s.stops) == 0 {
		return transparent.Hex()
	}

	t := applySpread(offset/s.scale, offset, s.spread)

	left, ok := s.leftStop(t)
	if !ok {
		left = s.stops[0]
	}
	right, ok := s.rightStop(t)
	if !ok {
		right = s.stops[len(s.stops)-1]
	}

	amount := 1.0
	if right.Offset != left.Offset {
		amount = (t - left.Offset) / (right.Offset - left.Offset)
	}
	return Mix(left.Color, right.Color, amount)
}

// leftStop finds the last stop at or below t.
func (s *Sampler) leftStop(t float64) (GradientStop, bool) {
	for i := len(s.stops) - 1; i >= 0; i-- {
		if t >= s.stops[i].Offset {
			return s.stops[i], true
		}
	}
	return GradientStop{}, false
}

// rightStop finds the first stop at or above t.
func (s *Sampler) rightStop(t float64) (GradientStop, bool) {
	for _, stop := range s.stops {
		if t <= stop.Offset {
			return stop, true
		}
	}
	return GradientStop{}, false
}

// Stops returns a copy of the sampler's sorted stops.
func (s *Sampler) Stops() GradientStops {
	out := make(GradientStops, len(s.stops))
	copy(out, s.stops)
	return out
}

// Cached reports how many distinct offsets have been memoized.
func (s *Sampler) Cached() int {
	return s.cache.Len()
}
