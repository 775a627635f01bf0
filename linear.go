package svgpattern

import "math"

// LinearVector returns the x1, y1, x2, y2 attributes of a linear gradient
// running at angle degrees across the unit box: 0° runs bottom to top,
// 90° left to right. scale stretches the vector, which stays centered.
func LinearVector(angle, scale float64) (x1, y1, x2, y2 float64) {
	rad := angle * degreesToRadians
	x := scale * math.Sin(rad)
	y := scale * math.Cos(rad)

	xl := math.Max(-x, 0)
	xr := math.Max(0, x)
	yl := math.Max(y, 0)
	yr := math.Max(0, -y)

	// Center the vector inside the box.
	xo := 0.5 * (1 - math.Abs(xr-xl))
	yo := 0.5 * (1 - math.Abs(yr-yl))

	return xl + xo, yl + yo, xr + xo, yr + yo
}
