package svgpattern

import (
	"math"
	"strings"
)

// degreesToRadians converts degrees to radians.
const degreesToRadians = math.Pi / 180

// Point is a position in pattern (objectBoundingBox) units.
type Point struct {
	X, Y float64
}

// String formats p as "x,y".
func (p Point) String() string {
	return FormatNumber(p.X) + "," + FormatNumber(p.Y)
}

// AngleToPoint returns the point one unit from the pattern center
// (0.5, 0.5) in the direction of angle degrees. 0° points straight up
// and angles grow clockwise.
func AngleToPoint(angle float64) Point {
	rad := angle * degreesToRadians
	return Point{
		X: 0.5 + math.Sin(rad),
		Y: 0.5 - math.Cos(rad),
	}
}

// Polygon is one flat-filled wedge of an angular gradient.
type Polygon struct {
	Key    float64 // wedge start as a fraction of a turn; unique per wedge
	Fill   Color
	Points string // SVG points list: "x,y x,y ..."
}

// AngularPolygons approximates a conic gradient starting at angle degrees
// with slices wedges, each filled with a single color.
//
// Wedge i takes the color at i/(slices-1) (0 for a single wedge), so the
// stops spread over the wedge indexes rather than the exact angles.
// Every wedge is a fan from the center; fewer slices get more boundary
// points per wedge (ceil(8/slices)) to keep the outline round. The last
// wedge omits its closing point. slices < 1 yields no polygons.
func AngularPolygons(angle float64, stops GradientStops, scale float64, spread SpreadMethod, slices int) []Polygon {
	if slices < 1 {
		return nil
	}
	colorAt := CreateGetColor(stops, scale, spread)
	numPoints := int(math.Ceil(8 / float64(slices)))
	pointDistance := 1 / float64(slices) / float64(numPoints)

	polygons := make([]Polygon, slices)
	for slice := range polygons {
		offset := 0.0
		if slices > 1 {
			offset = float64(slice) / float64(slices-1)
		}
		start := float64(slice) / float64(slices)

		n := numPoints + 3
		if slice == slices-1 {
			n = numPoints + 2
		}
		points := make([]string, n)
		points[0] = Point{X: 0.5, Y: 0.5}.String()
		for i := 1; i < n; i++ {
			pos := pointDistance * float64(i-1)
			points[i] = AngleToPoint(360*(start+pos) + angle).String()
		}

		polygons[slice] = Polygon{
			Key:    start,
			Fill:   colorAt(offset),
			Points: strings.Join(points, " "),
		}
	}
	return polygons
}
