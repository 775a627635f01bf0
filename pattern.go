package svgpattern

import "fmt"

// PatternType identifies the kind of paint a registered pattern renders as.
type PatternType string

const (
	TypeLinear  PatternType = "linear"
	TypeRadial  PatternType = "radial"
	TypeAngular PatternType = "angular"
	TypeImage   PatternType = "image"
	TypeCustom  PatternType = "custom"
)

// PatternTypes lists every pattern kind.
var PatternTypes = []PatternType{TypeLinear, TypeRadial, TypeAngular, TypeImage, TypeCustom}

// Valid reports whether t is one of the known pattern kinds.
func (t PatternType) Valid() bool {
	switch t {
	case TypeLinear, TypeRadial, TypeAngular, TypeImage, TypeCustom:
		return true
	}
	return false
}

// ParsePatternType parses a pattern kind name.
func ParsePatternType(s string) (PatternType, error) {
	t := PatternType(s)
	if !t.Valid() {
		return "", fmt.Errorf("svgpattern: unknown pattern type %q", s)
	}
	return t, nil
}

// Inherit is the default gradient endpoint color.
const Inherit Color = "inherit"

// DefaultSlices is the wedge count of an angular gradient.
const DefaultSlices = 100

// Pattern is a registered pattern. Props holds the parameters passed to
// Manager.Add, stored as given; they are only interpreted when the
// pattern is rendered.
type Pattern struct {
	Key   string // key as passed to Add
	ID    string // element id: {prefix}-{type}__{sanitized key}
	Type  PatternType
	Props any
}

// Ref returns the paint reference for the pattern, "url(#id)".
func (p Pattern) Ref() string {
	return "url(#" + p.ID + ")"
}

// Params is implemented by the typed parameter sets of each pattern kind.
type Params interface {
	Kind() PatternType
}

// LinearParams configures a linear gradient. Without Stops the gradient
// runs From → To.
type LinearParams struct {
	Angle        float64 // degrees; 0 runs bottom to top, 90 left to right
	From, To     Color   // default "inherit"
	Scale        float64 // 0 means 1
	SpreadMethod SpreadMethod
	Stops        GradientStops
}

// Kind implements Params.
func (LinearParams) Kind() PatternType { return TypeLinear }

// GradientStops returns the processed stop list.
func (p LinearParams) GradientStops() GradientStops {
	stops, _ := ProcessStops(stopsOrDefault(p.Stops, p.From, p.To))
	return stops
}

// Vector returns the gradient vector as x1, y1, x2, y2.
func (p LinearParams) Vector() (x1, y1, x2, y2 float64) {
	return LinearVector(p.Angle, orOne(p.Scale))
}

// RadialParams configures a radial gradient in unit-box coordinates.
// Each unset (nil) coordinate and the radius default to 0.5; use Num to
// set one, including to 0.
type RadialParams struct {
	CX, CY       *float64
	FX, FY       *float64
	R            *float64
	From, To     Color // default "inherit"
	SpreadMethod SpreadMethod
	Stops        GradientStops
}

// Kind implements Params.
func (RadialParams) Kind() PatternType { return TypeRadial }

// GradientStops returns the processed stop list.
func (p RadialParams) GradientStops() GradientStops {
	stops, _ := ProcessStops(stopsOrDefault(p.Stops, p.From, p.To))
	return stops
}

// Geometry returns the circle attributes with defaults applied.
func (p RadialParams) Geometry() (cx, cy, fx, fy, r float64) {
	return orHalf(p.CX), orHalf(p.CY), orHalf(p.FX), orHalf(p.FY), orHalf(p.R)
}

// Num returns a pointer to v, for the optional fields of RadialParams.
func Num(v float64) *float64 {
	return &v
}

func orHalf(v *float64) float64 {
	if v == nil {
		return 0.5
	}
	return *v
}

// AngularParams configures an angular (conic) gradient drawn as Slices
// flat wedges.
type AngularParams struct {
	Angle        float64 // start angle in degrees, 0 is up, clockwise
	From, To     Color   // default "inherit"
	Scale        float64 // 0 means 1
	Slices       int     // 0 means DefaultSlices
	SpreadMethod SpreadMethod
	Stops        GradientStops
}

// Kind implements Params.
func (AngularParams) Kind() PatternType { return TypeAngular }

// GradientStops returns the processed stop list.
func (p AngularParams) GradientStops() GradientStops {
	stops, _ := ProcessStops(stopsOrDefault(p.Stops, p.From, p.To))
	return stops
}

// Polygons tessellates the gradient.
func (p AngularParams) Polygons() []Polygon {
	slices := p.Slices
	if slices == 0 {
		slices = DefaultSlices
	}
	return AngularPolygons(p.Angle, p.GradientStops(), orOne(p.Scale), p.SpreadMethod, slices)
}

// ImageParams configures an image fill stretched over the unit box.
type ImageParams struct {
	Src string // URL or data URI
}

// Kind implements Params.
func (ImageParams) Kind() PatternType { return TypeImage }

// CustomParams configures a pattern with caller-supplied SVG content.
// Content, when set, receives the pattern id and wins over Markup.
type CustomParams struct {
	Markup  string
	Content func(id string) string
}

// Kind implements Params.
func (CustomParams) Kind() PatternType { return TypeCustom }

// Body returns the markup placed inside the pattern element.
func (p CustomParams) Body(id string) string {
	if p.Content != nil {
		return p.Content(id)
	}
	return p.Markup
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
