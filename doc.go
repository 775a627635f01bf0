// Package svgpattern builds reusable SVG paint servers: linear, radial
// and angular gradients, image fills and custom patterns.
//
// # Overview
//
// Patterns are registered with a Manager under a key. Each gets a stable
// element id, and Get returns the "url(#id)" reference to use as a fill
// or stroke. Subscribers are told whenever the set of patterns changes,
// so a renderer (see package render) can keep a pattern library in step.
//
// # Quick Start
//
//	import "github.com/gogpu/svgpattern"
//
//	m := svgpattern.NewManager()
//	fill := m.Register("sunset", svgpattern.TypeLinear, svgpattern.LinearParams{
//	    Angle: 90,
//	    Stops: svgpattern.Colors("#ff7e5f", "#feb47b"),
//	})
//	// <rect fill="url(#svg-pattern-linear__sunset)" .../>
//
// # Gradients
//
// Colors are hex strings (#rgb, #rgba, #rrggbb, #rrggbbaa). Mix blends
// two colors, ProcessStops spreads stops without offsets evenly, and a
// Sampler returns the color at any offset under a SpreadMethod.
// SVG has no conic gradient, so AngularPolygons approximates one with
// flat-filled wedges.
//
// # Coordinate System
//
// Pattern geometry uses objectBoundingBox units:
//   - Origin (0,0) at the top-left of the filled shape, (1,1) at its
//     bottom-right
//   - Angles in degrees, 0 is up, increasing clockwise
//
// # Logging
//
// The package is silent by default. SetLogger installs a *slog.Logger.
package svgpattern

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = ""
)
