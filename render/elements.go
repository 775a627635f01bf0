// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/svgpattern"
)

// ErrInvalidParams reports pattern Props that do not fit the pattern kind.
var ErrInvalidParams = errors.New("render: invalid pattern params")

// ErrUnknownType reports a pattern kind with no SVG element.
var ErrUnknownType = errors.New("render: unknown pattern type")

// Pattern writes the SVG element for p.
//
// p.Props may hold the kind's params struct or a pointer to it; nil
// renders the kind's defaults.
func Pattern(w io.Writer, p svgpattern.Pattern) error {
	e := newEncoder(w)
	if err := writePattern(e, p); err != nil {
		return err
	}
	return e.flush()
}

func writePattern(e *encoder, p svgpattern.Pattern) error {
	switch p.Type {
	case svgpattern.TypeLinear:
		params, err := paramsAs[svgpattern.LinearParams](p)
		if err != nil {
			return err
		}
		return writeLinear(e, p.ID, params)
	case svgpattern.TypeRadial:
		params, err := paramsAs[svgpattern.RadialParams](p)
		if err != nil {
			return err
		}
		return writeRadial(e, p.ID, params)
	case svgpattern.TypeAngular:
		params, err := paramsAs[svgpattern.AngularParams](p)
		if err != nil {
			return err
		}
		return writeAngular(e, p.ID, params)
	case svgpattern.TypeImage:
		params, err := paramsAs[svgpattern.ImageParams](p)
		if err != nil {
			return err
		}
		return writeImage(e, p.ID, params)
	case svgpattern.TypeCustom:
		params, err := paramsAs[svgpattern.CustomParams](p)
		if err != nil {
			return err
		}
		return writeCustom(e, p.ID, params)
	}
	return fmt.Errorf("%w: %q", ErrUnknownType, p.Type)
}

// paramsAs extracts the typed params of p.
func paramsAs[T svgpattern.Params](p svgpattern.Pattern) (T, error) {
	var zero T
	switch v := p.Props.(type) {
	case nil:
		return zero, nil
	case T:
		return v, nil
	case *T:
		if v == nil {
			return zero, nil
		}
		return *v, nil
	}
	return zero, fmt.Errorf("%w: %T for %s pattern %q", ErrInvalidParams, p.Props, p.Type, p.Key)
}

func writeStops(e *encoder, stops svgpattern.GradientStops) error {
	for _, s := range stops {
		err := e.element("stop",
			attr("offset", svgpattern.ForcePercent(s.Offset)),
			attr("stop-color", string(s.Color)),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeLinear(e *encoder, id string, p svgpattern.LinearParams) error {
	x1, y1, x2, y2 := p.Vector()
	err := e.start("linearGradient",
		attr("id", id),
		numAttr("x1", x1),
		numAttr("x2", x2),
		numAttr("y1", y1),
		numAttr("y2", y2),
		attr("spreadMethod", p.SpreadMethod.String()),
	)
	if err != nil {
		return err
	}
	if err := writeStops(e, p.GradientStops()); err != nil {
		return err
	}
	return e.end("linearGradient")
}

func writeRadial(e *encoder, id string, p svgpattern.RadialParams) error {
	cx, cy, fx, fy, r := p.Geometry()
	err := e.start("radialGradient",
		attr("id", id),
		numAttr("cx", cx),
		numAttr("cy", cy),
		numAttr("fx", fx),
		numAttr("fy", fy),
		numAttr("r", r),
		attr("spreadMethod", p.SpreadMethod.String()),
	)
	if err != nil {
		return err
	}
	if err := writeStops(e, p.GradientStops()); err != nil {
		return err
	}
	return e.end("radialGradient")
}

// boxPattern opens a <pattern> covering the referencing shape's
// bounding box.
func boxPattern(e *encoder, id string) error {
	return e.start("pattern",
		intAttr("height", 1),
		attr("id", id),
		attr("patternContentUnits", "objectBoundingBox"),
		attr("patternUnits", "objectBoundingBox"),
		intAttr("width", 1),
	)
}

func writeAngular(e *encoder, id string, p svgpattern.AngularParams) error {
	if err := boxPattern(e, id); err != nil {
		return err
	}
	for _, poly := range p.Polygons() {
		err := e.element("polygon",
			attr("fill", string(poly.Fill)),
			attr("points", poly.Points),
		)
		if err != nil {
			return err
		}
	}
	return e.end("pattern")
}

func writeImage(e *encoder, id string, p svgpattern.ImageParams) error {
	if err := boxPattern(e, id); err != nil {
		return err
	}
	err := e.element("image",
		intAttr("height", 1),
		intAttr("width", 1),
		intAttr("x", 0),
		attr("xlink:href", p.Src),
		intAttr("y", 0),
	)
	if err != nil {
		return err
	}
	return e.end("pattern")
}

func writeCustom(e *encoder, id string, p svgpattern.CustomParams) error {
	if err := boxPattern(e, id); err != nil {
		return err
	}
	if err := e.raw(p.Body(id)); err != nil {
		return err
	}
	return e.end("pattern")
}
