// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render writes registered patterns as SVG paint servers.
//
// Each pattern kind maps to one SVG element:
//
//   - linear: <linearGradient> with one <stop> per gradient stop
//   - radial: <radialGradient> with one <stop> per gradient stop
//   - angular: <pattern> of flat-filled <polygon> wedges
//   - image: <pattern> holding an <image> stretched over the box
//   - custom: <pattern> around caller-supplied markup
//
// Patterns use objectBoundingBox units, so any shape can reference them
// with fill="url(#id)" regardless of its size.
//
// # Usage
//
// One-shot rendering of a manager's patterns:
//
//	m := svgpattern.NewManager()
//	fill := m.Register("sky", svgpattern.TypeLinear, svgpattern.LinearParams{
//	    Stops: svgpattern.Colors("#87ceeb", "#ffffff"),
//	})
//	err := render.Library(w, m.Ordered())
//
// A Managed library re-renders whenever the manager changes:
//
//	lib := render.NewManaged(m, render.OnRender(func(svg []byte) {
//	    publish(svg)
//	}))
//	defer lib.Close()
//
// # Errors
//
// Params of the wrong Go type for a pattern's kind are reported as
// ErrInvalidParams when the pattern is rendered. Library skips patterns
// of unknown kind; Pattern reports them as ErrUnknownType.
package render
