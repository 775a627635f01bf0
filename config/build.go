// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/svgpattern"
	"github.com/gogpu/svgpattern/imagefill"
)

// Build converts the entry to the params of its pattern type. dir
// resolves a relative File.
func (s PatternDef) Build(dir string) (svgpattern.Params, error) {
	typ, err := svgpattern.ParsePatternType(s.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	switch typ {
	case svgpattern.TypeLinear:
		spread, stops, err := s.gradient()
		if err != nil {
			return nil, err
		}
		return svgpattern.LinearParams{
			Angle:        s.Angle,
			From:         svgpattern.Color(s.From),
			To:           svgpattern.Color(s.To),
			Scale:        s.Scale,
			SpreadMethod: spread,
			Stops:        stops,
		}, nil

	case svgpattern.TypeRadial:
		spread, stops, err := s.gradient()
		if err != nil {
			return nil, err
		}
		return svgpattern.RadialParams{
			CX:           s.CX,
			CY:           s.CY,
			FX:           s.FX,
			FY:           s.FY,
			R:            s.R,
			From:         svgpattern.Color(s.From),
			To:           svgpattern.Color(s.To),
			SpreadMethod: spread,
			Stops:        stops,
		}, nil

	case svgpattern.TypeAngular:
		spread, stops, err := s.gradient()
		if err != nil {
			return nil, err
		}
		if s.Slices < 0 {
			return nil, fmt.Errorf("%w: slices must not be negative, got %d", ErrInvalid, s.Slices)
		}
		return svgpattern.AngularParams{
			Angle:        s.Angle,
			From:         svgpattern.Color(s.From),
			To:           svgpattern.Color(s.To),
			Scale:        s.Scale,
			Slices:       s.Slices,
			SpreadMethod: spread,
			Stops:        stops,
		}, nil

	case svgpattern.TypeImage:
		return s.image(dir)

	default: // svgpattern.TypeCustom
		if s.Markup == "" {
			return nil, fmt.Errorf("%w: custom pattern needs markup", ErrInvalid)
		}
		return svgpattern.CustomParams{Markup: s.Markup}, nil
	}
}

func (s PatternDef) gradient() (svgpattern.SpreadMethod, svgpattern.GradientStops, error) {
	spread, err := svgpattern.ParseSpreadMethod(s.Spread)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	stops, err := parseStops(s.Stops)
	if err != nil {
		return 0, nil, err
	}
	return spread, stops, nil
}

func (s PatternDef) image(dir string) (svgpattern.Params, error) {
	switch {
	case s.Src != "" && s.File != "":
		return nil, fmt.Errorf("%w: image pattern has both src and file", ErrInvalid)
	case s.Src != "":
		return svgpattern.ImageParams{Src: s.Src}, nil
	case s.File == "":
		return nil, fmt.Errorf("%w: image pattern needs src or file", ErrInvalid)
	}

	path := s.File
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	params, _, err := imagefill.Load(path)
	if err != nil {
		return nil, err
	}
	return params, nil
}

// parseStops converts a stops list. Each item is a color string or a
// table with a color and an optional offset, given as a fraction or a
// percentage string.
func parseStops(items []any) (svgpattern.GradientStops, error) {
	if len(items) == 0 {
		return nil, nil
	}
	stops := make(svgpattern.GradientStops, 0, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case string:
			stops = append(stops, svgpattern.GradientStop{Color: svgpattern.Color(v)})
		case map[string]any:
			stop, err := parseStop(v)
			if err != nil {
				return nil, fmt.Errorf("%w: stop %d: %v", ErrInvalid, i, err)
			}
			stops = append(stops, stop)
		default:
			return nil, fmt.Errorf("%w: stop %d: want color or table, got %T", ErrInvalid, i, item)
		}
	}
	return stops, nil
}

func parseStop(m map[string]any) (svgpattern.GradientStop, error) {
	var stop svgpattern.GradientStop
	for k, v := range m {
		switch k {
		case "color":
			c, ok := v.(string)
			if !ok {
				return stop, fmt.Errorf("color must be a string, got %T", v)
			}
			stop.Color = svgpattern.Color(c)
		case "offset":
			off, err := parseOffset(v)
			if err != nil {
				return stop, err
			}
			stop.Offset = off
			stop.Placed = true
		default:
			return stop, fmt.Errorf("unknown key %q", k)
		}
	}
	if stop.Color == "" {
		return stop, fmt.Errorf("missing color")
	}
	return stop, nil
}

func parseOffset(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		if pct, ok := strings.CutSuffix(strings.TrimSpace(n), "%"); ok {
			f, err := strconv.ParseFloat(pct, 64)
			if err != nil {
				return 0, fmt.Errorf("bad offset %q", n)
			}
			return f / 100, nil
		}
		return 0, fmt.Errorf("offset string %q must be a percentage", n)
	}
	return 0, fmt.Errorf("offset must be a number, got %T", v)
}
