// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/svgpattern"
)

const boxPatternOpen = `height="1" id="%s" patternContentUnits="objectBoundingBox" patternUnits="objectBoundingBox" width="1"`

func renderPattern(t *testing.T, p svgpattern.Pattern) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Pattern(&buf, p); err != nil {
		t.Fatalf("Pattern() error = %v", err)
	}
	return buf.String()
}

func TestPatternElements(t *testing.T) {
	tests := []struct {
		name  string
		typ   svgpattern.PatternType
		props any
		want  string
	}{
		{
			name: "linear",
			typ:  svgpattern.TypeLinear,
			props: svgpattern.LinearParams{
				Stops: svgpattern.Colors("#ff0000", "#0000ff"),
			},
			want: `<linearGradient id="p" x1="0.5" x2="0.5" y1="1" y2="0" spreadMethod="pad">` +
				`<stop offset="0%" stop-color="#ff0000"></stop>` +
				`<stop offset="100%" stop-color="#0000ff"></stop>` +
				`</linearGradient>`,
		},
		{
			name:  "linear reflect",
			typ:   svgpattern.TypeLinear,
			props: svgpattern.LinearParams{From: "red", To: "blue", SpreadMethod: svgpattern.SpreadReflect},
			want: `<linearGradient id="p" x1="0.5" x2="0.5" y1="1" y2="0" spreadMethod="reflect">` +
				`<stop offset="0%" stop-color="red"></stop>` +
				`<stop offset="100%" stop-color="blue"></stop>` +
				`</linearGradient>`,
		},
		{
			name:  "radial defaults",
			typ:   svgpattern.TypeRadial,
			props: nil,
			want: `<radialGradient id="p" cx="0.5" cy="0.5" fx="0.5" fy="0.5" r="0.5" spreadMethod="pad">` +
				`<stop offset="0%" stop-color="inherit"></stop>` +
				`<stop offset="100%" stop-color="inherit"></stop>` +
				`</radialGradient>`,
		},
		{
			name: "radial placed stops",
			typ:  svgpattern.TypeRadial,
			props: svgpattern.RadialParams{
				CX: svgpattern.Num(0.25), CY: svgpattern.Num(0.75), R: svgpattern.Num(1),
				Stops: svgpattern.GradientStops{
					svgpattern.Stop(0.2, "#000"),
					svgpattern.Stop(0.9, "#fff"),
				},
			},
			want: `<radialGradient id="p" cx="0.25" cy="0.75" fx="0.5" fy="0.5" r="1" spreadMethod="pad">` +
				`<stop offset="20%" stop-color="#000"></stop>` +
				`<stop offset="90%" stop-color="#fff"></stop>` +
				`</radialGradient>`,
		},
		{
			name:  "radial origin",
			typ:   svgpattern.TypeRadial,
			props: svgpattern.RadialParams{CX: svgpattern.Num(0), CY: svgpattern.Num(0), From: "#fff", To: "#000"},
			want: `<radialGradient id="p" cx="0" cy="0" fx="0.5" fy="0.5" r="0.5" spreadMethod="pad">` +
				`<stop offset="0%" stop-color="#fff"></stop>` +
				`<stop offset="100%" stop-color="#000"></stop>` +
				`</radialGradient>`,
		},
		{
			name:  "image",
			typ:   svgpattern.TypeImage,
			props: svgpattern.ImageParams{Src: "tile.png"},
			want: `<pattern ` + strings.ReplaceAll(boxPatternOpen, "%s", "p") + `>` +
				`<image height="1" width="1" x="0" xlink:href="tile.png" y="0"></image>` +
				`</pattern>`,
		},
		{
			name:  "image pointer",
			typ:   svgpattern.TypeImage,
			props: &svgpattern.ImageParams{Src: "a&b.png"},
			want: `<pattern ` + strings.ReplaceAll(boxPatternOpen, "%s", "p") + `>` +
				`<image height="1" width="1" x="0" xlink:href="a&amp;b.png" y="0"></image>` +
				`</pattern>`,
		},
		{
			name:  "custom markup",
			typ:   svgpattern.TypeCustom,
			props: svgpattern.CustomParams{Markup: `<circle r="0.5"/>`},
			want: `<pattern ` + strings.ReplaceAll(boxPatternOpen, "%s", "p") + `>` +
				`<circle r="0.5"/>` +
				`</pattern>`,
		},
		{
			name: "custom content",
			typ:  svgpattern.TypeCustom,
			props: svgpattern.CustomParams{
				Markup:  "ignored",
				Content: func(id string) string { return `<use href="#` + id + `-src"/>` },
			},
			want: `<pattern ` + strings.ReplaceAll(boxPatternOpen, "%s", "p") + `>` +
				`<use href="#p-src"/>` +
				`</pattern>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderPattern(t, svgpattern.Pattern{Key: "k", ID: "p", Type: tt.typ, Props: tt.props})
			if got != tt.want {
				t.Errorf("Pattern() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestPatternAngular(t *testing.T) {
	props := svgpattern.AngularParams{
		Stops:  svgpattern.Colors("#ff0000", "#0000ff"),
		Slices: 4,
	}
	got := renderPattern(t, svgpattern.Pattern{ID: "cone", Type: svgpattern.TypeAngular, Props: props})

	if !strings.HasPrefix(got, `<pattern `+strings.ReplaceAll(boxPatternOpen, "%s", "cone")+`>`) {
		t.Errorf("Pattern() does not open a box pattern: %s", got)
	}
	if n := strings.Count(got, "<polygon "); n != 4 {
		t.Errorf("polygon count = %d, want 4", n)
	}
	for _, poly := range props.Polygons() {
		want := `<polygon fill="` + string(poly.Fill) + `" points="` + poly.Points + `"></polygon>`
		if !strings.Contains(got, want) {
			t.Errorf("missing %s", want)
		}
	}
	if !strings.HasSuffix(got, "</pattern>") {
		t.Errorf("Pattern() not closed: %s", got)
	}
}

func TestPatternErrors(t *testing.T) {
	tests := []struct {
		name string
		p    svgpattern.Pattern
		want error
	}{
		{"wrong params", svgpattern.Pattern{Type: svgpattern.TypeLinear, Props: svgpattern.ImageParams{}}, ErrInvalidParams},
		{"map params", svgpattern.Pattern{Type: svgpattern.TypeImage, Props: map[string]string{"src": "x"}}, ErrInvalidParams},
		{"unknown type", svgpattern.Pattern{Type: "hatch"}, ErrUnknownType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Pattern(&buf, tt.p)
			if !errors.Is(err, tt.want) {
				t.Errorf("Pattern() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPatternNilPointerParams(t *testing.T) {
	var params *svgpattern.ImageParams
	got := renderPattern(t, svgpattern.Pattern{ID: "p", Type: svgpattern.TypeImage, Props: params})
	if !strings.Contains(got, `xlink:href=""`) {
		t.Errorf("Pattern() = %s, want empty href", got)
	}
}
