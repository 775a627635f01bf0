// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/svgpattern"
)

func wantLibrary() []Entry {
	return []Entry{
		{
			Key:  "sunset sky",
			Type: svgpattern.TypeLinear,
			Params: svgpattern.LinearParams{
				Angle:        90,
				SpreadMethod: svgpattern.SpreadReflect,
				Stops: svgpattern.GradientStops{
					{Color: "#ff0000"},
					svgpattern.Stop(0.5, "#00ff00"),
					{Color: "#0000ff"},
				},
			},
		},
		{
			Key:  "glow",
			Type: svgpattern.TypeRadial,
			Params: svgpattern.RadialParams{
				CX:   svgpattern.Num(0.25),
				CY:   svgpattern.Num(0.75),
				R:    svgpattern.Num(1),
				From: "#ffffff", To: "#ffffff00",
			},
		},
		{
			Key:  "wheel",
			Type: svgpattern.TypeAngular,
			Params: svgpattern.AngularParams{
				Slices: 12,
				Stops: svgpattern.GradientStops{
					svgpattern.Stop(0, "red"),
					svgpattern.Stop(1, "blue"),
				},
			},
		},
		{
			Key:    "photo",
			Type:   svgpattern.TypeImage,
			Params: svgpattern.ImageParams{Src: "https://example.com/photo.jpg"},
		},
		{
			Key:    "dots",
			Type:   svgpattern.TypeCustom,
			Params: svgpattern.CustomParams{Markup: `<circle cx="0.5" cy="0.5" r="0.25"/>`},
		},
	}
}

func TestLoadFormats(t *testing.T) {
	for _, name := range []string{"library.toml", "library.yaml"} {
		t.Run(name, func(t *testing.T) {
			f, err := Load(filepath.Join("testdata", name))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if f.Prefix != "brand" {
				t.Errorf("Prefix = %q, want brand", f.Prefix)
			}
			if f.Dir != "testdata" {
				t.Errorf("Dir = %q, want testdata", f.Dir)
			}
			entries, err := f.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if diff := cmp.Diff(wantLibrary(), entries); diff != "" {
				t.Errorf("Build() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.toml", FormatTOML, false},
		{"dir/a.YAML", FormatYAML, false},
		{"a.yml", FormatYAML, false},
		{"a.json", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatOf() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrFormat) {
				t.Errorf("FormatOf() error = %v, want ErrFormat", err)
			}
			if got != tt.want {
				t.Errorf("FormatOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"unknown field", FormatTOML, "[[pattern]]\nkey = \"a\"\ntype = \"linear\"\ncolour = \"red\"\n"},
		{"bad toml", FormatTOML, "[[pattern\n"},
		{"unknown yaml field", FormatYAML, "pattern:\n  - key: a\n    kind: linear\n"},
		{"bad yaml", FormatYAML, "pattern: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, want ErrInvalid", err)
			}
		})
	}

	if _, err := Parse(nil, "json"); !errors.Is(err, ErrFormat) {
		t.Errorf("Parse(json) error = %v, want ErrFormat", err)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		f, err := Parse([]byte("# nothing here\n"), format)
		if err != nil {
			t.Fatalf("Parse(%s) error = %v", format, err)
		}
		if len(f.Patterns) != 0 {
			t.Errorf("Parse(%s) patterns = %d, want 0", format, len(f.Patterns))
		}
	}
}

func TestBuildInvalid(t *testing.T) {
	tests := []struct {
		name string
		def  PatternDef
	}{
		{"unknown type", PatternDef{Type: "hatch"}},
		{"bad spread", PatternDef{Type: "linear", Spread: "mirror"}},
		{"stop number", PatternDef{Type: "linear", Stops: []any{42}}},
		{"stop without color", PatternDef{Type: "radial", Stops: []any{map[string]any{"offset": 0.5}}}},
		{"stop bad offset", PatternDef{Type: "linear", Stops: []any{map[string]any{"offset": "half", "color": "red"}}}},
		{"stop unknown key", PatternDef{Type: "linear", Stops: []any{map[string]any{"color": "red", "opacity": 1}}}},
		{"negative slices", PatternDef{Type: "angular", Slices: -1}},
		{"image without source", PatternDef{Type: "image"}},
		{"image with both", PatternDef{Type: "image", Src: "a.png", File: "a.png"}},
		{"empty custom", PatternDef{Type: "custom"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.def.Build("")
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Build() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in   any
		want float64
	}{
		{int(1), 1},
		{int64(0), 0},
		{uint64(1), 1},
		{0.25, 0.25},
		{"50%", 0.5},
		{" 12.5% ", 0.125},
	}
	for _, tt := range tests {
		got, err := parseOffset(tt.in)
		if err != nil {
			t.Errorf("parseOffset(%v) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseOffset(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestImageFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tile.png"), buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	lib := "[[pattern]]\nkey = \"tile\"\ntype = \"image\"\nfile = \"tile.png\"\n"
	path := filepath.Join(dir, "lib.toml")
	if err := os.WriteFile(path, []byte(lib), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	entries, err := f.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	src := entries[0].Params.(svgpattern.ImageParams).Src
	if !strings.HasPrefix(src, "data:image/png;base64,") {
		t.Errorf("Src = %.40s..., want PNG data URI", src)
	}

	f.Dir = t.TempDir()
	if _, err := f.Build(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Build() with wrong Dir error = %v, want os.ErrNotExist", err)
	}
}

func TestApplyAndSync(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "library.toml"))
	if err != nil {
		t.Fatal(err)
	}
	m, err := f.NewManager()
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	if m.IDPrefix() != "brand" {
		t.Errorf("IDPrefix() = %q, want brand", m.IDPrefix())
	}
	if ref, _ := m.Get("sunset sky"); ref != "url(#brand-linear__sunset-sky)" {
		t.Errorf("Get() = %q", ref)
	}
	if m.Len() != 5 {
		t.Errorf("Len() = %d, want 5", m.Len())
	}

	m.Add("stale", svgpattern.TypeImage, svgpattern.ImageParams{Src: "x"})
	f.Patterns = f.Patterns[:2]
	if err := f.Sync(m); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	var keys []string
	for _, p := range m.Ordered() {
		keys = append(keys, p.Key)
	}
	if diff := cmp.Diff([]string{"sunset sky", "glow"}, keys); diff != "" {
		t.Errorf("keys after Sync (-want +got):\n%s", diff)
	}

	f.Patterns = append(f.Patterns, PatternDef{Key: "broken", Type: "nope"})
	if err := f.Sync(m); !errors.Is(err, ErrInvalid) {
		t.Errorf("Sync() error = %v, want ErrInvalid", err)
	}
	if m.Len() != 2 {
		t.Errorf("Len() after failed Sync = %d, want 2", m.Len())
	}
}
