// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/svgpattern"
)

var (
	// ErrInvalid is wrapped by every error about the content of a library file.
	ErrInvalid = errors.New("config: invalid pattern library")

	// ErrFormat is returned for files that are neither TOML nor YAML.
	ErrFormat = errors.New("config: unsupported file format")
)

// Format is a library file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrFormat, path)
}

// File is a parsed pattern library.
type File struct {
	Prefix   string        `toml:"prefix,omitempty" yaml:"prefix,omitempty"`
	Patterns []PatternDef `toml:"pattern" yaml:"pattern"`

	// Dir resolves relative image paths. Load sets it to the file's
	// directory.
	Dir string `toml:"-" yaml:"-"`
}

// PatternDef is one pattern entry. Which fields apply depends on Type.
type PatternDef struct {
	Key  string `toml:"key" yaml:"key"`
	Type string `toml:"type" yaml:"type"`

	// linear, radial and angular
	From   string  `toml:"from,omitempty" yaml:"from,omitempty"`
	To     string  `toml:"to,omitempty" yaml:"to,omitempty"`
	Spread string  `toml:"spread,omitempty" yaml:"spread,omitempty"`
	Stops  []any   `toml:"stops,omitempty" yaml:"stops,omitempty"`
	Angle  float64 `toml:"angle,omitempty" yaml:"angle,omitempty"`
	Scale  float64 `toml:"scale,omitempty" yaml:"scale,omitempty"`
	Slices int     `toml:"slices,omitempty" yaml:"slices,omitempty"`

	// radial
	CX *float64 `toml:"cx,omitempty" yaml:"cx,omitempty"`
	CY *float64 `toml:"cy,omitempty" yaml:"cy,omitempty"`
	FX *float64 `toml:"fx,omitempty" yaml:"fx,omitempty"`
	FY *float64 `toml:"fy,omitempty" yaml:"fy,omitempty"`
	R  *float64 `toml:"r,omitempty" yaml:"r,omitempty"`

	// image
	Src  string `toml:"src,omitempty" yaml:"src,omitempty"`
	File string `toml:"file,omitempty" yaml:"file,omitempty"`

	// custom
	Markup string `toml:"markup,omitempty" yaml:"markup,omitempty"`
}

// Load reads and parses the library file at path.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Dir = filepath.Dir(path)
	svgpattern.Logger().Info("config: loaded pattern library", "path", path, "patterns", len(f.Patterns))
	return f, nil
}

// Parse decodes a library. Unknown keys are errors.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF.
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	return &f, nil
}

// Entry is a built pattern ready to add to a Manager.
type Entry struct {
	Key    string
	Type   svgpattern.PatternType
	Params svgpattern.Params
}

// Build converts every pattern entry to typed params. It fails on the
// first invalid entry.
func (f *File) Build() ([]Entry, error) {
	entries := make([]Entry, 0, len(f.Patterns))
	for i, def := range f.Patterns {
		params, err := def.Build(f.Dir)
		if err != nil {
			return nil, fmt.Errorf("pattern %d (%q): %w", i, def.Key, err)
		}
		entries = append(entries, Entry{Key: def.Key, Type: params.Kind(), Params: params})
	}
	return entries, nil
}

// Apply builds the library and adds every pattern to m, returning the
// sanitized keys in file order. Nothing is added when any entry is
// invalid.
func (f *File) Apply(m *svgpattern.Manager) ([]string, error) {
	entries, err := f.Build()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, m.Add(e.Key, e.Type, e.Params))
	}
	return keys, nil
}

// Sync makes m hold exactly the library's patterns: entries are added or
// replaced and patterns absent from the file are removed. m is left
// unchanged when any entry is invalid.
func (f *File) Sync(m *svgpattern.Manager) error {
	keys, err := f.Apply(m)
	if err != nil {
		return err
	}
	keep := make(map[string]bool, len(keys))
	for _, k := range keys {
		keep[k] = true
	}
	for k := range m.Patterns() {
		if !keep[k] {
			m.Remove(k)
		}
	}
	return nil
}

// NewManager creates a manager using the file's prefix and applies the
// library to it. opts are applied after the prefix.
func (f *File) NewManager(opts ...svgpattern.Option) (*svgpattern.Manager, error) {
	all := append([]svgpattern.Option{svgpattern.WithIDPrefix(f.Prefix)}, opts...)
	m := svgpattern.NewManager(all...)
	if _, err := f.Apply(m); err != nil {
		return nil, err
	}
	return m, nil
}
