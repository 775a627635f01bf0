// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imagefill

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/svgpattern"
)

var (
	// ErrEmpty is returned for zero-length image data.
	ErrEmpty = errors.New("imagefill: empty image data")

	// ErrUnknownFormat is returned when the data is not a recognized image.
	ErrUnknownFormat = errors.New("imagefill: unknown image format")
)

// FormatSVG is the Info.Format of SVG documents.
const FormatSVG = "svg"

var mimeTypes = map[string]string{
	"png":     "image/png",
	"jpeg":    "image/jpeg",
	"gif":     "image/gif",
	"bmp":     "image/bmp",
	"tiff":    "image/tiff",
	"webp":    "image/webp",
	FormatSVG: "image/svg+xml",
}

// Info describes an embedded image.
type Info struct {
	Format string // decoder name: "png", "jpeg", ..., or "svg"
	MIME   string
	Width  int // 0 for SVG
	Height int // 0 for SVG
	Size   int // encoded size in bytes
}

// Load reads the image at path and returns params embedding it.
func Load(path string) (svgpattern.ImageParams, Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return svgpattern.ImageParams{}, Info{}, fmt.Errorf("imagefill: %w", err)
	}
	return FromBytes(data, filepath.Base(path))
}

// FromBytes returns params embedding data. name is used only to
// recognize SVG by its extension and in error messages.
func FromBytes(data []byte, name string) (svgpattern.ImageParams, Info, error) {
	if len(data) == 0 {
		return svgpattern.ImageParams{}, Info{}, fmt.Errorf("%w: %s", ErrEmpty, name)
	}

	info, err := sniff(data, name)
	if err != nil {
		return svgpattern.ImageParams{}, Info{}, err
	}
	svgpattern.Logger().Debug("imagefill: embedded image",
		"name", name, "format", info.Format, "width", info.Width, "height", info.Height)
	return svgpattern.ImageParams{Src: DataURI(info.MIME, data)}, info, nil
}

// DataURI encodes data as a base64 data URI of the given media type.
func DataURI(mime string, data []byte) string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mime) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mime)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

func sniff(data []byte, name string) (Info, error) {
	if isSVG(data, name) {
		return Info{Format: FormatSVG, MIME: mimeTypes[FormatSVG], Size: len(data)}, nil
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("%w: %s: %v", ErrUnknownFormat, name, err)
	}
	mime, ok := mimeTypes[format]
	if !ok {
		return Info{}, fmt.Errorf("%w: %s: %s", ErrUnknownFormat, name, format)
	}
	return Info{
		Format: format,
		MIME:   mime,
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   len(data),
	}, nil
}

func isSVG(data []byte, name string) bool {
	if strings.EqualFold(filepath.Ext(name), ".svg") {
		return true
	}
	head := bytes.TrimSpace(data[:min(len(data), 512)])
	if bytes.HasPrefix(head, []byte("<svg")) {
		return true
	}
	return bytes.HasPrefix(head, []byte("<?xml")) && bytes.Contains(head, []byte("<svg"))
}
