// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package imagefill turns image files into image pattern params.
//
// Images are embedded as base64 data URIs so a rendered pattern library
// is self-contained. PNG, JPEG, GIF, BMP, TIFF and WebP are recognized
// by content; SVG documents by extension or leading markup.
//
//	params, info, err := imagefill.Load("logo.png")
//	if err != nil {
//	    return err
//	}
//	m.Add("logo", svgpattern.TypeImage, params)
//	log.Printf("%s %dx%d", info.Format, info.Width, info.Height)
package imagefill
