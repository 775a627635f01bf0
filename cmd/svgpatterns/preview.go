package main

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/gogpu/svgpattern"
)

const (
	previewColumns = 4
	previewMargin  = 10
	cellWidth      = 160
	cellHeight     = 130
	swatchWidth    = 140
	swatchHeight   = 90
)

// writePreview writes a standalone SVG document defining the patterns
// (defs holds their rendered elements) and showing one labelled swatch
// per pattern.
func writePreview(w io.Writer, patterns []svgpattern.Pattern, defs []byte) error {
	rows := max(1, (len(patterns)+previewColumns-1)/previewColumns)
	width := previewColumns*cellWidth + previewMargin
	height := rows*cellHeight + previewMargin

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title("Pattern library")
	canvas.Rect(0, 0, width, height, "fill:white")

	canvas.Def()
	if _, err := canvas.Writer.Write(defs); err != nil {
		return err
	}
	canvas.DefEnd()

	canvas.Gstyle("font-family:sans-serif;font-size:12px;fill:#333")
	for i, p := range patterns {
		x := previewMargin + (i%previewColumns)*cellWidth
		y := previewMargin + (i/previewColumns)*cellHeight
		canvas.Rect(x, y, swatchWidth, swatchHeight, "fill:"+p.Ref()+";stroke:#ccc")
		canvas.Text(x, y+swatchHeight+18, p.Key)
	}
	canvas.Gend()
	canvas.End()
	return nil
}
