// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/gogpu/svgpattern"
)

// encoder writes SVG elements as XML tokens and allows raw markup
// between them.
type encoder struct {
	w   io.Writer
	enc *xml.Encoder
}

func newEncoder(w io.Writer) *encoder {
	return &encoder{w: w, enc: xml.NewEncoder(w)}
}

func (e *encoder) start(name string, attrs ...xml.Attr) error {
	return e.enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

func (e *encoder) end(name string) error {
	return e.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

// element writes an element with no children.
func (e *encoder) element(name string, attrs ...xml.Attr) error {
	if err := e.start(name, attrs...); err != nil {
		return err
	}
	return e.end(name)
}

// raw writes markup verbatim at the current position.
func (e *encoder) raw(markup string) error {
	if err := e.enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, markup)
	return err
}

func (e *encoder) flush() error {
	return e.enc.Flush()
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func numAttr(name string, v float64) xml.Attr {
	return attr(name, svgpattern.FormatNumber(v))
}

func intAttr(name string, v int) xml.Attr {
	return attr(name, strconv.Itoa(v))
}
