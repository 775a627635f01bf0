// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"io"

	"github.com/gogpu/svgpattern"
)

// hiddenStyle keeps the wrapper from affecting page layout while its
// patterns stay referenceable.
const hiddenStyle = "bottom:0;height:1px;opacity:0;pointer-events:none;position:fixed;right:0;width:1px;z-index:-1"

// Library writes every pattern inside a hidden 1×1 <svg> element, in
// the given order. With NoWrapper only the pattern elements are written.
// Patterns of unknown kind are skipped; invalid params stop rendering
// with an error wrapping ErrInvalidParams.
func Library(w io.Writer, patterns []svgpattern.Pattern, opts ...Option) error {
	o := buildOptions(opts)
	e := newEncoder(w)

	if !o.noWrapper {
		err := e.start("svg",
			attr("xmlns", "http://www.w3.org/2000/svg"),
			attr("xmlns:xlink", "http://www.w3.org/1999/xlink"),
			attr("style", hiddenStyle),
		)
		if err != nil {
			return err
		}
	}

	for _, p := range patterns {
		err := writePattern(e, p)
		if errors.Is(err, ErrUnknownType) {
			svgpattern.Logger().Warn("render: skipping pattern", "key", p.Key, "type", string(p.Type))
			continue
		}
		if err != nil {
			return err
		}
	}

	if !o.noWrapper {
		if err := e.end("svg"); err != nil {
			return err
		}
	}
	return e.flush()
}
