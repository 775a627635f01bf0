package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/gogpu/svgpattern"
)

const swatchCount = 16

// printSwatches samples the gradient pattern under key at n evenly
// spaced offsets and prints a row of colored blocks followed by the
// sampled colors.
func printSwatches(w io.Writer, m *svgpattern.Manager, key string, n int) error {
	p, ok := m.Lookup(key)
	if !ok {
		return fmt.Errorf("no pattern %q", key)
	}
	sampler, err := samplerFor(p)
	if err != nil {
		return err
	}

	out := termenv.NewOutput(w)
	var blocks strings.Builder
	colors := make([]string, n)
	for i := range n {
		offset := 0.0
		if n > 1 {
			offset = float64(i) / float64(n-1)
		}
		c := sampler.ColorAt(offset)
		colors[i] = string(c)

		rgba, _ := svgpattern.ParseColor(c)
		rgba.A = 1
		blocks.WriteString(out.String("  ").Background(out.Color(string(rgba.Hex()))).String())
	}

	if _, err := fmt.Fprintln(w, blocks.String()); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, strings.Join(colors, " "))
	return err
}

func samplerFor(p svgpattern.Pattern) (*svgpattern.Sampler, error) {
	switch v := p.Props.(type) {
	case svgpattern.LinearParams:
		return svgpattern.NewSampler(v.GradientStops(), v.Scale, v.SpreadMethod), nil
	case *svgpattern.LinearParams:
		if v != nil {
			return samplerFor(svgpattern.Pattern{Key: p.Key, Props: *v})
		}
	case svgpattern.RadialParams:
		return svgpattern.NewSampler(v.GradientStops(), 1, v.SpreadMethod), nil
	case *svgpattern.RadialParams:
		if v != nil {
			return samplerFor(svgpattern.Pattern{Key: p.Key, Props: *v})
		}
	case svgpattern.AngularParams:
		return svgpattern.NewSampler(v.GradientStops(), v.Scale, v.SpreadMethod), nil
	case *svgpattern.AngularParams:
		if v != nil {
			return samplerFor(svgpattern.Pattern{Key: p.Key, Props: *v})
		}
	}
	return nil, fmt.Errorf("pattern %q is not a gradient", p.Key)
}
