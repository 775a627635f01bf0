// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Option configures Library and Managed output.
type Option func(*options)

type options struct {
	noWrapper bool
	onRender  func([]byte)
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NoWrapper omits the enclosing <svg> element, leaving only the pattern
// elements, for embedding into an existing document.
func NoWrapper() Option {
	return func(o *options) {
		o.noWrapper = true
	}
}

// OnRender sets a callback receiving each successful render of a
// Managed library. The slice must not be modified. Calls are serialized
// and fn must not add to or remove from the managed Manager.
func OnRender(fn func(svg []byte)) Option {
	return func(o *options) {
		o.onRender = fn
	}
}
