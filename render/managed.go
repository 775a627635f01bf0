// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"sync"

	"github.com/gogpu/svgpattern"
)

// Managed keeps a rendered library in step with a Manager: it renders
// once on creation and again after every change the manager reports.
//
// When a render fails, the previous output is kept and Err reports the
// failure until a later render succeeds.
type Managed struct {
	manager     *svgpattern.Manager
	opts        options
	unsubscribe func()

	renderMu sync.Mutex // orders snapshots with their stores and callbacks

	mu  sync.Mutex
	out []byte
	err error
	gen uint64 // successful renders so far
}

// NewManaged subscribes to m and renders its patterns. Changes made
// while NewManaged runs are reflected in the output.
// Call Close to stop following it.
func NewManaged(m *svgpattern.Manager, opts ...Option) *Managed {
	l := &Managed{
		manager: m,
		opts:    buildOptions(opts),
	}
	l.unsubscribe = m.Subscribe(l.refresh)
	l.refresh()
	return l
}

// refresh re-renders from a fresh snapshot. Renders run one at a time,
// so a later snapshot is never overwritten by an earlier one.
func (l *Managed) refresh() {
	l.renderMu.Lock()
	defer l.renderMu.Unlock()

	var buf bytes.Buffer
	var opts []Option
	if l.opts.noWrapper {
		opts = append(opts, NoWrapper())
	}
	err := Library(&buf, l.manager.Ordered(), opts...)

	l.mu.Lock()
	if err != nil {
		l.err = err
		l.mu.Unlock()
		svgpattern.Logger().Warn("render: managed library kept previous output", "err", err)
		return
	}
	l.out = buf.Bytes()
	l.err = nil
	l.gen++
	out := l.out
	l.mu.Unlock()

	if l.opts.onRender != nil {
		l.opts.onRender(out)
	}
}

// Bytes returns the latest successful render. The slice must not be
// modified.
func (l *Managed) Bytes() []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out
}

// String returns the latest successful render.
func (l *Managed) String() string {
	return string(l.Bytes())
}

// Err returns the error of the latest render, or nil if it succeeded.
func (l *Managed) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Renders returns how many renders have succeeded.
func (l *Managed) Renders() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}

// Manager returns the followed manager.
func (l *Managed) Manager() *svgpattern.Manager {
	return l.manager
}

// Register adds a pattern to the followed manager and returns its paint
// reference. The library has been re-rendered when Register returns.
func (l *Managed) Register(key string, typ svgpattern.PatternType, params any) string {
	return l.manager.Register(key, typ, params)
}

// Ref returns the paint reference of a registered pattern.
func (l *Managed) Ref(key string) (string, bool) {
	return l.manager.Get(key)
}

// Close stops following the manager. It is safe to call more than once.
func (l *Managed) Close() {
	l.unsubscribe()
}
