// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package svgpattern

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Manager stores pattern definitions under sanitized keys, assigns each a
// stable element id and notifies subscribers whenever the set changes.
//
// Example:
//
//	m := svgpattern.NewManager()
//	unsubscribe := m.Subscribe(func() { rerender(m.Ordered()) })
//	defer unsubscribe()
//
//	fill := m.Register("brand fade", svgpattern.TypeLinear, svgpattern.LinearParams{
//	    Angle: 90,
//	    Stops: svgpattern.Colors("#ff0000", "#0000ff"),
//	})
//	// fill == "url(#svg-pattern-linear__brand-fade)"
//
// # Notifications
//
// Add and Remove notify every subscriber synchronously, after the change
// is complete. When a subscriber itself calls Add or Remove, that change
// is applied at once but its notification round starts only after the
// current round has reached every subscriber; each change gets exactly
// one round. Subscribers added during a round are first called in the
// next round; subscribers removed during a round are not called again.
//
// Manager is safe for concurrent use. Rounds never overlap: a change
// made on another goroutine while a round is running is delivered by the
// goroutine running that round.
type Manager struct {
	mu       sync.Mutex
	idPrefix string

	genMu  sync.Mutex // serializes keyGen, which runs without mu
	keyGen func() string

	patterns map[string]Pattern
	order    []string // sanitized keys in first-insertion order

	listeners   []*listener
	pending     int  // notification rounds still owed
	dispatching bool // a goroutine is delivering rounds
}

// listener is one Subscribe registration.
type listener struct {
	fn      func()
	removed atomic.Bool
}

// NewManager creates an empty manager.
func NewManager(opts ...Option) *Manager {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.keyGen == nil {
		o.keyGen = counterKeys("pattern")
	}
	return &Manager{
		idPrefix: o.idPrefix,
		keyGen:   o.keyGen,
		patterns: make(map[string]Pattern),
	}
}

// IDPrefix returns the prefix of generated element ids.
func (m *Manager) IDPrefix() string {
	return m.idPrefix
}

// Add registers a pattern and returns its sanitized key. An existing
// pattern under the same sanitized key is replaced, keeping its place in
// Ordered. An empty key is replaced by one from the key generator.
// params is stored as given.
func (m *Manager) Add(key string, typ PatternType, params any) string {
	if key == "" {
		key = m.generateKey()
	}

	m.mu.Lock()
	patternKey := SanitizeKey(key)
	p := Pattern{
		Key:   key,
		ID:    m.idPrefix + "-" + string(typ) + "__" + patternKey,
		Type:  typ,
		Props: params,
	}
	if _, exists := m.patterns[patternKey]; !exists {
		m.order = append(m.order, patternKey)
	}
	m.patterns[patternKey] = p
	m.mu.Unlock()

	Logger().Debug("svgpattern: pattern added", "key", patternKey, "id", p.ID, "type", string(typ))
	m.notify()
	return patternKey
}

// generateKey names a pattern added without a key. The generator may
// read the manager, but must not add to it with an empty key.
func (m *Manager) generateKey() string {
	m.genMu.Lock()
	defer m.genMu.Unlock()
	return m.keyGen()
}

// Register adds a pattern and returns its paint reference,
// Get(Add(key, typ, params)).
func (m *Manager) Register(key string, typ PatternType, params any) string {
	ref, _ := m.Get(m.Add(key, typ, params))
	return ref
}

// Get returns the paint reference "url(#id)" of the pattern under key.
// It reports false when no such pattern is registered.
func (m *Manager) Get(key string) (string, bool) {
	p, ok := m.Lookup(key)
	if !ok {
		return "", false
	}
	return p.Ref(), true
}

// Lookup returns the pattern registered under key.
func (m *Manager) Lookup(key string) (Pattern, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.patterns[SanitizeKey(key)]
	return p, ok
}

// Has reports whether a pattern is registered under key.
func (m *Manager) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.patterns[SanitizeKey(key)]
	return ok
}

// Remove deletes the pattern under key and notifies subscribers.
// Removing an unknown key does nothing and notifies no one.
func (m *Manager) Remove(key string) {
	patternKey := SanitizeKey(key)

	m.mu.Lock()
	if _, ok := m.patterns[patternKey]; !ok {
		m.mu.Unlock()
		return
	}
	delete(m.patterns, patternKey)
	if i := slices.Index(m.order, patternKey); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	m.mu.Unlock()

	Logger().Debug("svgpattern: pattern removed", "key", patternKey)
	m.notify()
}

// Patterns returns a snapshot of the registered patterns by sanitized key.
func (m *Manager) Patterns() map[string]Pattern {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]Pattern, len(m.patterns))
	for k, p := range m.patterns {
		out[k] = p
	}
	return out
}

// Ordered returns a snapshot of the registered patterns in the order
// their keys were first added.
func (m *Manager) Ordered() []Pattern {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Pattern, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.patterns[k])
	}
	return out
}

// Len returns the number of registered patterns.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.patterns)
}

// Subscribe registers fn to be called after every Add and Remove.
// Each call is a separate subscription, even for the same fn. The
// returned function cancels it; calling it again has no effect.
func (m *Manager) Subscribe(fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	l := &listener{fn: fn}

	m.mu.Lock()
	m.listeners = append(m.listeners, l)
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.removed.Store(true)

			m.mu.Lock()
			defer m.mu.Unlock()
			if i := slices.Index(m.listeners, l); i >= 0 {
				m.listeners = slices.Delete(m.listeners, i, i+1)
			}
		})
	}
}

// notify owes subscribers one round and delivers owed rounds unless a
// round is already running. Must be called without m.mu held.
func (m *Manager) notify() {
	m.mu.Lock()
	m.pending++
	if m.dispatching {
		m.mu.Unlock()
		return
	}
	m.dispatching = true

	defer func() {
		if r := recover(); r != nil {
			// A panicking subscriber must not wedge later notifications.
			m.mu.Lock()
			m.dispatching = false
			m.pending = 0
			m.mu.Unlock()
			panic(r)
		}
	}()

	for m.pending > 0 {
		m.pending--
		round := slices.Clone(m.listeners)
		m.mu.Unlock()

		Logger().Debug("svgpattern: dispatch", "listeners", len(round))
		for _, l := range round {
			if !l.removed.Load() {
				l.fn()
			}
		}

		m.mu.Lock()
	}
	m.dispatching = false
	m.mu.Unlock()
}
