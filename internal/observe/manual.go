// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package observe

import "github.com/olegiv/folio/internal/dom"

// Registration is one Watch call recorded by a Manual watcher.
type Registration struct {
	Targets []dom.Element
	Options Options
	cb      Callback
}

// Manual is a Watcher with no viewport of its own. Entries are delivered
// only when Fire is called. Hosts without a viewport (server, static build)
// use it to keep the page's watches inert.
type Manual struct {
	regs []*Registration
}

// NewManual creates an empty Manual watcher.
func NewManual() *Manual {
	return &Manual{}
}

// Watch implements Watcher.
func (m *Manual) Watch(targets []dom.Element, opts Options, cb Callback) {
	m.regs = append(m.regs, &Registration{Targets: targets, Options: opts, cb: cb})
}

// Registrations returns the recorded watches in call order.
func (m *Manual) Registrations() []*Registration {
	return m.regs
}

// Watched returns the total number of watched elements.
func (m *Manual) Watched() int {
	n := 0
	for _, r := range m.regs {
		n += len(r.Targets)
	}
	return n
}

// Fire delivers a batch of entries to the registration at index i.
func (m *Manual) Fire(i int, entries ...Entry) {
	if i < 0 || i >= len(m.regs) {
		return
	}
	m.regs[i].cb(entries)
}

// Intersect builds an intersecting entry for target at ratio.
func Intersect(target dom.Element, ratio float64) Entry {
	return Entry{Target: target, Ratio: ratio, Intersecting: true}
}

// Leave builds a non-intersecting entry for target.
func Leave(target dom.Element) Entry {
	return Entry{Target: target}
}
