// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package observe holds the scroll-driven page behaviour: reveal-on-scroll
// and the active navigation pill. Both are pure decisions over batches of
// intersection entries delivered by a Watcher.
package observe

import "github.com/olegiv/folio/internal/dom"

// Entry reports how much of a watched element is inside the viewport.
type Entry struct {
	Target       dom.Element
	Ratio        float64
	Intersecting bool
}

// Options configures a watch.
type Options struct {
	Thresholds []float64
}

// Callback receives one batch of entries.
type Callback func(entries []Entry)

// Watcher delivers intersection entries for a set of elements until the
// page goes away. Implementations call the callback from the goroutine that
// owns the page's Document.
type Watcher interface {
	Watch(targets []dom.Element, opts Options, cb Callback)
}
