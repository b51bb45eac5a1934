// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package observe

import "github.com/olegiv/folio/internal/dom"

// Reveal constants.
const (
	RevealSelector  = "[data-reveal]"
	RevealClass     = "is-visible"
	RevealThreshold = 0.12
)

// Revealed returns the targets of the intersecting entries.
func Revealed(entries []Entry) []dom.Element {
	var out []dom.Element
	for _, e := range entries {
		if e.Intersecting {
			out = append(out, e.Target)
		}
	}
	return out
}

// StartReveal watches every element present now that carries data-reveal and
// marks it visible once it enters the viewport. The mark is never removed.
// Elements added later are not watched. It returns the number of watched
// elements.
func StartReveal(doc dom.Document, w Watcher) int {
	els := doc.QueryAll(RevealSelector)
	if len(els) == 0 {
		return 0
	}

	w.Watch(els, Options{Thresholds: []float64{RevealThreshold}}, func(entries []Entry) {
		for _, el := range Revealed(entries) {
			el.AddClass(RevealClass)
		}
	})
	return len(els)
}
