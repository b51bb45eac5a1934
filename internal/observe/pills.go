// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package observe

import "github.com/olegiv/folio/internal/dom"

// Pill constants.
const (
	PillSelector = ".pill[data-section]"
	PillAttr     = "data-section"
	ActiveClass  = "is-active"
)

// PillThresholds are the ratios at which section visibility is re-evaluated.
var PillThresholds = []float64{0.2, 0.35, 0.5}

// MostVisible picks the intersecting entry with the highest ratio.
// Equal ratios go to the section listed first in order, which holds section
// ids in pill order. ok is false when no entry is intersecting.
func MostVisible(entries []Entry, order []string) (id string, ok bool) {
	rank := make(map[string]int, len(order))
	for i, s := range order {
		if _, seen := rank[s]; !seen {
			rank[s] = i
		}
	}

	best := -1
	for i, e := range entries {
		if !e.Intersecting {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := entries[best]
		switch {
		case e.Ratio > b.Ratio:
			best = i
		case e.Ratio == b.Ratio && rankOf(rank, e.Target.ID()) < rankOf(rank, b.Target.ID()):
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return entries[best].Target.ID(), true
}

func rankOf(rank map[string]int, id string) int {
	if r, ok := rank[id]; ok {
		return r
	}
	return len(rank)
}

// Highlight clears every pill and marks the first pill pointing at section
// id active, so at most one pill is active at a time.
func Highlight(pills []dom.Element, id string) {
	for _, p := range pills {
		p.RemoveClass(ActiveClass)
	}
	for _, p := range pills {
		if target, _ := p.Attr(PillAttr); target == id {
			p.AddClass(ActiveClass)
			return
		}
	}
}

// StartPills keeps the pill for the most visible section marked active.
// It is inert when the page has no pills or none of their sections exist.
// When no section is intersecting the current marker stays put.
func StartPills(doc dom.Document, w Watcher) bool {
	pills := doc.QueryAll(PillSelector)
	if len(pills) == 0 {
		return false
	}

	var (
		sections []dom.Element
		order    []string
	)
	for _, p := range pills {
		target, _ := p.Attr(PillAttr)
		s, ok := doc.ElementByID(target)
		if !ok {
			continue
		}
		sections = append(sections, s)
		order = append(order, target)
	}
	if len(sections) == 0 {
		return false
	}

	w.Watch(sections, Options{Thresholds: PillThresholds}, func(entries []Entry) {
		if id, ok := MostVisible(entries, order); ok {
			Highlight(pills, id)
		}
	})
	return true
}
