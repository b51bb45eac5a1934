// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build js && wasm

package browser

import (
	"syscall/js"

	"github.com/olegiv/folio/internal/dom"
	"github.com/olegiv/folio/internal/observe"
)

// Observer is an observe.Watcher backed by IntersectionObserver. Watches
// last for the page's lifetime.
type Observer struct{}

// NewObserver creates an Observer.
func NewObserver() *Observer {
	return &Observer{}
}

// Watch implements observe.Watcher.
func (o *Observer) Watch(targets []dom.Element, opts observe.Options, cb observe.Callback) {
	thresholds := make([]any, len(opts.Thresholds))
	for i, t := range opts.Thresholds {
		thresholds[i] = t
	}

	handler := js.FuncOf(func(_ js.Value, args []js.Value) any {
		list := args[0]
		entries := make([]observe.Entry, 0, list.Length())
		for i := range list.Length() {
			e := list.Index(i)
			entries = append(entries, observe.Entry{
				Target:       &element{v: e.Get("target")},
				Ratio:        e.Get("intersectionRatio").Float(),
				Intersecting: e.Get("isIntersecting").Bool(),
			})
		}
		cb(entries)
		return nil
	})

	obs := js.Global().Get("IntersectionObserver").New(handler, map[string]any{
		"threshold": thresholds,
	})
	for _, t := range targets {
		if el, ok := t.(*element); ok {
			obs.Call("observe", el.v)
		}
	}
}
