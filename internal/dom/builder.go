// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package dom

// El creates a detached element with an optional class and text.
// An empty className leaves the class attribute unset.
func El(doc Document, tag, className string, text ...string) Element {
	e := doc.Create(tag)
	if className != "" {
		e.SetClass(className)
	}
	if len(text) > 0 {
		e.SetText(text[0])
	}
	return e
}

// Clear empties the element with the given id and returns it.
// ok is false when the page has no such element.
func Clear(doc Document, id string) (Element, bool) {
	e, ok := doc.ElementByID(id)
	if !ok {
		return nil, false
	}
	e.Clear()
	return e, true
}

// SetText sets the text of the element with the given id, if present.
func SetText(doc Document, id, text string) {
	if e, ok := doc.ElementByID(id); ok {
		e.SetText(text)
	}
}

// SetImage sets the src of the element with the given id when both the
// element and src are present.
func SetImage(doc Document, id, src string) {
	if src == "" {
		return
	}
	if e, ok := doc.ElementByID(id); ok {
		e.SetAttr("src", src)
	}
}
