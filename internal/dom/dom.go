// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dom defines the document capability the renderers work against.
//
// Implementations: HTMLDocument (an in-memory HTML tree, used by the server
// and the static builder) and the browser DOM in internal/browser.
package dom

// Element is a node in a Document.
type Element interface {
	ID() string
	Tag() string

	Attr(name string) (string, bool)
	SetAttr(name, value string)

	// SetClass replaces the whole class attribute.
	SetClass(className string)
	AddClass(className string)
	RemoveClass(className string)
	HasClass(className string) bool

	Text() string
	// SetText replaces all children with a single text node.
	SetText(text string)

	// Clear removes all children.
	Clear()
	// Append attaches child as the last child, detaching it from any
	// previous parent. The child must come from the same Document.
	Append(child Element)
	Children() []Element
}

// Document is the capability-scoped view of a page.
type Document interface {
	// ElementByID returns the element with the given id.
	ElementByID(id string) (Element, bool)
	// QueryAll returns all elements matching a CSS selector, in document order.
	QueryAll(selector string) []Element
	// Create returns a new detached element.
	Create(tag string) Element
}
