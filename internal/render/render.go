// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render projects the content document onto page markup.
//
// Every target is looked up by id on its own: a missing element skips that
// field and nothing else. Renderers never return errors.
package render

import (
	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/dom"
)

// paragraphs rebuilds the element with the given id as one <p> per entry.
func paragraphs(doc dom.Document, id string, texts []string) {
	box, ok := dom.Clear(doc, id)
	if !ok {
		return
	}
	for _, t := range texts {
		box.Append(dom.El(doc, "p", "", t))
	}
}

// lazyImage creates an <img> that loads lazily.
func lazyImage(doc dom.Document, src, alt string) dom.Element {
	img := doc.Create("img")
	img.SetAttr("src", src)
	img.SetAttr("alt", alt)
	img.SetAttr("loading", "lazy")
	return img
}

// externalLink creates an <a> that opens in a new browsing context without
// giving it access to the opener.
func externalLink(doc dom.Document, href string) dom.Element {
	a := doc.Create("a")
	a.SetAttr("href", href)
	a.SetAttr("target", "_blank")
	a.SetAttr("rel", "noopener")
	return a
}

// nextCard fills the "next project" region of a detail page. When the
// complementary project is missing the region is left as it is.
func nextCard(doc dom.Document, id string, c *content.Normalized, slug string) {
	box, ok := doc.ElementByID(id)
	if !ok {
		return
	}
	next, ok := c.Project(slug)
	if !ok {
		return
	}

	box.Clear()
	a := doc.Create("a")
	a.SetClass("next-card")
	a.SetAttr("href", next.Page)
	a.Append(lazyImage(doc, next.Thumb, next.Title))
	a.Append(dom.El(doc, "div", "", next.Title))
	box.Append(a)
}
