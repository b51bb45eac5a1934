// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"strconv"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/dom"
)

// detail describes one project detail page.
type detail struct {
	slug       string
	next       string
	prefix     string // element id prefix, e.g. "artwork" -> "artworkHero"
	altLabel   string
	categories bool
}

var (
	artworkPage = detail{
		slug:       content.SlugArtwork,
		next:       content.SlugCarino,
		prefix:     "artwork",
		altLabel:   "Artwork",
		categories: true,
	}
	carinoPage = detail{
		slug:     content.SlugCarino,
		next:     content.SlugArtwork,
		prefix:   "carino",
		altLabel: "Cariño",
	}
)

// Artwork renders the artwork detail page. It does nothing when the
// document has no artwork project.
func Artwork(doc dom.Document, c *content.Normalized) {
	renderDetail(doc, c, artworkPage)
}

// Carino renders the Cariño detail page. It does nothing when the
// document has no carino project.
func Carino(doc dom.Document, c *content.Normalized) {
	renderDetail(doc, c, carinoPage)
}

func renderDetail(doc dom.Document, c *content.Normalized, d detail) {
	p, ok := c.Project(d.slug)
	if !ok {
		return
	}

	dom.SetImage(doc, d.prefix+"Hero", p.Hero)
	paragraphs(doc, d.prefix+"Blurb", p.Blurb)

	if d.categories {
		if cats, ok := dom.Clear(doc, d.prefix+"Cats"); ok {
			for _, cat := range p.Categories {
				cats.Append(dom.El(doc, "div", "chip", cat))
			}
		}
	}

	if g, ok := dom.Clear(doc, d.prefix+"Gallery"); ok {
		for i, src := range p.Gallery {
			g.Append(lazyImage(doc, src, d.altLabel+" "+strconv.Itoa(i+1)))
		}
	}

	nextCard(doc, d.prefix+"Next", c, d.next)
}
