// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package page decides which page is being loaded and drives one page load:
// scroll observers, content load, then rendering.
package page

import (
	"context"
	"fmt"
	"strings"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/dom"
	"github.com/olegiv/folio/internal/observe"
	"github.com/olegiv/folio/internal/render"
)

// Page identifies one of the site's pages.
type Page string

// Known pages, named by their file.
const (
	Index   Page = "index.html"
	Artwork Page = "artwork.html"
	Carino  Page = "carino.html"
	Unknown Page = ""
)

// Pages lists the known pages.
var Pages = []Page{Index, Artwork, Carino}

// Resolve maps a location path to a page using its final segment,
// case-insensitively. An empty segment is the index page.
func Resolve(path string) Page {
	seg := path[strings.LastIndex(path, "/")+1:]
	if seg == "" {
		seg = string(Index)
	}
	switch Page(strings.ToLower(seg)) {
	case Index:
		return Index
	case Artwork:
		return Artwork
	case Carino:
		return Carino
	}
	return Unknown
}

// Result describes what one page load did.
type Result struct {
	Page      Page
	Revealing int  // elements watched by the reveal observer
	Pills     bool // pill highlighter active
	Rendered  bool // a renderer ran
}

// Load runs one page load for the document at path. The reveal observer
// starts before the content is loaded; no renderer runs unless the load
// succeeds, and a load failure is returned as is.
func Load(ctx context.Context, doc dom.Document, w observe.Watcher, loader content.Loader, path string) (Result, error) {
	res := Result{Page: Resolve(path)}
	res.Revealing = observe.StartReveal(doc, w)

	c, err := loader.Load(ctx)
	if err != nil {
		return res, fmt.Errorf("loading content for %s: %w", path, err)
	}

	switch res.Page {
	case Index:
		render.Index(doc, c)
		res.Pills = observe.StartPills(doc, w)
		res.Rendered = true
	case Artwork:
		render.Artwork(doc, c)
		res.Rendered = true
	case Carino:
		render.Carino(doc, c)
		res.Rendered = true
	}

	return res, nil
}
