// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers for folio.
package testutil

import (
	"bytes"
	"log/slog"
	"os"
	"testing/fstest"

	"github.com/olegiv/folio/internal/logging"
)

// TestLoggerSilent creates a completely silent test logger (error level only).
func TestLoggerSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// CaptureLogger returns a debug-level development logger writing to the
// returned buffer, with page and request id attributes.
func CaptureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.New(&buf, "debug", true), &buf
}

// IndexShell is a minimal index page carrying every id the index renderer
// fills, two pills and two reveal targets.
const IndexShell = `<!DOCTYPE html><html><head><title>t</title></head><body>
<header data-reveal><h1 id="siteName"></h1><div id="heroSubtitles"></div></header>
<nav><a class="pill" data-section="about">About</a><a class="pill" data-section="contact">Contact</a></nav>
<section id="about" data-reveal><img id="aboutImage"><h2 id="aboutHeadline"></h2><div id="aboutText"></div></section>
<div id="projectFeature"></div><div id="awardsRows"></div><div id="educationCards"></div>
<section id="contact"><div id="contactGrid"></div></section>
<footer><div id="footerLeft"></div><div id="footerLinks"></div><div id="footerRight"></div></footer>
</body></html>`

// ArtworkShell is a minimal artwork detail page.
const ArtworkShell = `<!DOCTYPE html><html><head><title>t</title></head><body>
<img id="artworkHero" data-reveal><div id="artworkCats"></div><div id="artworkBlurb"></div>
<div id="artworkGallery"></div><div id="artworkNext"></div>
</body></html>`

// CarinoShell is a minimal Cariño detail page.
const CarinoShell = `<!DOCTYPE html><html><head><title>t</title></head><body>
<img id="carinoHero" data-reveal><div id="carinoBlurb"></div>
<div id="carinoGallery"></div><div id="carinoNext"></div>
</body></html>`

// ContentJSON is a complete content document.
const ContentJSON = `{
 "name": "Ada Lovelace",
 "subtitles": ["Analyst", "Writer"],
 "aboutHeadline": "Notes on the engine",
 "aboutParagraphs": ["First.", "Second."],
 "aboutImage": "img/me.jpg",
 "projects": [
  {"slug": "artwork", "title": "Artwork", "subtitle": "Pieces", "page": "artwork.html",
   "cover": "img/a-cover.jpg", "thumb": "img/a-thumb.jpg", "hero": "img/a-hero.jpg",
   "categories": ["Ink"], "blurb": ["About the artwork."], "gallery": ["img/a1.jpg", "img/a2.jpg"]},
  {"slug": "carino", "title": "Cariño", "page": "carino.html",
   "thumb": "img/c-thumb.jpg", "hero": "img/c-hero.jpg", "gallery": ["img/c1.jpg"]}
 ],
 "awards": [{"org": "Society", "name": "Medal", "url": "https://example.org", "year": 1843}],
 "education": [{"school": "Home", "yearLine": "1830", "detailLine": "Mathematics"}],
 "contact": {"email": "ada@example.com", "linkedin": "https://example.com/ada"},
 "footer": {"left": "L", "middle": "M", "right": "R"}
}`

// SiteFS returns a site with the three page shells, a stylesheet and the
// given content document at content.json. An empty doc omits the file.
func SiteFS(doc string) fstest.MapFS {
	fsys := fstest.MapFS{
		"index.html":       {Data: []byte(IndexShell)},
		"artwork.html":     {Data: []byte(ArtworkShell)},
		"carino.html":      {Data: []byte(CarinoShell)},
		"assets/site.css":  {Data: []byte("body{}")},
		"assets/.DS_Store": {Data: []byte("x")},
	}
	if doc != "" {
		fsys["content.json"] = &fstest.MapFile{Data: []byte(doc)}
	}
	return fsys
}
