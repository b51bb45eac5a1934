// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"testing"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/dom"
)

const artworkMarkup = `<!DOCTYPE html><html><body>
<img id="artworkHero" src="hero-placeholder.jpg">
<div id="artworkBlurb"><p>stale</p></div>
<div id="artworkCats"><div class="chip">stale</div></div>
<div id="artworkGallery"></div>
<div id="artworkNext"><a class="next-card" href="#">placeholder</a></div>
</body></html>`

const carinoMarkup = `<!DOCTYPE html><html><body>
<img id="carinoHero">
<div id="carinoBlurb"></div>
<div id="carinoGallery"></div>
<div id="carinoNext"></div>
</body></html>`

const bothProjects = `{"projects":[
 {"slug":"artwork","title":"Artwork","page":"artwork.html","hero":"art-hero.jpg","thumb":"art-thumb.jpg",
  "blurb":["b1","b2"],"categories":["Paint","Ink","Clay"],"gallery":["g1.jpg","g2.jpg"]},
 {"slug":"carino","title":"Cariño","page":"carino.html","hero":"c-hero.jpg","thumb":"c-thumb.jpg",
  "blurb":["c1"],"categories":["ignored"],"gallery":["c1.jpg","c2.jpg","c3.jpg"]}
]}`

func TestArtwork_Full(t *testing.T) {
	doc := parse(t, artworkMarkup)
	Artwork(doc, decode(t, bothProjects))

	if src := attr(byID(t, doc, "artworkHero"), "src"); src != "art-hero.jpg" {
		t.Errorf("hero src = %q, want %q", src, "art-hero.jpg")
	}

	blurb := byID(t, doc, "artworkBlurb").Children()
	if len(blurb) != 2 || blurb[0].Text() != "b1" || blurb[1].Tag() != "p" {
		t.Errorf("blurb = %s", dom.OuterHTML(byID(t, doc, "artworkBlurb")))
	}

	cats := byID(t, doc, "artworkCats").Children()
	if len(cats) != 3 {
		t.Fatalf("chips = %d, want 3", len(cats))
	}
	for i, want := range []string{"Paint", "Ink", "Clay"} {
		if !cats[i].HasClass("chip") || cats[i].Text() != want {
			t.Errorf("chip %d = %s", i, dom.OuterHTML(cats[i]))
		}
	}

	imgs := byID(t, doc, "artworkGallery").Children()
	if len(imgs) != 2 {
		t.Fatalf("gallery = %d, want 2", len(imgs))
	}
	for i, want := range []string{"Artwork 1", "Artwork 2"} {
		if attr(imgs[i], "alt") != want || attr(imgs[i], "loading") != "lazy" {
			t.Errorf("gallery image %d = %s", i, dom.OuterHTML(imgs[i]))
		}
	}

	next := byID(t, doc, "artworkNext").Children()
	if len(next) != 1 {
		t.Fatalf("next children = %d, want 1", len(next))
	}
	card := next[0]
	if !card.HasClass("next-card") || attr(card, "href") != "carino.html" {
		t.Errorf("next card = %s", dom.OuterHTML(card))
	}
	parts := card.Children()
	if len(parts) != 2 || attr(parts[0], "src") != "c-thumb.jpg" || attr(parts[0], "alt") != "Cariño" || parts[1].Text() != "Cariño" {
		t.Errorf("next card content = %s", dom.OuterHTML(card))
	}
}

func TestCarino_Full(t *testing.T) {
	doc := parse(t, carinoMarkup)
	Carino(doc, decode(t, bothProjects))

	if src := attr(byID(t, doc, "carinoHero"), "src"); src != "c-hero.jpg" {
		t.Errorf("hero src = %q", src)
	}

	imgs := byID(t, doc, "carinoGallery").Children()
	if len(imgs) != 3 || attr(imgs[2], "alt") != "Cariño 3" || attr(imgs[2], "src") != "c3.jpg" {
		t.Errorf("gallery = %s", dom.OuterHTML(byID(t, doc, "carinoGallery")))
	}

	next := byID(t, doc, "carinoNext").Children()
	if len(next) != 1 || attr(next[0], "href") != "artwork.html" {
		t.Errorf("next = %s", dom.OuterHTML(byID(t, doc, "carinoNext")))
	}
}

func TestCarino_NoCategories(t *testing.T) {
	doc := parse(t, carinoMarkup+`<div id="carinoCats"><div>keep</div></div>`)
	Carino(doc, decode(t, bothProjects))

	cats := byID(t, doc, "carinoCats").Children()
	if len(cats) != 1 || cats[0].Text() != "keep" {
		t.Errorf("carino page touched a category list: %s", dom.OuterHTML(byID(t, doc, "carinoCats")))
	}
}

func TestDetail_MissingProjectIsNoop(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		render func(dom.Document, *content.Normalized)
		json   string
	}{
		{"artwork missing", artworkMarkup, Artwork, `{"projects":[{"slug":"carino"}]}`},
		{"carino missing", carinoMarkup, Carino, `{"projects":[{"slug":"artwork"}]}`},
		{"no projects", artworkMarkup, Artwork, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, tt.markup)
			before := doc.String()

			tt.render(doc, decode(t, tt.json))

			if after := doc.String(); after != before {
				t.Errorf("document changed:\nbefore: %s\nafter:  %s", before, after)
			}
		})
	}
}

func TestArtwork_NextMissingLeavesRegion(t *testing.T) {
	doc := parse(t, artworkMarkup)
	Artwork(doc, decode(t, `{"projects":[{"slug":"artwork","gallery":["g.jpg"]}]}`))

	next := byID(t, doc, "artworkNext").Children()
	if len(next) != 1 || next[0].Text() != "placeholder" {
		t.Errorf("next region changed: %s", dom.OuterHTML(byID(t, doc, "artworkNext")))
	}
	if n := len(byID(t, doc, "artworkGallery").Children()); n != 1 {
		t.Errorf("gallery = %d, want 1", n)
	}
}

func TestArtwork_EmptyNextRegionStaysEmpty(t *testing.T) {
	doc := parse(t, `<html><body><div id="artworkNext"></div></body></html>`)
	Artwork(doc, decode(t, `{"projects":[{"slug":"artwork"}]}`))

	if n := len(byID(t, doc, "artworkNext").Children()); n != 0 {
		t.Errorf("next region children = %d, want 0", n)
	}
}

func TestArtwork_EmptyHeroKeepsPlaceholder(t *testing.T) {
	doc := parse(t, artworkMarkup)
	Artwork(doc, decode(t, `{"projects":[{"slug":"artwork"}]}`))

	if src := attr(byID(t, doc, "artworkHero"), "src"); src != "hero-placeholder.jpg" {
		t.Errorf("hero src = %q, want placeholder", src)
	}
	if n := len(byID(t, doc, "artworkCats").Children()); n != 0 {
		t.Errorf("chips = %d, want 0 after rebuild", n)
	}
}
