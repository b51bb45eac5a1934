// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/dom"
	"github.com/olegiv/folio/internal/observe"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		path string
		want Page
	}{
		{"", Index},
		{"/", Index},
		{"/index.html", Index},
		{"/INDEX.HTML", Index},
		{"/portfolio/", Index},
		{"/portfolio/index.html", Index},
		{"/artwork.html", Artwork},
		{"/Artwork.HTML", Artwork},
		{"/deep/path/carino.html", Carino},
		{"carino.html", Carino},
		{"/cariño.html", Unknown},
		{"/about.html", Unknown},
		{"/artwork", Unknown},
		{"/artwork.html/", Index},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Resolve(tt.path); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

type stubLoader struct {
	doc   *content.Normalized
	err   error
	calls int
}

func (l *stubLoader) Load(context.Context) (*content.Normalized, error) {
	l.calls++
	return l.doc, l.err
}

func okLoader(t *testing.T, js string) *stubLoader {
	t.Helper()
	c, err := content.Decode(strings.NewReader(js), content.FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return &stubLoader{doc: c}
}

const shell = `<!DOCTYPE html><html><body>
<nav><a class="pill" data-section="about">About</a></nav>
<h1 id="siteName" data-reveal>placeholder</h1>
<section id="about" data-reveal></section>
<div id="artworkGallery"></div>
<div id="carinoGallery"></div>
</body></html>`

const doc2 = `{"name":"jane","projects":[
 {"slug":"artwork","gallery":["a.jpg"]},
 {"slug":"carino","gallery":["c1.jpg","c2.jpg"]}]}`

func parse(t *testing.T) *dom.HTMLDocument {
	t.Helper()
	d, err := dom.ParseString(shell)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return d
}

func text(d dom.Document, id string) string {
	e, _ := d.ElementByID(id)
	return e.Text()
}

func children(d dom.Document, id string) int {
	e, _ := d.ElementByID(id)
	return len(e.Children())
}

func TestLoad_Dispatch(t *testing.T) {
	tests := []struct {
		path         string
		wantName     string
		wantArtwork  int
		wantCarino   int
		wantPills    bool
		wantRendered bool
	}{
		{"/", "JANE", 0, 0, true, true},
		{"/index.html", "JANE", 0, 0, true, true},
		{"/artwork.html", "placeholder", 1, 0, false, true},
		{"/carino.html", "placeholder", 0, 2, false, true},
		{"/other.html", "placeholder", 0, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			d := parse(t)
			w := observe.NewManual()
			loader := okLoader(t, doc2)

			res, err := Load(context.Background(), d, w, loader, tt.path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}

			if loader.calls != 1 {
				t.Errorf("loader called %d times, want 1", loader.calls)
			}
			if got := text(d, "siteName"); got != tt.wantName {
				t.Errorf("siteName = %q, want %q", got, tt.wantName)
			}
			if got := children(d, "artworkGallery"); got != tt.wantArtwork {
				t.Errorf("artwork gallery = %d, want %d", got, tt.wantArtwork)
			}
			if got := children(d, "carinoGallery"); got != tt.wantCarino {
				t.Errorf("carino gallery = %d, want %d", got, tt.wantCarino)
			}
			if res.Pills != tt.wantPills {
				t.Errorf("Pills = %v, want %v", res.Pills, tt.wantPills)
			}
			if res.Rendered != tt.wantRendered {
				t.Errorf("Rendered = %v, want %v", res.Rendered, tt.wantRendered)
			}
			if res.Revealing != 2 {
				t.Errorf("Revealing = %d, want 2 on every page", res.Revealing)
			}

			wantRegs := 1
			if tt.wantPills {
				wantRegs = 2
			}
			if got := len(w.Registrations()); got != wantRegs {
				t.Errorf("registrations = %d, want %d", got, wantRegs)
			}
		})
	}
}

func TestLoad_FailureAbortsRendering(t *testing.T) {
	for _, cause := range []error{content.ErrContentUnavailable, content.ErrContentMalformed} {
		t.Run(cause.Error(), func(t *testing.T) {
			d := parse(t)
			before := d.String()
			w := observe.NewManual()
			loader := &stubLoader{err: fmt.Errorf("%w: content.json not found", cause)}

			res, err := Load(context.Background(), d, w, loader, "/")
			if !errors.Is(err, cause) {
				t.Fatalf("Load() error = %v, want %v", err, cause)
			}
			if res.Rendered || res.Pills {
				t.Errorf("result = %+v, want nothing rendered", res)
			}
			if after := d.String(); after != before {
				t.Errorf("document changed after failed load")
			}

			// The reveal observer is already running.
			if len(w.Registrations()) != 1 {
				t.Errorf("registrations = %d, want the reveal watch only", len(w.Registrations()))
			}
		})
	}
}

func TestLoad_RevealStartsBeforeContent(t *testing.T) {
	d := parse(t)
	w := observe.NewManual()
	var watchedAtLoad int

	loader := loaderFunc(func(context.Context) (*content.Normalized, error) {
		watchedAtLoad = w.Watched()
		return content.Normalize(nil), nil
	})

	if _, err := Load(context.Background(), d, w, loader, "/artwork.html"); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if watchedAtLoad != 2 {
		t.Errorf("watched elements when loading = %d, want 2", watchedAtLoad)
	}
}

type loaderFunc func(context.Context) (*content.Normalized, error)

func (f loaderFunc) Load(ctx context.Context) (*content.Normalized, error) { return f(ctx) }
