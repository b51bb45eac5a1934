// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package site hosts the page renderers outside a browser: it reads page
// shells from a site filesystem, serves rendered pages over HTTP and builds
// them into a static output directory.
package site

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/olegiv/folio/internal/config"
	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/dom"
	"github.com/olegiv/folio/internal/observe"
	"github.com/olegiv/folio/internal/page"
	"github.com/olegiv/folio/web"
)

// Site is a site filesystem holding page shells, assets and usually the
// content document.
type Site struct {
	FS          fs.FS
	ContentPath string // slash-separated, relative to FS
	Loader      content.Loader
}

// Open opens the site described by cfg: the embedded default site when no
// site directory is configured, the directory otherwise. Content comes from
// ContentURL when set, else from ContentPath inside the site.
func Open(cfg *config.Config) (*Site, error) {
	fsys, err := openFS(cfg.SiteDir)
	if err != nil {
		return nil, err
	}
	return New(fsys, cfg.ContentPath, cfg.ContentURL), nil
}

// New creates a Site over fsys. An empty contentURL loads the content
// document from contentPath inside fsys.
func New(fsys fs.FS, contentPath, contentURL string) *Site {
	s := &Site{FS: fsys, ContentPath: CleanPath(contentPath)}
	if contentURL != "" {
		s.Loader = content.NewHTTPLoader(contentURL)
	} else {
		s.Loader = content.NewFSLoader(fsys, s.ContentPath)
	}
	return s
}

func openFS(dir string) (fs.FS, error) {
	if dir == "" {
		sub, err := fs.Sub(web.Site, "site")
		if err != nil {
			return nil, fmt.Errorf("opening embedded site: %w", err)
		}
		return sub, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening site directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening site directory: %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// CleanPath turns a URL or config path into an fs.FS path.
// The root becomes ".".
func CleanPath(p string) string {
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

// Shell returns the raw markup of page p.
func (s *Site) Shell(p page.Page) ([]byte, error) {
	if p == page.Unknown {
		return nil, fmt.Errorf("reading shell: %w", fs.ErrNotExist)
	}
	b, err := fs.ReadFile(s.FS, string(p))
	if err != nil {
		return nil, fmt.Errorf("reading shell %s: %w", p, err)
	}
	return b, nil
}

// ParseShell parses the markup of page p into a fresh document.
func (s *Site) ParseShell(p page.Page) (*dom.HTMLDocument, error) {
	b, err := s.Shell(p)
	if err != nil {
		return nil, err
	}
	doc, err := dom.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("parsing shell %s: %w", p, err)
	}
	return doc, nil
}

// IsContent reports whether the fs path name is the content document.
func (s *Site) IsContent(name string) bool {
	return name == s.ContentPath
}

// Render runs one page load for p against a freshly parsed shell. Hosts
// without a viewport get an inert watcher, so no element is revealed or
// highlighted. When only the content load fails the returned document is
// the untouched shell, alongside the error.
func (s *Site) Render(ctx context.Context, p page.Page) (*dom.HTMLDocument, page.Result, error) {
	doc, err := s.ParseShell(p)
	if err != nil {
		return nil, page.Result{Page: p}, err
	}
	res, err := page.Load(ctx, doc, observe.NewManual(), s.Loader, "/"+string(p))
	return doc, res, err
}
