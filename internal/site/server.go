// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package site

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/handler"
	"github.com/olegiv/folio/internal/logging"
	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/page"
	"github.com/olegiv/folio/internal/version"
)

// Log messages shared by the server and the builder.
const (
	LogContentLoadFailed = "content load failed"
	LogPageRendered      = "page rendered"
)

// ServerOptions configures NewServer.
type ServerOptions struct {
	Logger        *slog.Logger
	IsDevelopment bool
	RateLimit     float64 // requests per second per client; zero disables
	RateBurst     int
	StaticMaxAge  int // seconds; Cache-Control max-age for assets
	Timeout       time.Duration
	Version       version.Info
}

// Server serves a site: known pages are rendered per request, the content
// document is served uncached and every other file is served as is.
type Server struct {
	site    *Site
	logger  *slog.Logger
	router  chi.Router
	static  http.Handler
	content http.Handler
}

// NewServer creates the HTTP handler for site.
func NewServer(site *Site, opts ServerOptions) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.StaticMaxAge == 0 {
		opts.StaticMaxAge = 3600
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}

	files := http.FileServerFS(site.FS)
	s := &Server{
		site:    site,
		logger:  opts.Logger,
		static:  middleware.StaticCache(opts.StaticMaxAge)(files),
		content: middleware.NoStore(files),
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.LogContext)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(opts.Timeout))
	if opts.RateLimit > 0 {
		r.Use(middleware.NewRateLimiter(opts.RateLimit, opts.RateBurst).Middleware)
	}
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(opts.IsDevelopment)))

	health := handler.NewHealthHandler(site.Loader, site, opts.Version, opts.IsDevelopment)
	r.Get("/health", health.Health)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Get("/*", s.serve)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	name := CleanPath(r.URL.Path)
	if s.site.IsContent(name) {
		s.content.ServeHTTP(w, r)
		return
	}
	if p, ok := s.pageFor(name, r.URL.Path); ok {
		s.servePage(w, r, p)
		return
	}
	s.static.ServeHTTP(w, r)
}

// pageFor resolves a request path to a page. Only the site root and the
// page files directly under it render; everything else is left to the file
// server.
func (s *Server) pageFor(name, urlPath string) (page.Page, bool) {
	p := page.Resolve(urlPath)
	if p == page.Unknown {
		return p, false
	}
	if name != "." && !strings.EqualFold(name, string(p)) {
		return p, false
	}
	return p, true
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request, p page.Page) {
	ctx := logging.WithPage(r.Context(), string(p))

	doc, res, err := s.site.Render(ctx, p)
	switch {
	case doc == nil && errors.Is(err, fs.ErrNotExist):
		http.NotFound(w, r)
		return
	case doc == nil:
		s.logger.ErrorContext(ctx, "rendering page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	case err != nil:
		// The shell goes out unpopulated, as a browser would leave it.
		s.logger.ErrorContext(ctx, LogContentLoadFailed, "error", err,
			"unavailable", errors.Is(err, content.ErrContentUnavailable))
	default:
		s.logger.DebugContext(ctx, LogPageRendered, "revealing", res.Revealing, "pills", res.Pills)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		s.logger.ErrorContext(ctx, "writing page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}
