// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/olegiv/folio/internal/logging"
	"github.com/olegiv/folio/internal/page"
	"github.com/olegiv/folio/internal/util"
)

// Builder renders every page of a site into an output directory and
// copies the remaining site files next to them.
type Builder struct {
	Site   *Site
	OutDir string
	Logger *slog.Logger
}

// NewBuilder creates a Builder writing to outDir.
func NewBuilder(site *Site, outDir string, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{Site: site, OutDir: outDir, Logger: logger}
}

// Build renders all pages in parallel. A content load failure aborts the
// build; pages without a shell in the site are skipped.
func (b *Builder) Build(ctx context.Context) error {
	if err := os.MkdirAll(b.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range page.Pages {
		g.Go(func() error {
			return b.buildPage(gctx, p)
		})
	}
	g.Go(func() error {
		return b.copyFiles(gctx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	b.Logger.InfoContext(ctx, "site built", "output", b.OutDir)
	return nil
}

func (b *Builder) buildPage(ctx context.Context, p page.Page) error {
	ctx = logging.WithPage(ctx, string(p))

	doc, res, err := b.Site.Render(ctx, p)
	if doc == nil && errors.Is(err, fs.ErrNotExist) {
		b.Logger.DebugContext(ctx, "no shell for page, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("building %s: %w", p, err)
	}

	dst, err := util.SafeJoin(b.OutDir, string(p))
	if err != nil {
		return err
	}
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", p, err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", p, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", p, err)
	}

	b.Logger.DebugContext(ctx, LogPageRendered, "revealing", res.Revealing, "pills", res.Pills)
	return nil
}

// copyFiles copies every site file except the page shells at the root.
// Dotfiles, dot-directories and the output directory itself are skipped.
func (b *Builder) copyFiles(ctx context.Context) error {
	out, err := os.Stat(b.OutDir)
	if err != nil {
		return fmt.Errorf("copying site files: %w", err)
	}

	shells := make(map[string]bool, len(page.Pages))
	for _, p := range page.Pages {
		shells[string(p)] = true
	}

	err = fs.WalkDir(b.Site.FS, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if name != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() && sameDir(d, out) {
			return fs.SkipDir
		}

		dst, err := util.SafeJoin(b.OutDir, name)
		if err != nil {
			return err
		}
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		if shells[name] {
			return nil
		}
		return copyFile(b.Site.FS, name, dst)
	})
	if err != nil {
		return fmt.Errorf("copying site files: %w", err)
	}
	return nil
}

// sameDir reports whether the walked directory d is the directory described
// by info. Only entries backed by the OS filesystem can match.
func sameDir(d fs.DirEntry, info fs.FileInfo) bool {
	di, err := d.Info()
	return err == nil && os.SameFile(di, info)
}

func copyFile(fsys fs.FS, name, dst string) error {
	src, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
