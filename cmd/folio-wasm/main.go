// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build js && wasm

// Command folio-wasm renders the current page in the browser. Build with
// GOOS=js GOARCH=wasm and load it with wasm_exec.js.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/olegiv/folio/internal/browser"
	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/logging"
	"github.com/olegiv/folio/internal/page"
)

func main() {
	logger := logging.New(os.Stderr, "info", false)
	slog.SetDefault(logger)

	doc := browser.NewDocument()
	doc.MarkScripted()
	doc.Ready(func() {
		// Fetching blocks, so it must not run on the event loop callback.
		go func() {
			if err := run(doc); err != nil {
				slog.Error("page load failed", "error", err)
			}
		}()
	})

	select {}
}

func run(doc *browser.Document) error {
	loc, err := url.Parse(browser.Location())
	if err != nil {
		return fmt.Errorf("parsing location: %w", err)
	}
	contentURL := loc.ResolveReference(&url.URL{Path: content.DefaultPath})

	ctx := logging.WithPage(context.Background(), string(page.Resolve(loc.Path)))
	res, err := page.Load(ctx, doc, browser.NewObserver(), content.NewHTTPLoader(contentURL.String()), loc.Path)
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "page rendered", "revealing", res.Revealing, "pills", res.Pills)
	return nil
}
