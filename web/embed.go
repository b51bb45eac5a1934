// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package web embeds the default site: page shells, assets and a sample
// content document. Run go generate to build assets/folio.wasm, the
// browser module the shells load through assets/folio.js.
package web

import "embed"

//go:generate env GOOS=js GOARCH=wasm go build -trimpath -o site/assets/folio.wasm ../cmd/folio-wasm

// Site holds the default site rooted at "site".
//
//go:embed all:site
var Site embed.FS
