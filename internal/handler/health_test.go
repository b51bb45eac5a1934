// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/page"
	"github.com/olegiv/folio/internal/version"
)

type stubLoader struct {
	err error
}

func (l stubLoader) Load(context.Context) (*content.Normalized, error) {
	if l.err != nil {
		return nil, l.err
	}
	return content.Normalize(&content.Document{Projects: []content.Project{{Slug: "artwork"}}}), nil
}

type stubShells map[page.Page]bool

func (s stubShells) Shell(p page.Page) ([]byte, error) {
	if !s[p] {
		return nil, fs.ErrNotExist
	}
	return []byte("<html></html>"), nil
}

var allShells = stubShells{page.Index: true, page.Artwork: true, page.Carino: true}

func newTestHealthHandler(loadErr error, shells stubShells) *HealthHandler {
	return NewHealthHandler(stubLoader{err: loadErr}, shells, version.Info{Version: "v1.2.3"}, true)
}

func decodeStatus(t *testing.T, w *httptest.ResponseRecorder) HealthStatus {
	t.Helper()
	var status HealthStatus
	if err := json.NewDecoder(w.Body).Decode(&status); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return status
}

func TestHealthHandler_Health(t *testing.T) {
	h := newTestHealthHandler(nil, allShells)

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status code = %d; want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q; want application/json", ct)
	}

	status := decodeStatus(t, w)
	if status.Status != StatusHealthy {
		t.Errorf("status = %q; want %q", status.Status, StatusHealthy)
	}
	if status.Version != "v1.2.3" {
		t.Errorf("version = %q; want v1.2.3", status.Version)
	}
	if got := status.Checks["content"]; got.Status != StatusHealthy || got.Message != "1 projects" {
		t.Errorf("content check = %+v", got)
	}
	if got := status.Checks["shells"]; got.Status != StatusHealthy {
		t.Errorf("shells check = %+v", got)
	}
	if status.System != nil {
		t.Error("system info should only be present with verbose=true")
	}
}

func TestHealthHandler_Health_Verbose(t *testing.T) {
	h := newTestHealthHandler(nil, allShells)

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/health?verbose=true", nil))

	status := decodeStatus(t, w)
	if status.System == nil {
		t.Fatal("expected system info")
	}
	if status.System.GoVersion == "" || status.System.NumCPU == 0 {
		t.Errorf("system info incomplete: %+v", status.System)
	}
}

func TestHealthHandler_Health_VerboseDisabled(t *testing.T) {
	h := NewHealthHandler(stubLoader{}, allShells, version.Info{Version: "v1.2.3"}, false)

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/health?verbose=true", nil))

	status := decodeStatus(t, w)
	if status.System != nil {
		t.Errorf("system info reported while verbose is disabled: %+v", status.System)
	}
	if status.Status != StatusHealthy {
		t.Errorf("status = %q, want %q", status.Status, StatusHealthy)
	}
}

func TestHealthHandler_Health_Degraded(t *testing.T) {
	tests := []struct {
		name      string
		loadErr   error
		shells    stubShells
		wantCheck string
	}{
		{
			name:      "content unavailable",
			loadErr:   fmt.Errorf("%w: content.json not found", content.ErrContentUnavailable),
			shells:    allShells,
			wantCheck: "content",
		},
		{
			name:      "no shells",
			shells:    stubShells{},
			wantCheck: "shells",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHealthHandler(tt.loadErr, tt.shells)

			w := httptest.NewRecorder()
			h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			if w.Code != http.StatusServiceUnavailable {
				t.Errorf("status code = %d; want %d", w.Code, http.StatusServiceUnavailable)
			}
			status := decodeStatus(t, w)
			if status.Status != "degraded" {
				t.Errorf("status = %q; want degraded", status.Status)
			}
			if got := status.Checks[tt.wantCheck]; got.Status != StatusUnhealthy {
				t.Errorf("%s check = %+v; want unhealthy", tt.wantCheck, got)
			}
		})
	}
}

func TestHealthHandler_Health_SomeShellsMissing(t *testing.T) {
	h := newTestHealthHandler(nil, stubShells{page.Index: true})

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	status := decodeStatus(t, w)
	got := status.Checks["shells"]
	if got.Status != StatusHealthy {
		t.Errorf("shells check = %+v; want healthy", got)
	}
	if got.Message != "missing [artwork.html carino.html]" {
		t.Errorf("shells message = %q", got.Message)
	}
}

func TestHealthHandler_Liveness(t *testing.T) {
	h := newTestHealthHandler(content.ErrContentMalformed, nil)

	w := httptest.NewRecorder()
	h.Liveness(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status code = %d; want %d", w.Code, http.StatusOK)
	}
	if body := w.Body.String(); body != "{\"status\":\"alive\"}\n" {
		t.Errorf("body = %q", body)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name     string
		loadErr  error
		wantCode int
		wantBody string
	}{
		{"ready", nil, http.StatusOK, "ready"},
		{"malformed content", content.ErrContentMalformed, http.StatusServiceUnavailable, "not_ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHealthHandler(tt.loadErr, allShells)

			w := httptest.NewRecorder()
			h.Readiness(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			if w.Code != tt.wantCode {
				t.Errorf("status code = %d; want %d", w.Code, tt.wantCode)
			}
			var resp map[string]string
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp["status"] != tt.wantBody {
				t.Errorf("status = %q; want %q", resp["status"], tt.wantBody)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{0, "0 B"},
		{500, "500 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{1073741824, "1.00 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("formatBytes(%d) = %q; want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
