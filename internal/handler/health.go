// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides HTTP handlers that sit beside page rendering.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/page"
	"github.com/olegiv/folio/internal/version"
)

// Check status values.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// checkTimeout bounds one content load made by a health check.
const checkTimeout = 5 * time.Second

// ShellReader reads page shells.
type ShellReader interface {
	Shell(p page.Page) ([]byte, error)
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	loader    content.Loader
	shells    ShellReader
	version   version.Info
	verbose   bool
	startTime time.Time
}

// NewHealthHandler creates a new health handler. Runtime figures are only
// reported when verbose is set.
func NewHealthHandler(loader content.Loader, shells ShellReader, info version.Info, verbose bool) *HealthHandler {
	return &HealthHandler{
		loader:    loader,
		shells:    shells,
		version:   info,
		verbose:   verbose,
		startTime: time.Now(),
	}
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
	System    *SystemInfo      `json:"system,omitempty"`
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// SystemInfo contains system-level information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutines"`
	NumCPU       int    `json:"num_cpus"`
	MemAlloc     string `json:"mem_alloc"`
	MemSys       string `json:"mem_sys"`
}

// Health handles GET /health: content and shell checks, plus runtime
// figures with ?verbose=true when the handler allows it.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]Check{
		"content": h.checkContent(r.Context()),
		"shells":  h.checkShells(),
	}

	status := HealthStatus{
		Status:    StatusHealthy,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version.Version,
		Checks:    checks,
	}
	for _, c := range checks {
		if c.Status != StatusHealthy {
			status.Status = "degraded"
		}
	}
	if h.verbose && r.URL.Query().Get("verbose") == "true" {
		status.System = systemInfo()
	}

	code := http.StatusOK
	if status.Status != StatusHealthy {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

// Liveness handles GET /health/live - simple liveness check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// Readiness handles GET /health/ready. The server is ready once the
// content document loads.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	c := h.checkContent(r.Context())
	if c.Status != StatusHealthy {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "not_ready",
			"message": c.Message,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *HealthHandler) checkContent(ctx context.Context) Check {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	start := time.Now()
	c, err := h.loader.Load(ctx)
	latency := time.Since(start).String()
	if err != nil {
		return Check{Status: StatusUnhealthy, Message: err.Error(), Latency: latency}
	}
	return Check{
		Status:  StatusHealthy,
		Message: fmt.Sprintf("%d projects", len(c.Projects)),
		Latency: latency,
	}
}

func (h *HealthHandler) checkShells() Check {
	var missing []page.Page
	for _, p := range page.Pages {
		if _, err := h.shells.Shell(p); err != nil {
			missing = append(missing, p)
		}
	}
	if len(missing) == len(page.Pages) {
		return Check{Status: StatusUnhealthy, Message: "no page shells"}
	}
	if len(missing) > 0 {
		return Check{Status: StatusHealthy, Message: fmt.Sprintf("missing %v", missing)}
	}
	return Check{Status: StatusHealthy}
}

func systemInfo() *SystemInfo {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &SystemInfo{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     formatBytes(m.Alloc),
		MemSys:       formatBytes(m.Sys),
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// formatBytes converts bytes to a human-readable string.
func formatBytes(bytes uint64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
