// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the well-known location of the content document.
const DefaultPath = "content.json"

// Format is the encoding of a content document.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Loader loads the content document once per page load.
type Loader interface {
	Load(ctx context.Context) (*Normalized, error)
}

// DetectFormat picks the format from a resource name and an optional
// Content-Type. Anything that is not recognizably YAML is JSON.
func DetectFormat(name, contentType string) Format {
	if contentType != "" {
		if mt, _, err := mime.ParseMediaType(contentType); err == nil && strings.Contains(mt, "yaml") {
			return FormatYAML
		}
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Decode parses a document and resolves its defaults.
// Any parse failure is reported as ErrContentMalformed.
func Decode(r io.Reader, format Format) (*Normalized, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrContentUnavailable, err)
	}

	var doc Document
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(&doc)
		if err == nil && dec.More() {
			err = errors.New("trailing data after document")
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentMalformed, err)
	}

	return Normalize(&doc), nil
}

// HTTPLoader fetches the document over HTTP, bypassing intermediate caches.
// It makes exactly one attempt and applies no timeout of its own.
type HTTPLoader struct {
	Client *http.Client
	URL    string
}

// NewHTTPLoader creates an HTTPLoader using http.DefaultClient.
func NewHTTPLoader(url string) *HTTPLoader {
	return &HTTPLoader{Client: http.DefaultClient, URL: url}
}

// Load implements Loader.
func (l *HTTPLoader) Load(ctx context.Context) (*Normalized, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %v", ErrContentUnavailable, l.URL, err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrContentUnavailable, l.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s not found (status %s)", ErrContentUnavailable, l.URL, resp.Status)
	}

	return Decode(resp.Body, DetectFormat(req.URL.Path, resp.Header.Get("Content-Type")))
}

// FSLoader reads the document from a filesystem, such as the site directory.
type FSLoader struct {
	FS   fs.FS
	Path string
}

// NewFSLoader creates an FSLoader for the given path within fsys.
func NewFSLoader(fsys fs.FS, name string) *FSLoader {
	return &FSLoader{FS: fsys, Path: name}
}

// Load implements Loader.
func (l *FSLoader) Load(ctx context.Context) (*Normalized, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}

	f, err := l.FS.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found: %v", ErrContentUnavailable, l.Path, err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, DetectFormat(l.Path, ""))
}
