// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util holds small filesystem helpers.
package util

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Within reports whether target is base or lies below it. Both paths are
// cleaned and made absolute first, so /site-public is not within /site.
func Within(base, target string) (bool, error) {
	absBase, err := filepath.Abs(filepath.Clean(base))
	if err != nil {
		return false, fmt.Errorf("invalid base path: %w", err)
	}
	absTarget, err := filepath.Abs(filepath.Clean(target))
	if err != nil {
		return false, fmt.Errorf("invalid target path: %w", err)
	}
	return absTarget == absBase || strings.HasPrefix(absTarget, absBase+string(filepath.Separator)), nil
}

// SafeJoin joins a slash-separated path onto base and checks that the
// result does not escape base.
func SafeJoin(base, name string) (string, error) {
	full := filepath.Join(base, filepath.FromSlash(name))
	ok, err := Within(base, full)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("path traversal detected: %q escapes %s", name, base)
	}
	return full, nil
}
