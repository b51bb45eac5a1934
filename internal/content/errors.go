// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

// Error represents an error type for content loading.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrContentUnavailable indicates the document could not be fetched.
	ErrContentUnavailable Error = "content unavailable"

	// ErrContentMalformed indicates the document could not be parsed.
	ErrContentMalformed Error = "content malformed"
)
