// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

// Defaults used for fields missing from the document.
const (
	DefaultName          = "ROBERT GAMA"
	DefaultAboutHeadline = "Student exploring business and sustainability"
	DefaultEmailLabel    = "email@example.com"
	DefaultLinkedIn      = "#"
	DefaultFooterLeft    = "Designed by Robert"
	DefaultFooterMiddle  = "About • Works"
	DefaultFooterRight   = "Made in HTML/CSS"
)

// Normalized is a Document with every default resolved.
// Renderers read only from a Normalized value.
type Normalized struct {
	Document

	// EmailLabel is the text shown for the email contact; Contact.Email
	// stays as loaded so the mailto link is built from the real address.
	EmailLabel string
}

// Normalize resolves defaults in a single pass. The input is not modified.
func Normalize(d *Document) *Normalized {
	n := &Normalized{}
	if d != nil {
		n.Document = *d
	}

	n.Name = orDefault(n.Name, DefaultName)
	n.AboutHeadline = orDefault(n.AboutHeadline, DefaultAboutHeadline)
	n.EmailLabel = orDefault(n.Contact.Email, DefaultEmailLabel)
	n.Contact.LinkedIn = orDefault(n.Contact.LinkedIn, DefaultLinkedIn)
	n.Footer.Left = orDefault(n.Footer.Left, DefaultFooterLeft)
	n.Footer.Middle = orDefault(n.Footer.Middle, DefaultFooterMiddle)
	n.Footer.Right = orDefault(n.Footer.Right, DefaultFooterRight)

	return n
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
