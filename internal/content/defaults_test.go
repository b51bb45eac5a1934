// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize_Empty(t *testing.T) {
	got := Normalize(&Document{})

	want := &Normalized{
		Document: Document{
			Name:          DefaultName,
			AboutHeadline: DefaultAboutHeadline,
			Contact:       Contact{LinkedIn: DefaultLinkedIn},
			Footer: Footer{
				Left:   DefaultFooterLeft,
				Middle: DefaultFooterMiddle,
				Right:  DefaultFooterRight,
			},
		},
		EmailLabel: DefaultEmailLabel,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize(empty) mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_Nil(t *testing.T) {
	got := Normalize(nil)
	if got.Name != DefaultName {
		t.Errorf("Normalize(nil).Name = %q, want %q", got.Name, DefaultName)
	}
}

func TestNormalize_KeepsValues(t *testing.T) {
	doc := &Document{
		Name:          "Jane Doe",
		Subtitles:     []string{"Designer"},
		AboutHeadline: "Hello",
		Contact:       Contact{Email: "jane@example.com", LinkedIn: "https://linkedin.com/in/jane"},
		Footer:        Footer{Left: "L", Middle: "M", Right: "R"},
	}

	got := Normalize(doc)

	want := &Normalized{Document: *doc, EmailLabel: "jane@example.com"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_EmptyStringsFallBack(t *testing.T) {
	got := Normalize(&Document{Footer: Footer{Left: "", Middle: "Works", Right: ""}})

	if got.Footer.Left != DefaultFooterLeft {
		t.Errorf("Footer.Left = %q, want %q", got.Footer.Left, DefaultFooterLeft)
	}
	if got.Footer.Middle != "Works" {
		t.Errorf("Footer.Middle = %q, want %q", got.Footer.Middle, "Works")
	}
	if got.Footer.Right != DefaultFooterRight {
		t.Errorf("Footer.Right = %q, want %q", got.Footer.Right, DefaultFooterRight)
	}
}

func TestNormalize_DoesNotModifyInput(t *testing.T) {
	doc := &Document{}
	_ = Normalize(doc)

	if doc.Name != "" || doc.Footer.Left != "" || doc.Contact.LinkedIn != "" {
		t.Errorf("Normalize modified its input: %+v", doc)
	}
}
