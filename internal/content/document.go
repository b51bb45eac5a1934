// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content defines the portfolio content document and loads it.
package content

// Well-known project slugs.
const (
	SlugArtwork = "artwork"
	SlugCarino  = "carino"
)

// Document is the portfolio content document. It is read-only once loaded.
type Document struct {
	Name            string      `json:"name" yaml:"name"`
	Subtitles       []string    `json:"subtitles" yaml:"subtitles"`
	AboutHeadline   string      `json:"aboutHeadline" yaml:"aboutHeadline"`
	AboutParagraphs []string    `json:"aboutParagraphs" yaml:"aboutParagraphs"`
	AboutImage      string      `json:"aboutImage" yaml:"aboutImage"`
	Projects        []Project   `json:"projects" yaml:"projects"`
	Awards          []Award     `json:"awards" yaml:"awards"`
	Education       []Education `json:"education" yaml:"education"`
	Contact         Contact     `json:"contact" yaml:"contact"`
	Footer          Footer      `json:"footer" yaml:"footer"`
}

// Project is a portfolio project with its own detail page.
type Project struct {
	Slug       string   `json:"slug" yaml:"slug"`
	Title      string   `json:"title" yaml:"title"`
	Subtitle   string   `json:"subtitle" yaml:"subtitle"`
	Page       string   `json:"page" yaml:"page"`
	Cover      string   `json:"cover" yaml:"cover"`
	Hero       string   `json:"hero" yaml:"hero"`
	Thumb      string   `json:"thumb" yaml:"thumb"`
	Blurb      []string `json:"blurb" yaml:"blurb"`
	Categories []string `json:"categories" yaml:"categories"`
	Gallery    []string `json:"gallery" yaml:"gallery"`
}

// Award is one row of the awards table.
type Award struct {
	Org  string `json:"org" yaml:"org"`
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
	Year int    `json:"year" yaml:"year"`
}

// Education is one education card.
type Education struct {
	School     string `json:"school" yaml:"school"`
	YearLine   string `json:"yearLine" yaml:"yearLine"`
	DetailLine string `json:"detailLine" yaml:"detailLine"`
}

// Contact holds the contact panel entries.
type Contact struct {
	Email    string `json:"email" yaml:"email"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
}

// Footer holds the three footer slots.
type Footer struct {
	Left   string `json:"left" yaml:"left"`
	Middle string `json:"middle" yaml:"middle"`
	Right  string `json:"right" yaml:"right"`
}

// Project returns the first project with the given slug.
func (d *Document) Project(slug string) (*Project, bool) {
	for i := range d.Projects {
		if d.Projects[i].Slug == slug {
			return &d.Projects[i], true
		}
	}
	return nil, false
}

// Featured returns the project shown on the landing page: the artwork
// project, or the first project when there is none.
func (d *Document) Featured() (*Project, bool) {
	if p, ok := d.Project(SlugArtwork); ok {
		return p, true
	}
	if len(d.Projects) > 0 {
		return &d.Projects[0], true
	}
	return nil, false
}
