// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/dom"
)

// Landing page element ids.
const (
	IDSiteName       = "siteName"
	IDHeroSubtitles  = "heroSubtitles"
	IDAboutHeadline  = "aboutHeadline"
	IDAboutText      = "aboutText"
	IDAboutImage     = "aboutImage"
	IDProjectFeature = "projectFeature"
	IDAwardsRows     = "awardsRows"
	IDEducationCards = "educationCards"
	IDContactGrid    = "contactGrid"
	IDFooterLeft     = "footerLeft"
	IDFooterLinks    = "footerLinks"
	IDFooterRight    = "footerRight"
)

var upper = cases.Upper(language.Und)

// Index renders the landing page.
func Index(doc dom.Document, c *content.Normalized) {
	dom.SetText(doc, IDSiteName, upper.String(c.Name))

	if subs, ok := dom.Clear(doc, IDHeroSubtitles); ok {
		for _, s := range c.Subtitles {
			subs.Append(dom.El(doc, "div", "subitem", s))
		}
	}

	dom.SetText(doc, IDAboutHeadline, c.AboutHeadline)
	paragraphs(doc, IDAboutText, c.AboutParagraphs)
	dom.SetImage(doc, IDAboutImage, c.AboutImage)

	feature(doc, c)
	awards(doc, c.Awards)
	education(doc, c.Education)
	contact(doc, c)

	dom.SetText(doc, IDFooterLeft, c.Footer.Left)
	dom.SetText(doc, IDFooterLinks, c.Footer.Middle)
	dom.SetText(doc, IDFooterRight, c.Footer.Right)
}

func feature(doc dom.Document, c *content.Normalized) {
	box, ok := dom.Clear(doc, IDProjectFeature)
	if !ok {
		return
	}
	p, ok := c.Featured()
	if !ok {
		return
	}

	a := doc.Create("a")
	a.SetAttr("href", p.Page)
	a.SetClass("project-card")
	a.Append(lazyImage(doc, p.Cover, p.Title))
	a.Append(dom.El(doc, "div", "project-kicker", p.Title))
	a.Append(dom.El(doc, "div", "project-sub", p.Subtitle))
	box.Append(a)
}

func awards(doc dom.Document, list []content.Award) {
	box, ok := dom.Clear(doc, IDAwardsRows)
	if !ok {
		return
	}
	for _, aw := range list {
		row := dom.El(doc, "div", "table-row")

		cell := dom.El(doc, "div", "table-cell")
		link := externalLink(doc, aw.URL)
		link.SetText(aw.Name)
		cell.Append(link)

		row.Append(dom.El(doc, "div", "table-cell", aw.Org))
		row.Append(cell)
		row.Append(dom.El(doc, "div", "table-cell right", year(aw.Year)))
		box.Append(row)
	}
}

// year renders an award year; a missing year renders empty.
func year(y int) string {
	if y == 0 {
		return ""
	}
	return strconv.Itoa(y)
}

func education(doc dom.Document, list []content.Education) {
	box, ok := dom.Clear(doc, IDEducationCards)
	if !ok {
		return
	}
	for i, ed := range list {
		class := "edu-card"
		if i%2 == 1 {
			class += " right"
		}
		card := dom.El(doc, "div", class)
		card.Append(dom.El(doc, "div", "line big", ed.School))
		card.Append(dom.El(doc, "div", "line small", ed.YearLine))
		card.Append(dom.El(doc, "div", "line small", ed.DetailLine))
		box.Append(card)
	}
}

func contact(doc dom.Document, c *content.Normalized) {
	box, ok := dom.Clear(doc, IDContactGrid)
	if !ok {
		return
	}
	list := dom.El(doc, "div", "contact-list")

	email := doc.Create("a")
	email.SetClass("contact-item")
	email.SetAttr("href", "mailto:"+c.Contact.Email)
	email.Append(dom.El(doc, "span", "contact-pillnum", "001"))
	email.Append(dom.El(doc, "span", "", c.EmailLabel))

	linkedIn := externalLink(doc, c.Contact.LinkedIn)
	linkedIn.SetClass("contact-item")
	linkedIn.Append(dom.El(doc, "span", "contact-pillnum", "002"))
	linkedIn.Append(dom.El(doc, "span", "", "LinkedIn"))

	list.Append(email)
	list.Append(linkedIn)
	box.Append(list)
}
