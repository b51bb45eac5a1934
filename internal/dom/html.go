// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLDocument is a Document backed by a parsed HTML tree.
// It is not safe for concurrent use; each page load owns its own document.
type HTMLDocument struct {
	doc *goquery.Document
}

// Parse parses page markup into an HTMLDocument.
func Parse(r io.Reader) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}
	return &HTMLDocument{doc: doc}, nil
}

// ParseString parses page markup held in a string.
func ParseString(markup string) (*HTMLDocument, error) {
	return Parse(strings.NewReader(markup))
}

// ElementByID implements Document. The first element in document order wins.
func (d *HTMLDocument) ElementByID(id string) (Element, bool) {
	if id == "" {
		return nil, false
	}
	sel := d.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	}).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return wrap(sel), true
}

// QueryAll implements Document. An invalid selector matches nothing.
func (d *HTMLDocument) QueryAll(selector string) []Element {
	var out []Element
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, wrap(s))
	})
	return out
}

// Create implements Document.
func (d *HTMLDocument) Create(tag string) Element {
	tag = strings.ToLower(tag)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return wrap(goquery.NewDocumentFromNode(n).Selection)
}

// WriteTo renders the whole document, doctype included.
func (d *HTMLDocument) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.doc.Nodes[0]); err != nil {
		return 0, fmt.Errorf("rendering document: %w", err)
	}
	return buf.WriteTo(w)
}

// String renders the whole document.
func (d *HTMLDocument) String() string {
	var sb strings.Builder
	_, _ = d.WriteTo(&sb)
	return sb.String()
}

// OuterHTML renders a single element created by an HTMLDocument.
func OuterHTML(e Element) string {
	he, ok := e.(*htmlElement)
	if !ok {
		return ""
	}
	s, err := goquery.OuterHtml(he.sel)
	if err != nil {
		return ""
	}
	return s
}

type htmlElement struct {
	sel *goquery.Selection
}

func wrap(sel *goquery.Selection) *htmlElement {
	return &htmlElement{sel: sel}
}

func (e *htmlElement) node() *html.Node {
	return e.sel.Nodes[0]
}

func (e *htmlElement) ID() string {
	return e.sel.AttrOr("id", "")
}

func (e *htmlElement) Tag() string {
	return e.node().Data
}

func (e *htmlElement) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

func (e *htmlElement) SetAttr(name, value string) {
	e.sel.SetAttr(name, value)
}

func (e *htmlElement) SetClass(className string) {
	e.sel.SetAttr("class", className)
}

func (e *htmlElement) AddClass(className string) {
	e.sel.AddClass(className)
}

func (e *htmlElement) RemoveClass(className string) {
	e.sel.RemoveClass(className)
}

func (e *htmlElement) HasClass(className string) bool {
	return e.sel.HasClass(className)
}

func (e *htmlElement) Text() string {
	return e.sel.Text()
}

func (e *htmlElement) SetText(text string) {
	e.Clear()
	e.node().AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (e *htmlElement) Clear() {
	e.sel.Empty()
}

func (e *htmlElement) Append(child Element) {
	c, ok := child.(*htmlElement)
	if !ok {
		return
	}
	n := c.node()
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	e.node().AppendChild(n)
}

func (e *htmlElement) Children() []Element {
	var out []Element
	e.sel.Children().Each(func(_ int, s *goquery.Selection) {
		out = append(out, wrap(s))
	})
	return out
}
