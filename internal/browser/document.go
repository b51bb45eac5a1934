// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build js && wasm

// Package browser implements the dom and observe capabilities on top of the
// live browser DOM through syscall/js.
package browser

import (
	"strings"
	"syscall/js"

	"github.com/olegiv/folio/internal/dom"
)

// Document is the page's window.document.
type Document struct {
	v js.Value
}

// NewDocument returns the current page's document.
func NewDocument() *Document {
	return &Document{v: js.Global().Get("document")}
}

// ElementByID implements dom.Document.
func (d *Document) ElementByID(id string) (dom.Element, bool) {
	v := d.v.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return &element{v: v}, true
}

// QueryAll implements dom.Document. An invalid selector matches nothing.
func (d *Document) QueryAll(selector string) (out []dom.Element) {
	defer func() {
		// querySelectorAll throws a SyntaxError on a bad selector.
		if r := recover(); r != nil {
			out = nil
		}
	}()
	return collect(d.v.Call("querySelectorAll", selector))
}

// Create implements dom.Document.
func (d *Document) Create(tag string) dom.Element {
	return &element{v: d.v.Call("createElement", tag)}
}

// MarkScripted adds the "js" class to the root element so stylesheets can
// hide reveal targets only when something will reveal them.
func (d *Document) MarkScripted() {
	d.v.Get("documentElement").Get("classList").Call("add", "js")
}

// Ready calls fn once the document has been parsed.
func (d *Document) Ready(fn func()) {
	if d.v.Get("readyState").String() != "loading" {
		fn()
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	d.v.Call("addEventListener", "DOMContentLoaded", cb)
}

// Location returns window.location.href.
func Location() string {
	return js.Global().Get("location").Get("href").String()
}

// collect turns a NodeList or HTMLCollection into elements.
func collect(list js.Value) []dom.Element {
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := range n {
		out = append(out, &element{v: list.Index(i)})
	}
	return out
}

type element struct {
	v js.Value
}

func (e *element) ID() string {
	return e.v.Get("id").String()
}

func (e *element) Tag() string {
	return strings.ToLower(e.v.Get("tagName").String())
}

func (e *element) Attr(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e *element) SetAttr(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *element) SetClass(className string) {
	e.v.Set("className", className)
}

func (e *element) AddClass(className string) {
	e.v.Get("classList").Call("add", className)
}

func (e *element) RemoveClass(className string) {
	e.v.Get("classList").Call("remove", className)
}

func (e *element) HasClass(className string) bool {
	return e.v.Get("classList").Call("contains", className).Bool()
}

func (e *element) Text() string {
	return e.v.Get("textContent").String()
}

func (e *element) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e *element) Clear() {
	e.v.Set("innerHTML", "")
}

func (e *element) Append(child dom.Element) {
	c, ok := child.(*element)
	if !ok {
		return
	}
	e.v.Call("appendChild", c.v)
}

func (e *element) Children() []dom.Element {
	return collect(e.v.Get("children"))
}
