//go:build js && wasm

// Package dom hosts the adapter in a browser page: surfaces are canvas
// elements looked up by id, the viewport is the window's inner size, and the
// ready and viewport-changed signals are the window's load and resize events.
package dom

import (
	"fmt"
	"syscall/js"

	"canvashost/internal/surface"
)

// Document is the browser host document.
type Document struct {
	win js.Value
	doc js.Value
}

var _ surface.Environment = (*Document)(nil)

// NewDocument binds to the page's global window and document.
func NewDocument() *Document {
	win := js.Global().Get("window")
	return &Document{win: win, doc: win.Get("document")}
}

func (d *Document) Surface(id string) (surface.Surface, error) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, fmt.Errorf("%w: %q", surface.ErrSurfaceNotFound, id)
	}
	return element{el}, nil
}

func (d *Document) Viewport() surface.Dimensions {
	return surface.Dimensions{
		Width:  d.win.Get("innerWidth").Int(),
		Height: d.win.Get("innerHeight").Int(),
	}
}

// Container reports the content box of the surface's parent element, or
// the zero size when the surface or its parent is missing.
func (d *Document) Container(id string) surface.Dimensions {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return surface.Dimensions{}
	}
	parent := el.Get("parentElement")
	if parent.IsNull() || parent.IsUndefined() {
		return surface.Dimensions{}
	}
	return surface.Dimensions{
		Width:  parent.Get("clientWidth").Int(),
		Height: parent.Get("clientHeight").Int(),
	}
}

// Loaded reports whether the page has already fired its load event.
func (d *Document) Loaded() bool {
	return d.doc.Get("readyState").String() == "complete"
}

// element is a canvas element; width and height are its pixel attributes.
type element struct {
	v js.Value
}

func (e element) Width() int  { return e.v.Get("width").Int() }
func (e element) Height() int { return e.v.Get("height").Int() }

func (e element) SetWidth(w int) error {
	e.v.Set("width", w)
	return nil
}

func (e element) SetHeight(h int) error {
	e.v.Set("height", h)
	return nil
}
