// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"hash"
	"image/color"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/layout"
)

// Element is an owned Widget of any kind. The zero Element is not
// valid.
type Element[M, R any] struct {
	widget Widget[M, R]
}

// Explainer is implemented by renderers able to visualize solved
// bounds.
type Explainer interface {
	// Explain outlines the bounds of l and of every descendant of l
	// in color c.
	Explain(l layout.Layout, c color.NRGBA)
}

type mapped[A, B, R any] struct {
	widget  Widget[A, R]
	f       func(A) B
	scratch []A
}

type explained[M, R any] struct {
	widget Widget[M, R]
	color  color.NRGBA
}

// New returns the Element owning w.
func New[M, R any](w Widget[M, R]) Element[M, R] {
	if w == nil {
		panic("ui: nil widget")
	}
	return Element[M, R]{widget: w}
}

// Map returns an Element producing f(m) for every message m produced
// by e. Messages are copied; f must not retain them.
func Map[A, B, R any](e Element[A, R], f func(A) B) Element[B, R] {
	return New[B, R](&mapped[A, B, R]{widget: e.widget, f: f})
}

// Explain returns an Element asking its renderer to outline the
// bounds of e and its descendants before drawing them. Renderers not
// implementing Explainer draw e unchanged.
func (e Element[M, R]) Explain(c color.NRGBA) Element[M, R] {
	return New[M, R](&explained[M, R]{widget: e.widget, color: c})
}

func (e Element[M, R]) Node(r R) *layout.Node {
	return e.widget.Node(r)
}

func (e Element[M, R]) OnEvent(ev event.Event, l layout.Layout, cursor f32.Point, msgs *[]M) {
	e.widget.OnEvent(ev, l, cursor, msgs)
}

func (e Element[M, R]) Draw(r R, l layout.Layout, cursor f32.Point) pointer.Cursor {
	return e.widget.Draw(r, l, cursor)
}

func (e Element[M, R]) Hash(h hash.Hash64) {
	e.widget.Hash(h)
}

func (m *mapped[A, B, R]) Node(r R) *layout.Node {
	return m.widget.Node(r)
}

func (m *mapped[A, B, R]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, msgs *[]B) {
	m.scratch = m.scratch[:0]
	m.widget.OnEvent(e, l, cursor, &m.scratch)
	for _, msg := range m.scratch {
		*msgs = append(*msgs, m.f(msg))
	}
}

func (m *mapped[A, B, R]) Draw(r R, l layout.Layout, cursor f32.Point) pointer.Cursor {
	return m.widget.Draw(r, l, cursor)
}

func (m *mapped[A, B, R]) Hash(h hash.Hash64) {
	m.widget.Hash(h)
}

func (x *explained[M, R]) Node(r R) *layout.Node {
	return x.widget.Node(r)
}

func (x *explained[M, R]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, msgs *[]M) {
	x.widget.OnEvent(e, l, cursor, msgs)
}

func (x *explained[M, R]) Draw(r R, l layout.Layout, cursor f32.Point) pointer.Cursor {
	if ex, ok := any(r).(Explainer); ok {
		ex.Explain(l, x.color)
	}
	return x.widget.Draw(r, l, cursor)
}

func (x *explained[M, R]) Hash(h hash.Hash64) {
	x.widget.Hash(h)
}
