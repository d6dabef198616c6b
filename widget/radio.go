// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hash"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/layout"
	"gioui.org/retained/ui"
)

// RadioRenderer draws radio buttons. Labels are drawn as text.
type RadioRenderer interface {
	TextRenderer
	// DrawRadio draws the mark in bounds. boundsWithLabel covers the
	// mark and its label.
	DrawRadio(cursor f32.Point, bounds, boundsWithLabel f32.Rectangle, selected bool) pointer.Cursor
}

// Radio is one labeled choice among several. Pressing it emits its
// message even if it is already selected.
type Radio[M any, R RadioRenderer] struct {
	selected bool
	label    string
	onClick  M
}

// NewRadio returns the choice of value. It is selected if selected
// points to a value equal to value.
func NewRadio[M any, R RadioRenderer, V comparable](value V, label string, selected *V, onClick func(V) M) *Radio[M, R] {
	return &Radio[M, R]{
		selected: selected != nil && *selected == value,
		label:    label,
		onClick:  onClick(value),
	}
}

// Selected reports whether the radio is the selected choice.
func (rd *Radio[M, R]) Selected() bool {
	return rd.selected
}

func (rd *Radio[M, R]) Element() ui.Element[M, R] {
	return ui.New[M, R](rd)
}

func (rd *Radio[M, R]) Node(r R) *layout.Node {
	return labeled[R](r, rd.label)
}

func (rd *Radio[M, R]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, msgs *[]M) {
	if pe, ok := e.(pointer.Event); ok && pe.IsPrimaryPress() && l.Bounds().Contains(cursor) {
		*msgs = append(*msgs, rd.onClick)
	}
}

func (rd *Radio[M, R]) Draw(r R, l layout.Layout, cursor f32.Point) pointer.Cursor {
	drawLabel(r, l, rd.label)
	return r.DrawRadio(cursor, l.Child(0).Bounds(), l.Bounds(), rd.selected)
}

func (rd *Radio[M, R]) Hash(h hash.Hash64) {
	hashString(h, "radio")
	hashString(h, rd.label)
	hashBytes(h, b2u(rd.selected))
}
