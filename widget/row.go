// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/retained/layout"
	"gioui.org/retained/ui"
)

// Row lays out its children horizontally, left to right.
type Row[M, R any] struct {
	flex[M, R]
}

// NewRow returns an empty horizontal container.
func NewRow[M, R any]() *Row[M, R] {
	return &Row[M, R]{flex: newFlex[M, R](layout.Horizontal)}
}

// Push appends a child.
func (r *Row[M, R]) Push(w ui.Widget[M, R]) *Row[M, R] {
	r.push(w)
	return r
}

// Spacing sets the space between horizontally adjacent children.
func (r *Row[M, R]) Spacing(px float32) *Row[M, R] {
	r.spacing = px
	return r
}

// Padding sets the padding on every side.
func (r *Row[M, R]) Padding(px float32) *Row[M, R] {
	r.style = r.style.WithPadding(px)
	return r
}

// Width fixes the width in pixels.
func (r *Row[M, R]) Width(px float32) *Row[M, R] {
	r.style = r.style.WithWidth(px)
	return r
}

// Height fixes the height in pixels.
func (r *Row[M, R]) Height(px float32) *Row[M, R] {
	r.style = r.style.WithHeight(px)
	return r
}

// MaxWidth fills the width of the parent up to px.
func (r *Row[M, R]) MaxWidth(px float32) *Row[M, R] {
	r.style = r.style.WithMaxWidth(px)
	return r
}

// FillWidth makes the row as wide as its parent.
func (r *Row[M, R]) FillWidth() *Row[M, R] {
	r.style = r.style.FillWidth()
	return r
}

// AlignItems sets the vertical alignment of children.
func (r *Row[M, R]) AlignItems(a layout.Align) *Row[M, R] {
	r.style = r.style.WithAlignItems(a)
	return r
}

// AlignSelf overrides the cross axis alignment of the row.
func (r *Row[M, R]) AlignSelf(a layout.Align) *Row[M, R] {
	r.style = r.style.WithAlignSelf(a)
	return r
}

// JustifyContent sets how free horizontal space is distributed.
func (r *Row[M, R]) JustifyContent(j layout.Justify) *Row[M, R] {
	r.style = r.style.WithJustifyContent(j)
	return r
}

// Element returns r as an Element.
func (r *Row[M, R]) Element() ui.Element[M, R] {
	return ui.New[M, R](r)
}
