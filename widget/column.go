// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/retained/f32"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/layout"
	"gioui.org/retained/ui"
)

// ColumnRenderer draws columns.
type ColumnRenderer interface {
	// DrawColumn is called with the bounds of a column before its
	// children are drawn.
	DrawColumn(bounds f32.Rectangle)
}

// Column lays out its children vertically, top to bottom.
type Column[M any, R ColumnRenderer] struct {
	flex[M, R]
}

// NewColumn returns an empty vertical container.
func NewColumn[M any, R ColumnRenderer]() *Column[M, R] {
	return &Column[M, R]{flex: newFlex[M, R](layout.Vertical)}
}

// Push appends a child.
func (c *Column[M, R]) Push(w ui.Widget[M, R]) *Column[M, R] {
	c.push(w)
	return c
}

// Spacing sets the space between vertically adjacent children.
func (c *Column[M, R]) Spacing(px float32) *Column[M, R] {
	c.spacing = px
	return c
}

// Padding sets the padding on every side.
func (c *Column[M, R]) Padding(px float32) *Column[M, R] {
	c.style = c.style.WithPadding(px)
	return c
}

// Width fixes the width in pixels.
func (c *Column[M, R]) Width(px float32) *Column[M, R] {
	c.style = c.style.WithWidth(px)
	return c
}

// Height fixes the height in pixels.
func (c *Column[M, R]) Height(px float32) *Column[M, R] {
	c.style = c.style.WithHeight(px)
	return c
}

// MaxWidth fills the width of the parent up to px.
func (c *Column[M, R]) MaxWidth(px float32) *Column[M, R] {
	c.style = c.style.WithMaxWidth(px)
	return c
}

// FillWidth makes the column as wide as its parent.
func (c *Column[M, R]) FillWidth() *Column[M, R] {
	c.style = c.style.FillWidth()
	return c
}

// FillHeight makes the column as tall as its parent.
func (c *Column[M, R]) FillHeight() *Column[M, R] {
	c.style = c.style.FillHeight()
	return c
}

// AlignItems sets the horizontal alignment of children.
func (c *Column[M, R]) AlignItems(a layout.Align) *Column[M, R] {
	c.style = c.style.WithAlignItems(a)
	return c
}

// AlignSelf overrides the cross axis alignment of the column.
func (c *Column[M, R]) AlignSelf(a layout.Align) *Column[M, R] {
	c.style = c.style.WithAlignSelf(a)
	return c
}

// JustifyContent sets how free vertical space is distributed.
func (c *Column[M, R]) JustifyContent(j layout.Justify) *Column[M, R] {
	c.style = c.style.WithJustifyContent(j)
	return c
}

// Element returns c as an Element.
func (c *Column[M, R]) Element() ui.Element[M, R] {
	return ui.New[M, R](c)
}

// Draw draws the column and then its children, returning the first
// cursor a child suggests.
func (c *Column[M, R]) Draw(r R, l layout.Layout, cursor f32.Point) pointer.Cursor {
	r.DrawColumn(l.Bounds())
	return c.flex.Draw(r, l, cursor)
}
