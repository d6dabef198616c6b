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

// PanelRenderer draws the bordered background of a Panel.
type PanelRenderer interface {
	DrawPanel(bounds f32.Rectangle)
}

// Panel draws a padded background box behind a single child.
type Panel[M any, R PanelRenderer] struct {
	style   layout.Style
	content ui.Element[M, R]
}

// PanelPadding is the default padding of a Panel.
const PanelPadding = 20

// NewPanel returns a panel drawn behind content.
func NewPanel[M any, R PanelRenderer](content ui.Widget[M, R]) *Panel[M, R] {
	return &Panel[M, R]{
		style:   layout.DefaultStyle().WithPadding(PanelPadding),
		content: element(content),
	}
}

// Width fixes the width in pixels.
func (p *Panel[M, R]) Width(px float32) *Panel[M, R] {
	p.style = p.style.WithWidth(px)
	return p
}

// MaxWidth bounds the width in pixels.
func (p *Panel[M, R]) MaxWidth(px float32) *Panel[M, R] {
	p.style = p.style.WithMaxWidth(px)
	return p
}

// Padding sets the padding on every side.
func (p *Panel[M, R]) Padding(px float32) *Panel[M, R] {
	p.style = p.style.WithPadding(px)
	return p
}

// AlignSelf overrides the cross axis alignment of the panel.
func (p *Panel[M, R]) AlignSelf(a layout.Align) *Panel[M, R] {
	p.style = p.style.WithAlignSelf(a)
	return p
}

func (p *Panel[M, R]) Element() ui.Element[M, R] {
	return ui.New[M, R](p)
}

func (p *Panel[M, R]) Node(r R) *layout.Node {
	return layout.NewNode(p.style, p.content.Node(r))
}

func (p *Panel[M, R]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, msgs *[]M) {
	p.content.OnEvent(e, l.Child(0), cursor, msgs)
}

// Draw prefers the cursor of the content, then Idle while the cursor
// is over the panel.
func (p *Panel[M, R]) Draw(r R, l layout.Layout, cursor f32.Point) pointer.Cursor {
	r.DrawPanel(l.Bounds())
	if c := p.content.Draw(r, l.Child(0), cursor); c.Taken() {
		return c
	}
	if l.Bounds().Contains(cursor) {
		return pointer.Idle
	}
	return pointer.OutOfBounds
}

func (p *Panel[M, R]) Hash(h hash.Hash64) {
	p.style.Hash(h)
	hashString(h, "panel")
	p.content.Hash(h)
}
