// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hash"
	"image/color"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/layout"
	"gioui.org/retained/text"
	"gioui.org/retained/ui"
)

// TextRenderer measures and draws text.
type TextRenderer interface {
	// TextNode returns a leaf node with style s sized by content.
	TextNode(s layout.Style, content string, size float32) *layout.Node
	DrawText(bounds f32.Rectangle, content string, size float32, c color.NRGBA, alignment, verticalAlignment text.Alignment)
}

// Text is a block of wrapped text.
type Text[M any, R TextRenderer] struct {
	ui.Passive[M]

	content           string
	size              float32
	color             color.NRGBA
	style             layout.Style
	alignment         text.Alignment
	verticalAlignment text.Alignment
}

// DefaultTextSize is the size of Text in pixels per em.
const DefaultTextSize = 20

// White is the default Text color.
var White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// NewText returns white text of the default size, filling the width
// of its parent.
func NewText[M any, R TextRenderer](content string) *Text[M, R] {
	return &Text[M, R]{
		content: content,
		size:    DefaultTextSize,
		color:   White,
		style:   layout.DefaultStyle().FillWidth(),
	}
}

// Size sets the text size in pixels.
func (t *Text[M, R]) Size(px float32) *Text[M, R] {
	t.size = px
	return t
}

// Color sets the text color.
func (t *Text[M, R]) Color(c color.NRGBA) *Text[M, R] {
	t.color = c
	return t
}

// Width fixes the width in pixels.
func (t *Text[M, R]) Width(px float32) *Text[M, R] {
	t.style = t.style.WithWidth(px)
	return t
}

// Height fixes the height in pixels.
func (t *Text[M, R]) Height(px float32) *Text[M, R] {
	t.style = t.style.WithHeight(px)
	return t
}

// Alignment sets the horizontal alignment of lines.
func (t *Text[M, R]) Alignment(a text.Alignment) *Text[M, R] {
	t.alignment = a
	return t
}

// VerticalAlignment sets where text is placed vertically.
func (t *Text[M, R]) VerticalAlignment(a text.Alignment) *Text[M, R] {
	t.verticalAlignment = a
	return t
}

func (t *Text[M, R]) Element() ui.Element[M, R] {
	return ui.New[M, R](t)
}

func (t *Text[M, R]) Node(r R) *layout.Node {
	return r.TextNode(t.style, t.content, t.size)
}

func (t *Text[M, R]) Draw(r R, l layout.Layout, _ f32.Point) pointer.Cursor {
	r.DrawText(l.Bounds(), t.content, t.size, t.color, t.alignment, t.verticalAlignment)
	return pointer.OutOfBounds
}

func (t *Text[M, R]) Hash(h hash.Hash64) {
	t.style.Hash(h)
	hashString(h, "text")
	hashString(h, t.content)
	hashFloats(h, t.size)
	hashBytes(h, t.color.R, t.color.G, t.color.B, t.color.A, byte(t.alignment), byte(t.verticalAlignment))
}
