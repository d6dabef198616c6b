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

// Clickable is the state of a Button that survives between frames.
type Clickable struct {
	pressed bool
}

// Class is the purpose of a Button, used by renderers to pick its
// appearance.
type Class uint8

const (
	Primary Class = iota
	Secondary
	Positive
)

// ButtonRenderer draws buttons.
type ButtonRenderer interface {
	DrawButton(cursor f32.Point, bounds f32.Rectangle, state Clickable, label string, class Class) pointer.Cursor
}

// Button emits a message when clicked with the primary button. A
// click is a press followed by a release, both within the bounds of
// the button.
type Button[M any, R ButtonRenderer] struct {
	state    *Clickable
	label    string
	class    Class
	onClick  M
	hasClick bool
	style    layout.Style
}

const (
	buttonMinWidth = 100
	buttonHeight   = 50
)

// NewButton returns a Primary button. It ignores events until a
// message is set with OnClick.
func NewButton[M any, R ButtonRenderer](state *Clickable, label string) *Button[M, R] {
	return &Button[M, R]{
		state: state,
		label: label,
		style: layout.DefaultStyle().WithMinWidth(buttonMinWidth),
	}
}

// Pressed reports whether the primary button was pressed over the
// button and not yet released.
func (c Clickable) Pressed() bool {
	return c.pressed
}

// OnClick sets the message emitted when the button is clicked.
func (b *Button[M, R]) OnClick(msg M) *Button[M, R] {
	b.onClick = msg
	b.hasClick = true
	return b
}

// Class sets the visual class of the button.
func (b *Button[M, R]) Class(c Class) *Button[M, R] {
	b.class = c
	return b
}

// Width fixes the button width in pixels.
func (b *Button[M, R]) Width(px float32) *Button[M, R] {
	b.style = b.style.WithWidth(px)
	return b
}

// FillWidth makes the button as wide as its parent.
func (b *Button[M, R]) FillWidth() *Button[M, R] {
	b.style = b.style.FillWidth()
	return b
}

// AlignSelf overrides the cross axis alignment of the button.
func (b *Button[M, R]) AlignSelf(a layout.Align) *Button[M, R] {
	b.style = b.style.WithAlignSelf(a)
	return b
}

func (b *Button[M, R]) Element() ui.Element[M, R] {
	return ui.New[M, R](b)
}

func (b *Button[M, R]) Node(R) *layout.Node {
	return layout.NewNode(b.style.WithHeight(buttonHeight))
}

func (b *Button[M, R]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, msgs *[]M) {
	if !b.hasClick {
		return
	}
	pe, ok := e.(pointer.Event)
	if !ok || !pe.Buttons.Contain(pointer.ButtonPrimary) {
		return
	}
	inside := l.Bounds().Contains(cursor)
	switch pe.Kind {
	case pointer.Press:
		b.state.pressed = inside
	case pointer.Release:
		clicked := b.state.pressed && inside
		b.state.pressed = false
		if clicked {
			*msgs = append(*msgs, b.onClick)
		}
	}
}

func (b *Button[M, R]) Draw(r R, l layout.Layout, cursor f32.Point) pointer.Cursor {
	return r.DrawButton(cursor, l.Bounds(), *b.state, b.label, b.class)
}

func (b *Button[M, R]) Hash(h hash.Hash64) {
	b.style.Hash(h)
	hashString(h, "button")
	hashString(h, b.label)
	hashBytes(h, byte(b.class))
}

func (c Class) String() string {
	switch c {
	case Primary:
		return "Primary"
	case Secondary:
		return "Secondary"
	case Positive:
		return "Positive"
	default:
		panic("unreachable")
	}
}
