// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hash"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/layout"
	"gioui.org/retained/text"
	"gioui.org/retained/ui"
)

// CheckboxRenderer draws checkboxes. Labels are drawn as text.
type CheckboxRenderer interface {
	TextRenderer
	// DrawCheckbox draws the box in bounds. The label is drawn
	// separately within labelBounds.
	DrawCheckbox(cursor f32.Point, bounds, labelBounds f32.Rectangle, checked bool) pointer.Cursor
}

// Checkbox is a labeled box toggled by pressing it or its label.
type Checkbox[M any, R CheckboxRenderer] struct {
	checked  bool
	label    string
	onToggle func(bool) M
}

// NewCheckbox returns a checkbox emitting onToggle with the new state.
func NewCheckbox[M any, R CheckboxRenderer](checked bool, label string, onToggle func(checked bool) M) *Checkbox[M, R] {
	return &Checkbox[M, R]{checked: checked, label: label, onToggle: onToggle}
}

func (c *Checkbox[M, R]) Element() ui.Element[M, R] {
	return ui.New[M, R](c)
}

func (c *Checkbox[M, R]) Node(r R) *layout.Node {
	return labeled[R](r, c.label)
}

func (c *Checkbox[M, R]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, msgs *[]M) {
	if pe, ok := e.(pointer.Event); !ok || !pe.IsPrimaryPress() {
		return
	}
	for _, child := range l.Children() {
		if child.Bounds().Contains(cursor) {
			*msgs = append(*msgs, c.onToggle(!c.checked))
			return
		}
	}
}

func (c *Checkbox[M, R]) Draw(r R, l layout.Layout, cursor f32.Point) pointer.Cursor {
	drawLabel(r, l, c.label)
	return r.DrawCheckbox(cursor, l.Child(0).Bounds(), l.Child(1).Bounds(), c.checked)
}

func (c *Checkbox[M, R]) Hash(h hash.Hash64) {
	hashString(h, "checkbox")
	hashString(h, c.label)
	hashBytes(h, b2u(c.checked))
}

const (
	markSize     = 28
	labelSpacing = 15
	// labelRaise lifts labels to center them on their mark.
	labelRaise = 2
)

// labeled returns the node of a mark followed by a label.
func labeled[R TextRenderer](r R, label string) *layout.Node {
	mark := layout.DefaultStyle().WithWidth(markSize).WithHeight(markSize)
	mark.Margin.Right = layout.Px(labelSpacing)
	return layout.NewNode(layout.DefaultStyle().WithAlignItems(layout.Center),
		layout.NewNode(mark),
		NewText[struct{}, R](label).Node(r),
	)
}

// drawLabel draws the label of a node returned by labeled.
func drawLabel[R TextRenderer](r R, l layout.Layout, label string) {
	lb := l.Child(1).Bounds().Add(f32.Pt(0, -labelRaise))
	r.DrawText(lb, label, DefaultTextSize, White, text.Start, text.Start)
}
