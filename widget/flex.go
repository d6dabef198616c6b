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

// flex lays out children along an axis with spacing between them.
type flex[M, R any] struct {
	style    layout.Style
	spacing  float32
	children []ui.Element[M, R]
}

func newFlex[M, R any](axis layout.Axis) flex[M, R] {
	return flex[M, R]{style: layout.DefaultStyle().WithAxis(axis)}
}

func (f *flex[M, R]) push(w ui.Widget[M, R]) {
	f.children = append(f.children, element(w))
}

// element returns w as an Element, reusing w if it is one.
func element[M, R any](w ui.Widget[M, R]) ui.Element[M, R] {
	if e, ok := w.(ui.Element[M, R]); ok {
		return e
	}
	return ui.New(w)
}

func (f *flex[M, R]) Node(r R) *layout.Node {
	nodes := make([]*layout.Node, len(f.children))
	space := layout.Px(f.spacing)
	for i, c := range f.children {
		n := c.Node(r)
		if i == len(f.children)-1 {
			space = layout.Undefined
		}
		s := n.Style()
		switch f.style.Axis {
		case layout.Vertical:
			s.Margin.Bottom = space
		default:
			s.Margin.Right = space
		}
		n.SetStyle(s)
		nodes[i] = n
	}
	return layout.NewNode(f.style, nodes...)
}

func (f *flex[M, R]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, msgs *[]M) {
	for i, c := range f.children {
		c.OnEvent(e, l.Child(i), cursor, msgs)
	}
}

// Draw returns the first cursor a child suggests.
func (f *flex[M, R]) Draw(r R, l layout.Layout, cursor f32.Point) pointer.Cursor {
	res := pointer.OutOfBounds
	for i, c := range f.children {
		if cur := c.Draw(r, l.Child(i), cursor); !res.Taken() {
			res = cur
		}
	}
	return res
}

func (f *flex[M, R]) Hash(h hash.Hash64) {
	f.style.Hash(h)
	hashString(h, "flex")
	hashFloats(h, f.spacing, float32(len(f.children)))
	for _, c := range f.children {
		c.Hash(h)
	}
}
