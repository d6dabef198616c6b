// SPDX-License-Identifier: Unlicense OR MIT

package ui_test

import (
	"hash"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/layout"
	"gioui.org/retained/ui"
)

type frame struct {
	flushed int
}

type recorder struct {
	nodes     int
	draws     []f32.Rectangle
	explained []f32.Rectangle
	pending   int
}

func (r *recorder) Explain(l layout.Layout, c color.NRGBA) {
	r.explained = append(r.explained, l.Bounds())
}

func (r *recorder) Flush(f *frame) {
	f.flushed += r.pending
	r.pending = 0
}

// box is a fixed size widget producing msg on any primary press
// within its bounds.
type box struct {
	w, h float32
	msg  string
}

func (b *box) Node(r *recorder) *layout.Node {
	r.nodes++
	return layout.NewNode(layout.DefaultStyle().WithWidth(b.w).WithHeight(b.h))
}

func (b *box) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, msgs *[]string) {
	if pe, ok := e.(pointer.Event); ok && pe.IsPrimaryPress() && l.Bounds().Contains(cursor) {
		*msgs = append(*msgs, b.msg)
	}
}

func (b *box) Draw(r *recorder, l layout.Layout, cursor f32.Point) pointer.Cursor {
	r.draws = append(r.draws, l.Bounds())
	r.pending++
	if l.Bounds().Contains(cursor) {
		return pointer.Pointer
	}
	return pointer.OutOfBounds
}

func (b *box) Hash(h hash.Hash64) {
	h.Write([]byte(b.msg))
}

func press(x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Pt(x, y)}
}

func TestInterfaceEventAndDraw(t *testing.T) {
	r := new(recorder)
	root := ui.New[string, *recorder](&box{w: 100, h: 50, msg: "clicked"})
	iface := ui.Compute[*frame](root, r)
	assert.Equal(t, f32.Rect(0, 0, 100, 50), iface.Layout().Bounds())

	var msgs []string
	iface.OnEvent(press(10, 10), f32.Pt(10, 10), &msgs)
	iface.OnEvent(press(200, 10), f32.Pt(200, 10), &msgs)
	assert.Equal(t, []string{"clicked"}, msgs)

	var f frame
	c := iface.Draw(r, &f, f32.Pt(10, 10))
	assert.Equal(t, pointer.Pointer, c)
	assert.Equal(t, 1, f.flushed)
	assert.Equal(t, pointer.OutOfBounds, iface.Draw(r, &f, f32.Pt(300, 300)))
}

type outer struct {
	Inner string
}

func TestMap(t *testing.T) {
	r := new(recorder)
	inner := ui.New[string, *recorder](&box{w: 10, h: 10, msg: "a"})
	root := ui.Map(inner, func(m string) outer { return outer{Inner: m} })
	iface := ui.Compute[*frame](root, r)

	var msgs []outer
	iface.OnEvent(press(5, 5), f32.Pt(5, 5), &msgs)
	iface.OnEvent(press(5, 5), f32.Pt(5, 5), &msgs)
	assert.Equal(t, []outer{{"a"}, {"a"}}, msgs)
	assert.Equal(t, ui.Hash(inner), ui.Hash(root))
}

func TestExplain(t *testing.T) {
	r := new(recorder)
	root := ui.New[string, *recorder](&box{w: 10, h: 20}).Explain(color.NRGBA{R: 0xff, A: 0xff})
	iface := ui.Compute[*frame](root, r)
	var msgs []string
	iface.OnEvent(press(5, 5), f32.Pt(5, 5), &msgs)
	iface.Draw(r, new(frame), f32.Point{})
	require.Len(t, r.explained, 1)
	assert.Equal(t, f32.Rect(0, 0, 10, 20), r.explained[0])
	assert.Equal(t, r.draws, r.explained)
}

func TestComputeWithCache(t *testing.T) {
	r := new(recorder)
	view := func(msg string) ui.Element[string, *recorder] {
		return ui.New[string, *recorder](&box{w: 10, h: 10, msg: msg})
	}
	iface := ui.Compute[*frame](view("a"), r)
	require.Equal(t, 1, r.nodes)
	assert.False(t, iface.Cached())

	iface = ui.ComputeWithCache[*frame](view("a"), r, iface.Cache())
	assert.Equal(t, 1, r.nodes)
	assert.True(t, iface.Cached())
	assert.True(t, iface.Cache().Hit(ui.Hash(view("a"))))

	iface = ui.ComputeWithCache[*frame](view("b"), r, iface.Cache())
	assert.Equal(t, 2, r.nodes)
	assert.False(t, iface.Cached())
	assert.False(t, iface.Cache().Hit(ui.Hash(view("a"))))

	ui.ComputeWithCache[*frame](view("b"), r, ui.Cache{})
	assert.Equal(t, 3, r.nodes)
}

func TestNewNilPanics(t *testing.T) {
	assert.Panics(t, func() {
		ui.New[string, *recorder](nil)
	})
}
