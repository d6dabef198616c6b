// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/retained/f32"
	"gioui.org/retained/layout"
)

func fixed(w, h float32) *layout.Node {
	return layout.NewNode(layout.DefaultStyle().WithWidth(w).WithHeight(h))
}

func TestSolveColumn(t *testing.T) {
	root := layout.NewNode(layout.DefaultStyle().WithAxis(layout.Vertical).WithPadding(10),
		fixed(40, 20),
		fixed(60, 30),
	)
	tree := layout.Solve(root, layout.Size{Width: layout.Inf, Height: layout.Inf})
	l := tree.Layout()

	require.Equal(t, 2, l.Len())
	assert.Equal(t, f32.Rect(10, 10, 40, 20), l.Child(0).Bounds())
	assert.Equal(t, f32.Rect(10, 30, 60, 30), l.Child(1).Bounds())
	assert.Equal(t, f32.Rect(0, 0, 80, 70), l.Bounds())
}

func TestSolveNestedAbsolute(t *testing.T) {
	inner := layout.NewNode(layout.DefaultStyle().WithPadding(5), fixed(10, 10))
	root := layout.NewNode(layout.DefaultStyle().WithPadding(20), inner)
	l := layout.Solve(root, layout.Size{Width: layout.Inf, Height: layout.Inf}).Layout()

	leaf := l.Child(0).Child(0)
	assert.Equal(t, f32.Rect(25, 25, 10, 10), leaf.Bounds())
	assert.Equal(t, f32.Rect(35, 35, 10, 10), leaf.Offset(f32.Pt(10, 10)).Bounds())
	children := l.Children()
	require.Len(t, children, 1)
	assert.Equal(t, l.Child(0).Bounds(), children[0].Bounds())
}

func TestSolveFillWidth(t *testing.T) {
	child := layout.NewNode(layout.DefaultStyle().FillWidth().WithHeight(10))
	root := layout.NewNode(layout.DefaultStyle().WithAxis(layout.Vertical).WithWidth(200), child)
	l := layout.Solve(root, layout.Size{Width: layout.Inf, Height: layout.Inf}).Layout()
	assert.Equal(t, float32(200), l.Child(0).Bounds().Dx())
}

func TestSolveMeasuredLeaf(t *testing.T) {
	var calls int
	leaf := layout.NewLeaf(layout.DefaultStyle(), func(w, h float32) layout.Size {
		calls++
		return layout.Size{Width: 42, Height: 17}
	})
	assert.True(t, leaf.IsLeaf())
	root := layout.NewNode(layout.DefaultStyle().WithAlignItems(layout.Start), leaf)
	l := layout.Solve(root, layout.Size{Width: layout.Inf, Height: layout.Inf}).Layout()
	assert.Equal(t, f32.Rect(0, 0, 42, 17), l.Child(0).Bounds())
	assert.Positive(t, calls)
}

func TestMeasureCache(t *testing.T) {
	var c layout.MeasureCache
	var calls int
	m := func(w, h float32) layout.Size {
		calls++
		return layout.Size{Width: w / 2, Height: 10}
	}

	// Unbounded widths are never cached.
	c.Measure(layout.Inf, layout.Inf, m)
	assert.False(t, c.Cached())
	assert.Equal(t, 1, calls)

	sz := c.Measure(100, layout.Inf, m)
	assert.Equal(t, layout.Size{Width: 50, Height: 10}, sz)
	assert.True(t, c.Cached())

	// The first finite measurement wins.
	sz = c.Measure(300, layout.Inf, m)
	assert.Equal(t, layout.Size{Width: 50, Height: 10}, sz)
	assert.Equal(t, 2, calls)
}

func TestStyleHash(t *testing.T) {
	sum := func(s layout.Style) uint64 {
		h := xxhash.New()
		s.Hash(h)
		return h.Sum64()
	}
	a := layout.DefaultStyle().WithWidth(10).WithPadding(4)
	b := layout.DefaultStyle().WithWidth(10).WithPadding(4)
	assert.Equal(t, sum(a), sum(b))
	assert.NotEqual(t, sum(a), sum(a.WithWidth(11)))
	assert.NotEqual(t, sum(a), sum(a.WithAxis(layout.Vertical)))

	c := a
	c.Margin.Bottom = layout.Px(3)
	assert.NotEqual(t, sum(a), sum(c))
}

func TestStyleBuilders(t *testing.T) {
	s := layout.DefaultStyle().WithMaxWidth(300)
	assert.Equal(t, layout.Px(300), s.MaxWidth)
	assert.Equal(t, layout.Percent(1), s.Width)
	assert.Equal(t, "100%", s.Width.String())
	assert.Equal(t, layout.Stretch, s.AlignItems)

	s = s.WithAlignSelf(layout.Center).Shrink()
	assert.Equal(t, layout.AlignAuto, s.AlignSelf)
	assert.Equal(t, float32(1), s.Grow().FlexGrow)
}

func TestSolveSpaceEvenly(t *testing.T) {
	root := layout.NewNode(layout.DefaultStyle().
		WithAxis(layout.Vertical).
		WithHeight(100).
		WithJustifyContent(layout.JustifySpaceEvenly),
		fixed(10, 10),
		fixed(10, 10),
	)
	l := layout.Solve(root, layout.Size{Width: layout.Inf, Height: layout.Inf}).Layout()

	require.Equal(t, 2, l.Len())
	assert.InDelta(t, 26.67, l.Child(0).Bounds().Min.Y, 0.5)
	assert.InDelta(t, 63.33, l.Child(1).Bounds().Min.Y, 0.5)
	assert.Equal(t, float32(10), l.Child(1).Bounds().Dy())
}
