// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"encoding/binary"
	"hash"
	"math"
	"strconv"
)

// Style is the layout intent of a single node. It is pure data; the
// builder methods return modified copies.
type Style struct {
	Width, Height       Length
	MinWidth, MinHeight Length
	MaxWidth, MaxHeight Length

	Padding Edges
	// Margin is set by containers to space their children.
	Margin Edges

	// Axis is the main axis children are laid out along.
	Axis           Axis
	AlignItems     Align
	JustifyContent Justify
	AlignSelf      Align
	FlexGrow       float32
}

// DefaultStyle returns a Style laying out children in a row,
// stretched along the cross axis and packed at the start.
func DefaultStyle() Style {
	return Style{
		Axis:           Horizontal,
		AlignItems:     Stretch,
		JustifyContent: JustifyStart,
	}
}

// WithWidth fixes the width in pixels.
func (s Style) WithWidth(px float32) Style {
	s.Width = Px(px)
	return s
}

// WithHeight fixes the height in pixels.
func (s Style) WithHeight(px float32) Style {
	s.Height = Px(px)
	return s
}

// WithMinWidth sets the smallest width in pixels.
func (s Style) WithMinWidth(px float32) Style {
	s.MinWidth = Px(px)
	return s
}

// WithMinHeight sets the smallest height in pixels.
func (s Style) WithMinHeight(px float32) Style {
	s.MinHeight = Px(px)
	return s
}

// WithMaxWidth bounds the width and makes the node fill its parent up
// to that bound.
func (s Style) WithMaxWidth(px float32) Style {
	s.MaxWidth = Px(px)
	return s.FillWidth()
}

// WithMaxHeight is like WithMaxWidth for the height.
func (s Style) WithMaxHeight(px float32) Style {
	s.MaxHeight = Px(px)
	return s
}

// FillWidth makes the node as wide as its parent.
func (s Style) FillWidth() Style {
	s.Width = Percent(1)
	return s
}

// FillHeight makes the node as tall as its parent.
func (s Style) FillHeight() Style {
	s.Height = Percent(1)
	return s
}

// Grow lets the node take up the free space of its parent.
func (s Style) Grow() Style {
	s.FlexGrow = 1
	return s
}

// Shrink resets the node's own alignment to the parent's.
func (s Style) Shrink() Style {
	s.AlignSelf = AlignAuto
	return s
}

// WithAxis sets the axis children are laid out along.
func (s Style) WithAxis(a Axis) Style {
	s.Axis = a
	return s
}

// WithAlignItems sets the cross axis alignment of children.
func (s Style) WithAlignItems(a Align) Style {
	s.AlignItems = a
	return s
}

// WithJustifyContent sets how free main axis space is distributed.
func (s Style) WithJustifyContent(j Justify) Style {
	s.JustifyContent = j
	return s
}

// WithAlignSelf overrides the parent's AlignItems for this node.
func (s Style) WithAlignSelf(a Align) Style {
	s.AlignSelf = a
	return s
}

// WithPadding sets the same padding on every side.
func (s Style) WithPadding(px float32) Style {
	s.Padding = UniformEdges(Px(px))
	return s
}

// WithPaddingTop sets the top padding.
func (s Style) WithPaddingTop(px float32) Style {
	s.Padding.Top = Px(px)
	return s
}

// Hash folds every field of s into h.
func (s Style) Hash(h hash.Hash64) {
	for _, l := range [...]Length{s.Width, s.Height, s.MinWidth, s.MinHeight, s.MaxWidth, s.MaxHeight} {
		l.hash(h)
	}
	s.Padding.hash(h)
	s.Margin.hash(h)
	var buf [8]byte
	buf[0] = byte(s.Axis)
	buf[1] = byte(s.AlignItems)
	buf[2] = byte(s.JustifyContent)
	buf[3] = byte(s.AlignSelf)
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(s.FlexGrow))
	h.Write(buf[:])
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
