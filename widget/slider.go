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

// Draggable is the state of a Slider that survives between frames.
type Draggable struct {
	dragging bool
}

// SliderRenderer draws sliders.
type SliderRenderer interface {
	DrawSlider(cursor f32.Point, bounds f32.Rectangle, state Draggable, min, max, value float32) pointer.Cursor
}

// Slider selects a value in a range by pressing and dragging along
// its width. A value is emitted on the press and on every move while
// dragging.
type Slider[M any, R SliderRenderer] struct {
	state    *Draggable
	min, max float32
	value    float32
	onChange func(float32) M
	style    layout.Style
}

const (
	sliderMinWidth = 100
	sliderHeight   = 25
)

// NewSlider returns a slider over [min, max] showing value clamped
// to the range.
func NewSlider[M any, R SliderRenderer](state *Draggable, min, max, value float32, onChange func(float32) M) *Slider[M, R] {
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return &Slider[M, R]{
		state:    state,
		min:      min,
		max:      max,
		value:    value,
		onChange: onChange,
		style:    layout.DefaultStyle().WithMinWidth(sliderMinWidth).FillWidth(),
	}
}

// Dragging reports whether the slider is being dragged.
func (d Draggable) Dragging() bool {
	return d.dragging
}

// Value returns the clamped value.
func (s *Slider[M, R]) Value() float32 {
	return s.value
}

// Width fixes the width in pixels.
func (s *Slider[M, R]) Width(px float32) *Slider[M, R] {
	s.style = s.style.WithWidth(px)
	return s
}

func (s *Slider[M, R]) Element() ui.Element[M, R] {
	return ui.New[M, R](s)
}

func (s *Slider[M, R]) Node(R) *layout.Node {
	return layout.NewNode(s.style.WithHeight(sliderHeight))
}

func (s *Slider[M, R]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, msgs *[]M) {
	pe, ok := e.(pointer.Event)
	if !ok {
		return
	}
	b := l.Bounds()
	switch {
	case pe.IsPrimaryPress():
		if b.Contains(cursor) {
			*msgs = append(*msgs, s.onChange(s.at(b, cursor.X)))
			s.state.dragging = true
		}
	case pe.IsPrimaryRelease():
		s.state.dragging = false
	case pe.Kind == pointer.Move:
		if s.state.dragging {
			*msgs = append(*msgs, s.onChange(s.at(b, cursor.X)))
		}
	}
}

// at maps x to the range of s. Positions at or past the edges of b
// map exactly to the range ends.
func (s *Slider[M, R]) at(b f32.Rectangle, x float32) float32 {
	switch {
	case x <= b.Min.X:
		return s.min
	case x >= b.Max.X:
		return s.max
	}
	return s.min + (s.max-s.min)*(x-b.Min.X)/b.Dx()
}

func (s *Slider[M, R]) Draw(r R, l layout.Layout, cursor f32.Point) pointer.Cursor {
	return r.DrawSlider(cursor, l.Bounds(), *s.state, s.min, s.max, s.value)
}

func (s *Slider[M, R]) Hash(h hash.Hash64) {
	s.style.Hash(h)
	hashString(h, "slider")
	hashFloats(h, s.min, s.max, s.value)
}
