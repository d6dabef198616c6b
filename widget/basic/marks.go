// SPDX-License-Identifier: Unlicense OR MIT

package basic

import (
	"image"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/widget"
)

// DrawCheckbox highlights the box while the cursor is over the box or
// its label.
func (r *Renderer) DrawCheckbox(cursor f32.Point, bounds, labelBounds f32.Rectangle, checked bool) pointer.Cursor {
	return r.addMark(checkbox, bounds, bounds.Contains(cursor) || labelBounds.Contains(cursor), checked)
}

func (r *Renderer) DrawRadio(cursor f32.Point, bounds, boundsWithLabel f32.Rectangle, selected bool) pointer.Cursor {
	return r.addMark(radio, bounds, boundsWithLabel.Contains(cursor), selected)
}

func (r *Renderer) addMark(m image.Rectangle, bounds f32.Rectangle, over, checked bool) pointer.Cursor {
	variant := markIdle
	if over {
		variant = markHover
	}
	r.addSprite(mark(m, variant), bounds.Min, f32.Pt(1, 1))
	if checked {
		r.addSprite(mark(m, markChecked), bounds.Min, f32.Pt(1, 1))
	}
	if over {
		return pointer.Pointer
	}
	return pointer.OutOfBounds
}

// DrawSlider draws the rail across bounds and the marker at value.
// The marker is highlighted while hovered or dragged.
func (r *Renderer) DrawSlider(cursor f32.Point, bounds f32.Rectangle, state widget.Draggable, min, max, value float32) pointer.Cursor {
	mw := float32(sliderMarker.Dx())
	rail := bounds.Dx() - mw
	r.addSprite(sliderRail, f32.Pt(bounds.Min.X+mw/2, bounds.Min.Y+bounds.Dy()/2-float32(sliderRail.Dy())/2), f32.Pt(rail, 1))

	var offset float32
	if max > min {
		offset = rail * (value - min) / (max - min)
	}
	over := bounds.Contains(cursor)
	marker := sliderMarker
	if state.Dragging() || over {
		marker = marker.Add(image.Pt(sliderMarker.Dx(), 0))
	}
	pos := f32.Pt(bounds.Min.X+float32(int(offset+.5)), bounds.Min.Y)
	if state.Dragging() {
		pos.Y += 2
	}
	r.addSprite(marker, pos, f32.Pt(1, 1))
	switch {
	case state.Dragging():
		return pointer.Grabbing
	case over:
		return pointer.Grab
	default:
		return pointer.OutOfBounds
	}
}
