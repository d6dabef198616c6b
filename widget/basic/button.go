// SPDX-License-Identifier: Unlicense OR MIT

package basic

import (
	"image/color"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/text"
	"gioui.org/retained/widget"
)

var (
	labelColor      = color.NRGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	labelHoverColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// DrawButton draws a button and its centered label. Hovered buttons
// are raised, pressed ones lowered.
func (r *Renderer) DrawButton(cursor f32.Point, bounds f32.Rectangle, state widget.Clickable, label string, class widget.Class) pointer.Cursor {
	over := bounds.Contains(cursor)
	pressed := false
	if over {
		if state.Pressed() {
			bounds = bounds.Add(f32.Pt(0, 4))
			pressed = true
		} else {
			bounds = bounds.Add(f32.Pt(0, -1))
		}
	}
	r.addButton(bounds, buttonClass(class), pressed, 1)
	c := labelColor
	if over {
		c = labelHoverColor
	}
	r.DrawText(bounds.Add(f32.Pt(0, -4)), label, widget.DefaultTextSize, c, text.Middle, text.Middle)
	if over {
		return pointer.Pointer
	}
	return pointer.OutOfBounds
}

// addButton draws the leftmost fraction fill of a button.
func (r *Renderer) addButton(bounds f32.Rectangle, class int, pressed bool, fill float32) {
	left, mid, right := buttonPart(0, class, pressed), buttonPart(1, class, pressed), buttonPart(2, class, pressed)
	lw, rw := float32(left.Dx()), float32(right.Dx())
	midw := bounds.Dx() - lw - rw
	total := bounds.Dx()
	if total <= 0 {
		return
	}
	// Width of the filled part of every slice.
	filled := total * min(max(fill, 0), 1)
	lf := min(filled, lw)
	mf := min(max(filled-lw, 0), midw)
	rf := min(max(filled-lw-midw, 0), rw)

	sy := bounds.Dy() / float32(left.Dy())
	if lf > 0 {
		src := left
		src.Max.X = src.Min.X + int(lf)
		r.addSprite(src, bounds.Min, f32.Pt(1, sy))
	}
	if mf > 0 {
		r.addSprite(mid, bounds.Min.Add(f32.Pt(lw, 0)), f32.Pt(mf, sy))
	}
	if rf > 0 {
		src := right
		src.Max.X = src.Min.X + int(rf)
		r.addSprite(src, f32.Pt(bounds.Max.X-rw, bounds.Min.Y), f32.Pt(1, sy))
	}
}

func buttonClass(c widget.Class) int {
	switch c {
	case widget.Secondary:
		return classSecondary
	case widget.Positive:
		return classPositive
	default:
		return classPrimary
	}
}
