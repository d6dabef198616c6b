// SPDX-License-Identifier: Unlicense OR MIT

package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/text"
	"gioui.org/retained/widget"
)

var (
	panelStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	markStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	hoverStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	railStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	markerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// DrawColumn draws nothing; columns are transparent.
func (r *Renderer) DrawColumn(f32.Rectangle) {}

func (r *Renderer) DrawPanel(bounds f32.Rectangle) {
	cells := r.cells(bounds)
	r.ops = append(r.ops, func(s tcell.Screen) {
		box(s, cells, panelStyle, true)
	})
}

// DrawButton draws the label centered on a background colored by
// class. Pressed buttons are drawn in reverse.
func (r *Renderer) DrawButton(cursor f32.Point, bounds f32.Rectangle, state widget.Clickable, label string, class widget.Class) pointer.Cursor {
	over := bounds.Contains(cursor)
	st := tcell.StyleDefault.Background(classColor(class)).Foreground(tcell.ColorWhite)
	if over {
		st = st.Bold(true)
		if state.Pressed() {
			st = st.Reverse(true)
		}
	}
	cells := r.cells(bounds)
	txt := r.layoutText(label, bounds.Dx())
	r.ops = append(r.ops, func(s tcell.Screen) {
		fill(s, cells, ' ', st)
		drawLines(s, cells, txt, st, text.Middle, text.Middle)
	})
	if over {
		return pointer.Pointer
	}
	return pointer.OutOfBounds
}

func (r *Renderer) DrawCheckbox(cursor f32.Point, bounds, labelBounds f32.Rectangle, checked bool) pointer.Cursor {
	glyph := "[ ]"
	if checked {
		glyph = "[x]"
	}
	return r.drawMark(bounds, glyph, bounds.Contains(cursor) || labelBounds.Contains(cursor))
}

func (r *Renderer) DrawRadio(cursor f32.Point, bounds, boundsWithLabel f32.Rectangle, selected bool) pointer.Cursor {
	glyph := "( )"
	if selected {
		glyph = "(•)"
	}
	return r.drawMark(bounds, glyph, boundsWithLabel.Contains(cursor))
}

func (r *Renderer) drawMark(bounds f32.Rectangle, glyph string, over bool) pointer.Cursor {
	st := markStyle
	if over {
		st = hoverStyle
	}
	cells := r.cells(bounds)
	r.ops = append(r.ops, func(s tcell.Screen) {
		y := cells.Min.Y + max(cells.Dy()-1, 0)/2
		putString(s, cells.Min.X, y, cells.Min.X+3, glyph, st)
	})
	if over {
		return pointer.Pointer
	}
	return pointer.OutOfBounds
}

// DrawSlider draws a rail with a block marker at value.
func (r *Renderer) DrawSlider(cursor f32.Point, bounds f32.Rectangle, state widget.Draggable, min, max, value float32) pointer.Cursor {
	over := bounds.Contains(cursor)
	cells := r.cells(bounds)
	var t float32
	if max > min {
		t = (value - min) / (max - min)
	}
	marker := markerStyle
	if over || state.Dragging() {
		marker = marker.Bold(true)
	}
	r.ops = append(r.ops, func(s tcell.Screen) {
		if cells.Empty() {
			return
		}
		y := cells.Min.Y + cells.Dy()/2
		for x := cells.Min.X; x < cells.Max.X; x++ {
			s.SetContent(x, y, tcell.RuneHLine, nil, railStyle)
		}
		x := cells.Min.X + int(t*float32(cells.Dx()-1)+.5)
		s.SetContent(x, y, tcell.RuneBlock, nil, marker)
	})
	switch {
	case state.Dragging():
		return pointer.Grabbing
	case over:
		return pointer.Grab
	default:
		return pointer.OutOfBounds
	}
}

// DrawImage draws every cell of the fitted image as a space colored
// by the image pixel at its center.
func (r *Renderer) DrawImage(bounds f32.Rectangle, img image.Image, source image.Rectangle, fit widget.Fit) {
	dst := fit.Rect(bounds, source.Size())
	clip := r.cells(bounds)
	cells := r.cells(dst).Intersect(clip)
	if dst.Empty() || source.Empty() {
		return
	}
	cw, ch := float32(r.cell.X), float32(r.cell.Y)
	r.ops = append(r.ops, func(s tcell.Screen) {
		for y := cells.Min.Y; y < cells.Max.Y; y++ {
			for x := cells.Min.X; x < cells.Max.X; x++ {
				px := ((float32(x)+.5)*cw - dst.Min.X) / dst.Dx()
				py := ((float32(y)+.5)*ch - dst.Min.Y) / dst.Dy()
				sx := source.Min.X + int(px*float32(source.Dx()))
				sy := source.Min.Y + int(py*float32(source.Dy()))
				if !(image.Point{X: sx, Y: sy}).In(source) {
					continue
				}
				c := color.NRGBAModel.Convert(img.At(sx, sy)).(color.NRGBA)
				s.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(tcellColor(c)))
			}
		}
	})
}

func (r *Renderer) DrawProgressBar(bounds f32.Rectangle, progress float32) {
	cells := r.cells(bounds)
	r.ops = append(r.ops, func(s tcell.Screen) {
		if cells.Empty() {
			return
		}
		done := cells.Min.X + int(progress*float32(cells.Dx())+.5)
		y := cells.Min.Y + cells.Dy()/2
		for x := cells.Min.X; x < cells.Max.X; x++ {
			ch := tcell.RuneBoard
			if x < done {
				ch = tcell.RuneBlock
			}
			s.SetContent(x, y, ch, nil, markerStyle)
		}
	})
}

func classColor(c widget.Class) tcell.Color {
	switch c {
	case widget.Secondary:
		return tcell.ColorGray
	case widget.Positive:
		return tcell.ColorGreen
	default:
		return tcell.ColorBlue
	}
}
