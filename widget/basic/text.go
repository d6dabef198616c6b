// SPDX-License-Identifier: Unlicense OR MIT

package basic

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"gioui.org/retained/f32"
	"gioui.org/retained/layout"
	"gioui.org/retained/text"
)

// TextNode returns a leaf measuring content wrapped to the width
// offered by the solver.
func (r *Renderer) TextNode(s layout.Style, content string, size float32) *layout.Node {
	var cache layout.MeasureCache
	return layout.NewLeaf(s, func(w, h float32) layout.Size {
		return cache.Measure(w, h, func(w, _ float32) layout.Size {
			return r.measure(content, size, w)
		})
	})
}

func (r *Renderer) DrawText(bounds f32.Rectangle, content string, size float32, c color.NRGBA, alignment, verticalAlignment text.Alignment) {
	r.labels = append(r.labels, label{
		content:  content,
		size:     size,
		color:    c,
		bounds:   bounds,
		align:    alignment,
		vertical: verticalAlignment,
	})
}

func (r *Renderer) face(size float32) font.Face {
	face, err := r.faces.Face(size)
	if err != nil {
		r.logger.Error("basic: no face", "size", size, "error", err)
		return nil
	}
	return face
}

func (r *Renderer) measure(content string, size, width float32) layout.Size {
	face := r.face(size)
	if face == nil {
		return layout.Size{}
	}
	sz := text.LayoutString(face, content, maxWidth(width)).Size()
	return layout.Size{Width: float32(sz.X), Height: float32(sz.Y)}
}

func maxWidth(w float32) fixed.Int26_6 {
	if math.IsInf(float64(w), 1) || w*64 >= float32(text.Unbounded) {
		return text.Unbounded
	}
	return fixed.Int26_6(math.Ceil(float64(w) * 64))
}

func (r *Renderer) drawLabel(dst draw.Image, l label) {
	face := r.face(l.size)
	if face == nil {
		return
	}
	b := pixels(l.bounds)
	txt := text.LayoutString(face, l.content, maxWidth(l.bounds.Dx()))
	h := txt.Size().Y
	var top int
	switch l.vertical {
	case text.Middle:
		top = (b.Dy() - h) / 2
	case text.End:
		top = b.Dy() - h
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(l.color),
		Face: face,
	}
	y := fixed.I(b.Min.Y + top)
	var prevDesc fixed.Int26_6
	for _, ln := range txt.Lines {
		y += prevDesc + ln.Ascent
		prevDesc = ln.Descent
		d.Dot = fixed.Point26_6{
			X: fixed.I(b.Min.X) + text.Align(l.align, ln.Width, b.Dx()),
			Y: y,
		}
		d.DrawString(ln.Text)
	}
}
