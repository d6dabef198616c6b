// SPDX-License-Identifier: Unlicense OR MIT

package basic

import (
	"image"

	"gioui.org/retained/f32"
	"gioui.org/retained/widget"
)

// DrawColumn draws nothing; columns are transparent.
func (r *Renderer) DrawColumn(f32.Rectangle) {}

// DrawPanel draws the panel as 9 parts: fixed corners, edges
// stretched along their length and a stretched center.
func (r *Renderer) DrawPanel(bounds f32.Rectangle) {
	c := float32(panelCorner)
	cols := [3][2]float32{
		{bounds.Min.X, c},
		{bounds.Min.X + c, bounds.Dx() - 2*c},
		{bounds.Max.X - c, c},
	}
	rows := [3][2]float32{
		{bounds.Min.Y, c},
		{bounds.Min.Y + c, bounds.Dy() - 2*c},
		{bounds.Max.Y - c, c},
	}
	for row := range rows {
		for col := range cols {
			src := panelPart(col, row)
			pos := f32.Pt(cols[col][0], rows[row][0])
			scale := f32.Pt(cols[col][1]/float32(src.Dx()), rows[row][1]/float32(src.Dy()))
			r.addSprite(src, pos, scale)
		}
	}
}

// DrawImage draws the source rectangle of img fitted to bounds and
// clipped to them.
func (r *Renderer) DrawImage(bounds f32.Rectangle, img image.Image, source image.Rectangle, fit widget.Fit) {
	r.images = append(r.images, picture{
		img:  img,
		src:  source,
		dst:  fit.Rect(bounds, source.Size()),
		clip: bounds,
	})
}

// DrawProgressBar draws a Secondary button filled from the left with
// a Primary one.
func (r *Renderer) DrawProgressBar(bounds f32.Rectangle, progress float32) {
	r.addButton(bounds, classSecondary, false, 1)
	if progress > 0 {
		r.addButton(bounds, classPrimary, false, progress)
	}
}
