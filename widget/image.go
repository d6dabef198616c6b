// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hash"
	"image"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/layout"
	"gioui.org/retained/ui"
)

// ImageRenderer draws images.
type ImageRenderer interface {
	// DrawImage draws the source rectangle of img fitted to bounds.
	DrawImage(bounds f32.Rectangle, img image.Image, source image.Rectangle, fit Fit)
}

// Image displays an image, or a part of it, scaled to fit its bounds.
// By default it fills the parent.
type Image[M any, R ImageRenderer] struct {
	ui.Passive[M]

	src    image.Image
	source image.Rectangle
	fit    Fit
	style  layout.Style
}

// NewImage returns a widget drawing img.
func NewImage[M any, R ImageRenderer](img image.Image) *Image[M, R] {
	return &Image[M, R]{
		src:    img,
		source: img.Bounds(),
		style:  layout.DefaultStyle().FillWidth().FillHeight(),
	}
}

// Clip restricts the image to the source rectangle.
func (im *Image[M, R]) Clip(source image.Rectangle) *Image[M, R] {
	im.source = source.Intersect(im.src.Bounds())
	return im
}

// Fit sets how the image is scaled into its bounds.
func (im *Image[M, R]) Fit(f Fit) *Image[M, R] {
	im.fit = f
	return im
}

// Width fixes the width in pixels.
func (im *Image[M, R]) Width(px float32) *Image[M, R] {
	im.style = im.style.WithWidth(px)
	return im
}

// Height fixes the height in pixels.
func (im *Image[M, R]) Height(px float32) *Image[M, R] {
	im.style = im.style.WithHeight(px)
	return im
}

func (im *Image[M, R]) Element() ui.Element[M, R] {
	return ui.New[M, R](im)
}

func (im *Image[M, R]) Node(R) *layout.Node {
	return layout.NewNode(im.style)
}

func (im *Image[M, R]) Draw(r R, l layout.Layout, _ f32.Point) pointer.Cursor {
	r.DrawImage(l.Bounds(), im.src, im.source, im.fit)
	return pointer.OutOfBounds
}

func (im *Image[M, R]) Hash(h hash.Hash64) {
	im.style.Hash(h)
	hashString(h, "image")
	s := im.source
	hashFloats(h, float32(s.Min.X), float32(s.Min.Y), float32(s.Max.X), float32(s.Max.Y))
	hashBytes(h, byte(im.fit))
}
