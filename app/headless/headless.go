// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements headless windows for rendering
// a user interface to an image.
package headless

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"gioui.org/retained/io/pointer"
)

// Window is a headless window. It implements app.Window.
type Window struct {
	size       image.Point
	img        *image.RGBA
	background color.RGBA
	cursor     pointer.Cursor
}

var ErrSize = errors.New("headless: invalid window size")

// NewWindow creates a new headless window.
func NewWindow(width, height int) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}
	return &Window{
		size:       image.Point{X: width, Y: height},
		img:        image.NewRGBA(image.Rectangle{Max: image.Point{X: width, Y: height}}),
		background: color.RGBA{A: 0xff},
	}, nil
}

// SetBackground sets the color frames are cleared to.
func (w *Window) SetBackground(c color.RGBA) {
	w.background = c
}

func (w *Window) Size() image.Point {
	return w.size
}

func (w *Window) SetCursor(c pointer.Cursor) {
	w.cursor = c
}

// Cursor returns the cursor last set.
func (w *Window) Cursor() pointer.Cursor {
	return w.cursor
}

// Frame clears the window and returns the image to draw the next
// frame onto.
func (w *Window) Frame() draw.Image {
	draw.Draw(w.img, w.img.Bounds(), image.NewUniform(w.background), image.Point{}, draw.Src)
	return w.img
}

// Screenshot returns an image with the content of the window.
func (w *Window) Screenshot() (*image.RGBA, error) {
	if w.img == nil {
		return nil, errors.New("headless: window released")
	}
	img := image.NewRGBA(w.img.Bounds())
	copy(img.Pix, w.img.Pix)
	return img, nil
}

// Release resources associated with the window.
func (w *Window) Release() {
	w.img = nil
}
