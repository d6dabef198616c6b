// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/retained/f32"
)

// Fit scales an image to its bounds.
type Fit uint8

const (
	// Contain scales the image as large as possible without cropping
	// and it preserves aspect-ratio.
	Contain Fit = iota
	// Cover scales the image to cover the bounds and preserves
	// aspect-ratio.
	Cover
	// ScaleDown scales the image smaller without cropping, when it
	// exceeds the bounds. It preserves aspect-ratio.
	ScaleDown
	// Fill stretches the image to the bounds and does not preserve
	// aspect-ratio.
	Fill
	// Unscaled does not alter the scale of the image.
	Unscaled
)

// Rect returns the rectangle an image of the given size covers when
// fitted to bounds, centered within them. The result may exceed
// bounds for Cover and Unscaled.
func (fit Fit) Rect(bounds f32.Rectangle, size image.Point) f32.Rectangle {
	if size.X == 0 || size.Y == 0 || fit == Fill {
		return bounds
	}
	sz := f32.Pt(float32(size.X), float32(size.Y))
	scale := f32.Point{
		X: bounds.Dx() / sz.X,
		Y: bounds.Dy() / sz.Y,
	}
	switch fit {
	case Contain:
		scale.X = min(scale.X, scale.Y)
	case Cover:
		scale.X = max(scale.X, scale.Y)
	case ScaleDown:
		scale.X = min(scale.X, scale.Y, 1)
	case Unscaled:
		scale.X = 1
	}
	scaled := sz.Mul(scale.X)
	c := bounds.Center()
	return f32.Rectangle{
		Min: c.Sub(scaled.Mul(.5)),
		Max: c.Add(scaled.Mul(.5)),
	}
}

func (fit Fit) String() string {
	switch fit {
	case Contain:
		return "Contain"
	case Cover:
		return "Cover"
	case ScaleDown:
		return "ScaleDown"
	case Fill:
		return "Fill"
	case Unscaled:
		return "Unscaled"
	default:
		panic("unreachable")
	}
}
