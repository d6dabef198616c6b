// SPDX-License-Identifier: Unlicense OR MIT

package basic

import "image"

// Sprite sheet geometry. Sheets loaded from files must follow the
// same layout as the generated default sheet.
var (
	panelSize   = image.Pt(28, 34)
	panelCorner = 8

	buttonLeft = image.Rect(0, 34, 6, 34+49)
	// Button classes are stacked vertically, pressed buttons are to
	// the right of released ones.
	buttonWidth   = 49
	buttonPressed = buttonWidth

	checkbox = image.Rect(98, 0, 98+28, 28)
	radio    = image.Rect(98, 28, 98+28, 28+28)
	// Marks are followed horizontally by their hovered and checked
	// variants.
	markStride = 28

	sliderRail   = image.Rect(98, 56, 99, 60)
	sliderMarker = image.Rect(126, 56, 126+16, 56+24)

	sheetSize = image.Pt(182, 34+3*49)
)

const (
	classPrimary = iota
	classSecondary
	classPositive
	classCount
)

// panelPart returns the source rectangle of a 9-slice part of the
// panel, where col and row are 0 for the start edge, 1 for the
// stretched middle and 2 for the end edge.
func panelPart(col, row int) image.Rectangle {
	span := func(i, size int) (int, int) {
		switch i {
		case 0:
			return 0, panelCorner
		case 1:
			return panelCorner, panelCorner + 1
		default:
			return size - panelCorner, size
		}
	}
	x0, x1 := span(col, panelSize.X)
	y0, y1 := span(row, panelSize.Y)
	return image.Rect(x0, y0, x1, y1)
}

// buttonPart returns the source rectangle of the left (0), middle (1)
// or right (2) part of a button.
func buttonPart(part, class int, pressed bool) image.Rectangle {
	r := buttonLeft
	switch part {
	case 1:
		r.Min.X, r.Max.X = buttonLeft.Dx(), buttonLeft.Dx()+1
	case 2:
		r.Min.X, r.Max.X = buttonWidth-buttonLeft.Dx(), buttonWidth
	}
	off := image.Pt(0, class*buttonLeft.Dy())
	if pressed {
		off.X = buttonPressed
	}
	return r.Add(off)
}

// mark returns the source rectangle of variant i of the mark m.
func mark(m image.Rectangle, i int) image.Rectangle {
	return m.Add(image.Pt(i*markStride, 0))
}

const (
	markIdle = iota
	markHover
	markChecked
)
