// SPDX-License-Identifier: Unlicense OR MIT

package term

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"gioui.org/retained/io/pointer"
)

// Window is a terminal screen hosting a user interface laid out in
// pixels. Terminals have no pointer shapes; the cursor is only
// recorded.
type Window struct {
	screen tcell.Screen
	cell   image.Point
	cursor pointer.Cursor
}

func NewWindow(s tcell.Screen, cellSize image.Point) *Window {
	return &Window{screen: s, cell: cellSize}
}

// Size returns the size of the screen in layout pixels.
func (w *Window) Size() image.Point {
	cols, rows := w.screen.Size()
	return image.Pt(cols*w.cell.X, rows*w.cell.Y)
}

func (w *Window) SetCursor(c pointer.Cursor) {
	w.cursor = c
}

func (w *Window) Cursor() pointer.Cursor {
	return w.cursor
}
