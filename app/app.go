// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"gioui.org/retained/io/pointer"
	"gioui.org/retained/ui"
)

// UserInterface is the state of a program together with its update
// and view logic. Messages of type M are produced by the widgets of
// the view.
type UserInterface[M, R any] interface {
	// React updates the state with a message.
	React(msg M)
	// View returns the widgets of the current state, to be laid out
	// in a window of the given size.
	View(size image.Point) ui.Element[M, R]
}

// Window is the host of a user interface.
type Window interface {
	// Size returns the window size in layout pixels.
	Size() image.Point
	// SetCursor changes the appearance of the mouse cursor.
	SetCursor(c pointer.Cursor)
}
