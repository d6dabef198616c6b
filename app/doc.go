// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app runs a user interface frame by frame on top of a host
window.

A program describes its state with a UserInterface: React updates the
state with a message and View describes the widgets of the current
state. A Loop ties a UserInterface to a renderer and a Window:

	loop := app.NewLoop[draw.Image, Message, *basic.Renderer](counter, renderer, window)
	for {
		loop.Queue(events...)
		loop.Frame(frame, cursor)
	}

Every Frame lays out the view, reusing the previous layout if the
view did not change, delivers the queued events, draws and flushes
the frame, and finally hands the produced messages to React in order.

The cursor suggested by the view is forwarded to the window whenever
it changes. A cursor other than pointer.OutOfBounds means the user
interface has taken the pointer and the rest of the program should
ignore it.
*/
package app
