// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"hash"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/layout"
)

// Widget is a user interface primitive producing messages of type M
// and drawn by renderers of type R.
type Widget[M, R any] interface {
	// Node returns the layout intent of the widget. The renderer may
	// only be used for measuring.
	Node(r R) *layout.Node
	// OnEvent processes an event. The layout is the solved geometry
	// of the node returned by Node; events are delivered regardless
	// of whether the cursor is within its bounds.
	OnEvent(e event.Event, l layout.Layout, cursor f32.Point, msgs *[]M)
	// Draw draws the widget and suggests a cursor. Draw must not
	// change interaction state.
	Draw(r R, l layout.Layout, cursor f32.Point) pointer.Cursor
	// Hash folds everything affecting the layout or appearance of the
	// widget into h.
	Hash(h hash.Hash64)
}

// Passive is embedded by widgets ignoring events.
type Passive[M any] struct{}

func (Passive[M]) OnEvent(event.Event, layout.Layout, f32.Point, *[]M) {}
