// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements pointer events and the cursor
// suggestions widgets report while drawing.
package pointer

import (
	"strings"

	"gioui.org/retained/f32"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Buttons are the mouse buttons involved in the event. For Press
	// and Release it is the button that changed state.
	Buttons Buttons
	// Position is the cursor position in the coordinate space of the
	// user interface, if known to the host.
	Position f32.Point
	// Scroll is the scroll amount in lines, if any.
	Scroll f32.Point
}

// Kind of an Event.
type Kind uint

// Buttons is a set of mouse buttons
type Buttons uint8

// Cursor is the cursor appearance suggested by a widget when drawn.
// Containers reduce the suggestions of their children and the user
// interface hands the final value to the host window.
type Cursor byte

const (
	// A Press event is generated when a mouse button is pressed.
	Press Kind = 1 << iota
	// A Release event is generated when a mouse button is released.
	Release
	// A Move event is generated when the cursor moves.
	Move
	// An Enter event is generated when the cursor enters the window.
	Enter
	// A Leave event is generated when the cursor leaves the window.
	Leave
	// Scroll of the mouse wheel.
	Scroll
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

const (
	// OutOfBounds means the cursor is not over the widget. It is the
	// sentinel containers skip when reducing suggestions.
	OutOfBounds Cursor = iota
	// Idle is the default cursor over a widget without affordances.
	Idle
	// Pointer is for clickable widgets.
	Pointer
	// Working is shown while the program is busy.
	Working
	// Grab is for content that can be dragged.
	Grab
	// Grabbing is for content being dragged.
	Grabbing
)

// Taken reports whether the cursor is over the user interface.
func (c Cursor) Taken() bool {
	return c != OutOfBounds
}

// CSS returns the CSS cursor name hosts use to pick a platform cursor.
func (c Cursor) CSS() string {
	switch c {
	case OutOfBounds, Idle:
		return "default"
	case Pointer:
		return "pointer"
	case Working:
		return "progress"
	case Grab:
		return "grab"
	case Grabbing:
		return "grabbing"
	default:
		panic("unknown Cursor")
	}
}

func (c Cursor) String() string {
	switch c {
	case OutOfBounds:
		return "OutOfBounds"
	case Idle:
		return "Idle"
	case Pointer:
		return "Pointer"
	case Working:
		return "Working"
	case Grab:
		return "Grab"
	case Grabbing:
		return "Grabbing"
	default:
		panic("unknown Cursor")
	}
}

func (t Kind) String() string {
	var buf strings.Builder
	for tt := Kind(1); tt > 0 && tt <= Scroll; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Enter:
		return "Enter"
	case Leave:
		return "Leave"
	case Scroll:
		return "Scroll"
	default:
		panic("unknown Type")
	}
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}

// IsPrimaryPress reports whether e presses the primary button.
func (e Event) IsPrimaryPress() bool {
	return e.Kind == Press && e.Buttons.Contain(ButtonPrimary)
}

// IsPrimaryRelease reports whether e releases the primary button.
func (e Event) IsPrimaryRelease() bool {
	return e.Kind == Release && e.Buttons.Contain(ButtonPrimary)
}

func (Event) ImplementsEvent() {}
