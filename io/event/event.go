// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
//
// The host window translates its raw input into values from the
// pointer, key and gamepad packages; the user interface routes
// them down the widget tree one at a time.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
