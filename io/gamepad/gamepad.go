// SPDX-License-Identifier: Unlicense OR MIT

// Package gamepad implements gamepad events.
//
// None of the built-in widgets react to gamepads, but the events are
// routed through the widget tree like any other so that custom
// widgets can.
package gamepad

// ID identifies a connected gamepad.
type ID uint8

// Kind of an Event.
type Kind uint8

// Button is a gamepad button.
type Button uint8

// Axis is an analog gamepad axis.
type Axis uint8

// Event is a gamepad event.
type Event struct {
	ID   ID
	Kind Kind
	// Button is set for ButtonPress and ButtonRelease.
	Button Button
	// Axis and Value are set for AxisMove. Value is in [-1, 1].
	Axis  Axis
	Value float32
}

const (
	Connect Kind = iota
	Disconnect
	ButtonPress
	ButtonRelease
	AxisMove
)

const (
	ButtonSouth Button = iota
	ButtonEast
	ButtonNorth
	ButtonWest
	ButtonLeftTrigger
	ButtonRightTrigger
	ButtonSelect
	ButtonStart
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
)

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
)

func (k Kind) String() string {
	switch k {
	case Connect:
		return "Connect"
	case Disconnect:
		return "Disconnect"
	case ButtonPress:
		return "ButtonPress"
	case ButtonRelease:
		return "ButtonRelease"
	case AxisMove:
		return "AxisMove"
	default:
		panic("unknown Kind")
	}
}

func (Event) ImplementsEvent() {}
