// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ui implements a retained user interface: a tree of widgets
rebuilt by the program whenever its state changes, laid out once per
frame and then fed input events and drawn against that layout.

# Widgets and Elements

A Widget declares its layout intent as a layout.Node, reacts to events
by appending messages of the program's choosing, and draws itself by
calling methods of a renderer. Element is an owned, type erased
Widget. Containers own their children as Elements, so a tree can never
contain a cycle.

Interaction state that must survive the rebuild, such as whether a
button is pressed, is owned by the program and handed to widget
constructors by pointer.

# Messages

Widgets produce messages of type M. Map converts the messages of an
Element to another type, which lets independently written parts of an
interface be composed:

	settings := ui.Map(s.View(), func(m settings.Message) Message {
		return Message{Settings: m}
	})

# Interface

An Interface is the solved layout of a root Element. Compute solves
the layout and OnEvent and Draw may then be called any number of times
against it:

	iface := ui.Compute[draw.Image](root, renderer)
	for _, e := range events {
		iface.OnEvent(e, cursor, &msgs)
	}
	c := iface.Draw(renderer, frame, cursor)

The Cache of an Interface carries its solved layout over to the next
frame when the widget tree hashes the same.
*/
package ui
