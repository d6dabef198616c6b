// SPDX-License-Identifier: Unlicense OR MIT

package term_test

import (
	"image"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/key"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/widget/term"
)

func TestInputMouse(t *testing.T) {
	in := term.NewInput(image.Pt(8, 16))
	mouse := func(x, y int, b tcell.ButtonMask) pointer.Event {
		evs := in.Translate(tcell.NewEventMouse(x, y, b, tcell.ModNone))
		require.Len(t, evs, 1)
		return evs[0].(pointer.Event)
	}

	e := mouse(2, 1, tcell.ButtonNone)
	assert.Equal(t, pointer.Move, e.Kind)
	assert.Equal(t, f32.Pt(20, 24), e.Position)

	e = mouse(2, 1, tcell.Button1)
	assert.Equal(t, pointer.Press, e.Kind)
	assert.Equal(t, pointer.ButtonPrimary, e.Buttons)

	e = mouse(3, 1, tcell.Button1)
	assert.Equal(t, pointer.Move, e.Kind)

	e = mouse(3, 1, tcell.ButtonNone)
	assert.Equal(t, pointer.Release, e.Kind)
	assert.Equal(t, pointer.ButtonPrimary, e.Buttons)

	e = mouse(3, 1, tcell.WheelDown)
	assert.Equal(t, pointer.Scroll, e.Kind)
	assert.Equal(t, f32.Pt(0, 1), e.Scroll)
}

func TestInputKey(t *testing.T) {
	in := term.NewInput(image.Pt(8, 16))
	evs := in.Translate(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	require.Len(t, evs, 1)
	assert.Equal(t, key.Name("Q"), evs[0].(key.Event).Name)

	evs = in.Translate(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	require.Len(t, evs, 1)
	assert.Equal(t, key.NameReturn, evs[0].(key.Event).Name)

	assert.Empty(t, in.Translate(tcell.NewEventResize(10, 10)))
}
