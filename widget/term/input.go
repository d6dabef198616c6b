// SPDX-License-Identifier: Unlicense OR MIT

package term

import (
	"image"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"gioui.org/retained/f32"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/key"
	"gioui.org/retained/io/pointer"
)

// Input translates tcell events into the events of a user interface
// laid out with cells of the given size. Terminals report the held
// buttons on every mouse event; Input compares them with the previous
// event to tell presses and releases from moves.
type Input struct {
	cell    image.Point
	buttons tcell.ButtonMask
}

func NewInput(cellSize image.Point) *Input {
	return &Input{cell: cellSize}
}

// Translate returns the events corresponding to ev, if any.
func (in *Input) Translate(ev tcell.Event) []event.Event {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return in.mouse(ev)
	case *tcell.EventKey:
		if e, ok := translateKey(ev); ok {
			return []event.Event{e}
		}
	}
	return nil
}

func (in *Input) mouse(ev *tcell.EventMouse) []event.Event {
	x, y := ev.Position()
	pos := f32.Pt(
		(float32(x)+.5)*float32(in.cell.X),
		(float32(y)+.5)*float32(in.cell.Y),
	)
	btns := ev.Buttons()
	if scroll := wheel(btns); scroll != (f32.Point{}) {
		return []event.Event{pointer.Event{Kind: pointer.Scroll, Position: pos, Scroll: scroll}}
	}
	btns &= tcell.Button1 | tcell.Button2 | tcell.Button3
	prev := in.buttons
	in.buttons = btns
	var events []event.Event
	for _, b := range [...]struct {
		mask tcell.ButtonMask
		btn  pointer.Buttons
	}{
		{tcell.Button1, pointer.ButtonPrimary},
		{tcell.Button2, pointer.ButtonSecondary},
		{tcell.Button3, pointer.ButtonTertiary},
	} {
		switch down, was := btns&b.mask != 0, prev&b.mask != 0; {
		case down && !was:
			events = append(events, pointer.Event{Kind: pointer.Press, Buttons: b.btn, Position: pos})
		case !down && was:
			events = append(events, pointer.Event{Kind: pointer.Release, Buttons: b.btn, Position: pos})
		}
	}
	if len(events) == 0 {
		events = append(events, pointer.Event{Kind: pointer.Move, Position: pos})
	}
	return events
}

func wheel(b tcell.ButtonMask) f32.Point {
	var s f32.Point
	if b&tcell.WheelUp != 0 {
		s.Y--
	}
	if b&tcell.WheelDown != 0 {
		s.Y++
	}
	if b&tcell.WheelLeft != 0 {
		s.X--
	}
	if b&tcell.WheelRight != 0 {
		s.X++
	}
	return s
}

var keyNames = map[tcell.Key]key.Name{
	tcell.KeyLeft:       key.NameLeftArrow,
	tcell.KeyRight:      key.NameRightArrow,
	tcell.KeyUp:         key.NameUpArrow,
	tcell.KeyDown:       key.NameDownArrow,
	tcell.KeyEnter:      key.NameReturn,
	tcell.KeyEscape:     key.NameEscape,
	tcell.KeyHome:       key.NameHome,
	tcell.KeyEnd:        key.NameEnd,
	tcell.KeyBackspace2: key.NameDeleteBackward,
	tcell.KeyDelete:     key.NameDeleteForward,
	tcell.KeyPgUp:       key.NamePageUp,
	tcell.KeyPgDn:       key.NamePageDown,
	tcell.KeyTab:        key.NameTab,
}

func translateKey(ev *tcell.EventKey) (key.Event, bool) {
	var mods key.Modifiers
	m := ev.Modifiers()
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModSuper
	}
	e := key.Event{Modifiers: mods, State: key.Press}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			e.Name = key.NameSpace
		} else {
			e.Name = key.Name(string(unicode.ToUpper(r)))
		}
		return e, true
	}
	n, ok := keyNames[ev.Key()]
	if !ok {
		return key.Event{}, false
	}
	e.Name = n
	return e, true
}
