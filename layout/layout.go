// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"encoding/binary"
	"hash"
	"math"
)

// Unit of a Length.
type Unit uint8

// Length is a single dimension of a Style: undefined, automatic,
// a fixed number of pixels or a fraction of the parent.
type Length struct {
	Unit  Unit
	Value float32
}

// Edges is a length for each side of a box.
type Edges struct {
	Top, Right, Bottom, Left Length
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Align is the alignment of children along the cross axis.
type Align uint8

// Justify is the distribution of children along the main axis.
type Justify uint8

const (
	UnitUndefined Unit = iota
	UnitAuto
	UnitPx
	UnitPercent
)

const (
	// Horizontal lays out children in a row.
	Horizontal Axis = iota
	// Vertical lays out children in a column.
	Vertical
)

const (
	// Auto defers to the parent's AlignItems. It is only meaningful
	// for AlignSelf.
	AlignAuto Align = iota
	Start
	Center
	End
	Stretch
)

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Undefined is the zero Length.
var Undefined = Length{}

// Auto sizes to content.
var Auto = Length{Unit: UnitAuto}

// Px returns a fixed Length of v pixels.
func Px(v float32) Length {
	return Length{Unit: UnitPx, Value: v}
}

// Percent returns a Length of fraction p of the parent's size, where
// 1 means the whole parent.
func Percent(p float32) Length {
	return Length{Unit: UnitPercent, Value: p}
}

// UniformEdges returns Edges with l on every side.
func UniformEdges(l Length) Edges {
	return Edges{Top: l, Right: l, Bottom: l, Left: l}
}

func (l Length) hash(h hash.Hash64) {
	var buf [5]byte
	buf[0] = byte(l.Unit)
	binary.LittleEndian.PutUint32(buf[1:], math.Float32bits(l.Value))
	h.Write(buf[:])
}

func (e Edges) hash(h hash.Hash64) {
	e.Top.hash(h)
	e.Right.hash(h)
	e.Bottom.hash(h)
	e.Left.hash(h)
}

func (l Length) String() string {
	switch l.Unit {
	case UnitUndefined:
		return "undefined"
	case UnitAuto:
		return "auto"
	case UnitPx:
		return formatFloat(l.Value) + "px"
	case UnitPercent:
		return formatFloat(l.Value*100) + "%"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (a Align) String() string {
	switch a {
	case AlignAuto:
		return "Auto"
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	case Stretch:
		return "Stretch"
	default:
		panic("unreachable")
	}
}

func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "Start"
	case JustifyCenter:
		return "Center"
	case JustifyEnd:
		return "End"
	case JustifySpaceBetween:
		return "SpaceBetween"
	case JustifySpaceAround:
		return "SpaceAround"
	case JustifySpaceEvenly:
		return "SpaceEvenly"
	default:
		panic("unreachable")
	}
}
