// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"github.com/kjk/flex"

	"gioui.org/retained/f32"
)

// Tree is the solved geometry of a Node tree. It has the shape of
// the Node tree it was solved from and is never mutated.
type Tree struct {
	root box
}

type box struct {
	// rect is relative to the parent box.
	rect     f32.Rectangle
	children []box
}

// Layout is a read-only view of a solved node in absolute
// coordinates.
type Layout struct {
	box    *box
	origin f32.Point
}

// Solve lays out n within available. Unconstrained axes are Inf.
func Solve(n *Node, available Size) *Tree {
	root := toFlex(n)
	flex.CalculateLayout(root, toFlexAvailable(available.Width), toFlexAvailable(available.Height), flex.DirectionLTR)
	return &Tree{root: fromFlex(root, n)}
}

// Layout returns the view of the root node.
func (t *Tree) Layout() Layout {
	return Layout{box: &t.root}
}

// Bounds returns the absolute bounds of the node.
func (l Layout) Bounds() f32.Rectangle {
	return l.box.rect.Add(l.origin)
}

// Len returns the number of children.
func (l Layout) Len() int {
	return len(l.box.children)
}

// Child returns the view of child i.
func (l Layout) Child(i int) Layout {
	return Layout{box: &l.box.children[i], origin: l.Bounds().Min}
}

// Children returns the views of every child, in order.
func (l Layout) Children() []Layout {
	children := make([]Layout, len(l.box.children))
	for i := range children {
		children[i] = l.Child(i)
	}
	return children
}

// Offset returns l translated by p.
func (l Layout) Offset(p f32.Point) Layout {
	l.origin = l.origin.Add(p)
	return l
}

func toFlexAvailable(v float32) float32 {
	if math.IsInf(float64(v), 1) {
		return flex.Undefined
	}
	return v
}

func toFlex(n *Node) *flex.Node {
	fn := flex.NewNode()
	applyStyle(&fn.Style, n.style)
	if m := n.measure; m != nil {
		fn.SetMeasureFunc(func(_ *flex.Node, width float32, wmode flex.MeasureMode, height float32, hmode flex.MeasureMode) flex.Size {
			sz := m(fromFlexAvailable(width, wmode), fromFlexAvailable(height, hmode))
			return flex.Size{Width: sz.Width, Height: sz.Height}
		})
		return fn
	}
	var children []*flex.Node
	for _, c := range n.children {
		children = append(children, toFlex(c))
	}
	// Space-evenly is space-between with an empty spacer at each end.
	if evenly(n) {
		children = append([]*flex.Node{spacer()}, append(children, spacer())...)
	}
	for i, c := range children {
		fn.InsertChild(c, i)
	}
	return fn
}

func evenly(n *Node) bool {
	return n.measure == nil && n.style.JustifyContent == JustifySpaceEvenly
}

func spacer() *flex.Node {
	sp := flex.NewNode()
	zero := flex.Value{Value: 0, Unit: flex.UnitPoint}
	sp.Style.Dimensions[flex.DimensionWidth] = zero
	sp.Style.Dimensions[flex.DimensionHeight] = zero
	sp.Style.AlignSelf = flex.AlignFlexStart
	return sp
}

func fromFlexAvailable(v float32, mode flex.MeasureMode) float32 {
	if mode == flex.MeasureModeUndefined || flex.FloatIsUndefined(v) {
		return Inf
	}
	return v
}

// fromFlex copies the layout of fn, solved from n, leaving out the
// spacers added by toFlex.
func fromFlex(fn *flex.Node, n *Node) box {
	l := fn.Layout
	b := box{
		rect: f32.Rect(
			l.Position[flex.EdgeLeft],
			l.Position[flex.EdgeTop],
			l.Dimensions[flex.DimensionWidth],
			l.Dimensions[flex.DimensionHeight],
		),
	}
	children := fn.Children
	if evenly(n) {
		children = children[1 : len(children)-1]
	}
	if len(children) > 0 {
		b.children = make([]box, len(children))
		for i, c := range children {
			b.children[i] = fromFlex(c, n.children[i])
		}
	}
	return b
}

func applyStyle(fs *flex.Style, s Style) {
	fs.Dimensions[flex.DimensionWidth] = toFlexValue(s.Width, flex.ValueAuto)
	fs.Dimensions[flex.DimensionHeight] = toFlexValue(s.Height, flex.ValueAuto)
	fs.MinDimensions[flex.DimensionWidth] = toFlexValue(s.MinWidth, flex.ValueUndefined)
	fs.MinDimensions[flex.DimensionHeight] = toFlexValue(s.MinHeight, flex.ValueUndefined)
	fs.MaxDimensions[flex.DimensionWidth] = toFlexValue(s.MaxWidth, flex.ValueUndefined)
	fs.MaxDimensions[flex.DimensionHeight] = toFlexValue(s.MaxHeight, flex.ValueUndefined)
	applyEdges(&fs.Padding, s.Padding)
	applyEdges(&fs.Margin, s.Margin)
	switch s.Axis {
	case Horizontal:
		fs.FlexDirection = flex.FlexDirectionRow
	case Vertical:
		fs.FlexDirection = flex.FlexDirectionColumn
	}
	if s.AlignItems == AlignAuto {
		fs.AlignItems = flex.AlignStretch
	} else {
		fs.AlignItems = toFlexAlign(s.AlignItems)
	}
	fs.AlignSelf = toFlexAlign(s.AlignSelf)
	fs.JustifyContent = toFlexJustify(s.JustifyContent)
	fs.FlexGrow = s.FlexGrow
	fs.FlexShrink = 1
}

func applyEdges(fe *[flex.EdgeCount]flex.Value, e Edges) {
	fe[flex.EdgeTop] = toFlexValue(e.Top, flex.ValueUndefined)
	fe[flex.EdgeRight] = toFlexValue(e.Right, flex.ValueUndefined)
	fe[flex.EdgeBottom] = toFlexValue(e.Bottom, flex.ValueUndefined)
	fe[flex.EdgeLeft] = toFlexValue(e.Left, flex.ValueUndefined)
}

func toFlexValue(l Length, undefined flex.Value) flex.Value {
	switch l.Unit {
	case UnitAuto:
		return flex.ValueAuto
	case UnitPx:
		return flex.Value{Value: l.Value, Unit: flex.UnitPoint}
	case UnitPercent:
		return flex.Value{Value: l.Value * 100, Unit: flex.UnitPercent}
	default:
		return undefined
	}
}

func toFlexAlign(a Align) flex.Align {
	switch a {
	case Start:
		return flex.AlignFlexStart
	case Center:
		return flex.AlignCenter
	case End:
		return flex.AlignFlexEnd
	case Stretch:
		return flex.AlignStretch
	default:
		return flex.AlignAuto
	}
}

func toFlexJustify(j Justify) flex.Justify {
	switch j {
	case JustifyCenter:
		return flex.JustifyCenter
	case JustifyEnd:
		return flex.JustifyFlexEnd
	case JustifySpaceBetween, JustifySpaceEvenly:
		return flex.JustifySpaceBetween
	case JustifySpaceAround:
		return flex.JustifySpaceAround
	default:
		return flex.JustifyFlexStart
	}
}
