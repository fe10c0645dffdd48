// Node and widget model for the graph editor
package node

import (
	"scheduler-node-editor/internal/catalog"
)

// RowHeight is the fixed height delta applied to a node per widget row
// shown or hidden.
const RowHeight = 20.0

// Size is a node's on-canvas extent.
type Size struct {
	Width  float64
	Height float64
}

// SizeFunc computes the space a widget occupies given the node width.
type SizeFunc func(w *Widget, nodeWidth float64) Size

// SerializeFunc extracts a widget's value for persistence. The boolean
// reports whether the value should be written at all; hidden widgets
// return false so they never leak into saved state.
type SerializeFunc func(w *Widget) (any, bool)

// savedState holds the fields a hidden widget needs to restore itself.
// Its presence is the hidden marker's counterpart: a visible widget
// always has saved == nil, a hidden one always has it set.
type savedState struct {
	typ         string
	computeSize SizeFunc
	serialize   SerializeFunc
}

// Widget is one control on a node, identified by name within its owning
// node. A widget is created once and toggled between visible and hidden
// for the node's whole lifetime; it is never recreated.
type Widget struct {
	Name    string
	Type    string
	Value   any
	Options catalog.Declaration

	// Linked widgets mirror this widget's visibility, e.g. a value
	// paired with its control-mode toggle.
	Linked []*Widget

	// InputDriven marks a widget whose value arrives over an input
	// link; such widgets keep serializing even while hidden.
	InputDriven bool

	ComputeSize SizeFunc
	Serialize   SerializeFunc

	// Handle is the host editor's rendering object for this widget.
	Handle any

	saved *savedState
}

// NewWidget creates a visible widget with the default size and
// serialization rules.
func NewWidget(name, typ string, value any, opts catalog.Declaration) *Widget {
	return &Widget{
		Name:    name,
		Type:    typ,
		Value:   value,
		Options: opts,
		ComputeSize: func(w *Widget, nodeWidth float64) Size {
			return Size{Width: nodeWidth, Height: RowHeight}
		},
		Serialize: func(w *Widget) (any, bool) {
			return w.Value, true
		},
	}
}

// Node owns an ordered widget list and a canvas size. One Node exists
// per graph placement.
type Node struct {
	ID    int
	Title string
	Size  Size

	// Intrinsic is the count of the node's fixed, always-visible
	// widgets. Parameter widgets are relocated to sit directly after
	// them.
	Intrinsic int

	Widgets []*Widget
}

// New creates a node with an initial size.
func New(id int, title string, width, height float64) *Node {
	return &Node{
		ID:    id,
		Title: title,
		Size:  Size{Width: width, Height: height},
	}
}

// Widget returns the widget with the given name, or nil. Callers must
// treat nil as "not present": the catalog and the widget list are not
// guaranteed to agree.
func (n *Node) Widget(name string) *Widget {
	for _, w := range n.Widgets {
		if w.Name == name {
			return w
		}
	}
	return nil
}

// AddWidget appends a widget to the node.
func (n *Node) AddWidget(w *Widget) {
	n.Widgets = append(n.Widgets, w)
}

// VisibleWidgets returns the widgets currently visible, in list order.
func (n *Node) VisibleWidgets() []*Widget {
	visible := make([]*Widget, 0, len(n.Widgets))
	for _, w := range n.Widgets {
		if !w.Hidden() {
			visible = append(visible, w)
		}
	}
	return visible
}
