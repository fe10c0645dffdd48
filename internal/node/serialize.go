package node

// State is the persisted form of a node. Only widgets whose
// serialization rule is active contribute to Values, so hidden
// parameters never reach saved documents.
type State struct {
	ID     int            `json:"id"`
	Title  string         `json:"title"`
	Size   [2]float64     `json:"size"`
	Values map[string]any `json:"widget_values"`
}

// SerializedValues collects the values of every widget whose
// serialization rule reports them as present.
func (n *Node) SerializedValues() map[string]any {
	values := make(map[string]any)
	for _, w := range n.Widgets {
		if v, ok := w.Serialize(w); ok {
			values[w.Name] = v
		}
	}
	return values
}

// SaveState captures the node for persistence.
func (n *Node) SaveState() State {
	return State{
		ID:     n.ID,
		Title:  n.Title,
		Size:   [2]float64{n.Size.Width, n.Size.Height},
		Values: n.SerializedValues(),
	}
}

// Restore applies a persisted state: the node width and any widget
// values present in it. Values for widgets the node does not have are
// skipped. Height is derived from widget visibility, so the caller
// re-runs the selector reactor afterwards; a host restoring an exact
// persisted layout sets Size.Height itself and reconciles with
// ApplyVisible instead.
func (n *Node) Restore(st State) {
	n.Size.Width = st.Size[0]
	for name, value := range st.Values {
		if w := n.Widget(name); w != nil {
			w.Value = value
		}
	}
}
