package node

import (
	mapset "github.com/deckarep/golang-set"
	"github.com/sirupsen/logrus"

	"scheduler-node-editor/internal/catalog"
)

// WidgetFactory instantiates a typed widget for a parameter declaration.
// It returns nil for declarations it does not support.
type WidgetFactory interface {
	Create(n *Node, name string, decl catalog.Declaration) *Widget
}

// BuildWidgets runs once at node creation. It instantiates every numeric
// parameter declared anywhere in the catalog, deduplicated by name: a
// parameter shared by several schedulers still produces exactly one
// widget, reused across every selector change afterwards. The new
// widgets are moved to a contiguous block directly after the node's
// intrinsic widgets, then hidden, and the node height is reduced
// accordingly. The created parameter names are returned in widget order.
func BuildWidgets(n *Node, cat catalog.Catalog, factory WidgetFactory, logger *logrus.Logger) []string {
	created := make([]string, 0)
	seen := mapset.NewSet()

	// Catalog maps iterate in random order; walking sorted keys keeps
	// the widget block order deterministic across runs.
	for _, scheduler := range cat.Schedulers() {
		for _, name := range cat.ParamNames(scheduler) {
			if seen.Contains(name) {
				continue
			}
			decl := cat[scheduler][name]
			if decl.Kind != catalog.KindNumber {
				continue
			}
			w := factory.Create(n, name, decl)
			if w == nil {
				continue
			}
			seen.Add(name)
			n.AddWidget(w)
			created = append(created, name)
		}
	}

	if len(created) > 0 {
		relocate(n, len(created), logger)
	}

	// The appended widgets each occupy a row until hidden; grow first
	// so the downward adjustment below nets out to zero visible rows.
	n.Size.Height += float64(len(created)) * RowHeight
	for _, name := range created {
		Hide(n.Widget(name))
	}
	n.Size.Height -= float64(len(created)) * RowHeight

	return created
}

// relocate moves the last count widgets to sit directly after the
// node's intrinsic widgets, preserving their relative order. When the
// node does not hold enough widgets the builder ran before the
// intrinsic widgets existed; the list is left unchanged and a warning
// is logged.
func relocate(n *Node, count int, logger *logrus.Logger) {
	if len(n.Widgets) < count || n.Intrinsic > len(n.Widgets)-count {
		logger.WithFields(logrus.Fields{
			"node":      n.ID,
			"widgets":   len(n.Widgets),
			"relocated": count,
			"intrinsic": n.Intrinsic,
		}).Warn("Not enough widgets to relocate parameter block")
		return
	}

	split := len(n.Widgets) - count
	block := n.Widgets[split:]
	rest := n.Widgets[:split]

	widgets := make([]*Widget, 0, len(n.Widgets))
	widgets = append(widgets, rest[:n.Intrinsic]...)
	widgets = append(widgets, block...)
	widgets = append(widgets, rest[n.Intrinsic:]...)
	n.Widgets = widgets
}
