package node

import (
	mapset "github.com/deckarep/golang-set"
	"github.com/sirupsen/logrus"

	"scheduler-node-editor/internal/catalog"
)

// ApplyScheduler reconciles the node's visible parameter widgets with
// the catalog entry for the given scheduler and resizes the node by the
// net number of rows shown or hidden. An unknown scheduler resolves to
// the empty set, hiding every parameter widget.
func ApplyScheduler(n *Node, cat catalog.Catalog, scheduler string, logger *logrus.Logger) {
	if _, ok := cat.Params(scheduler); !ok {
		logger.WithFields(logrus.Fields{
			"node":      n.ID,
			"scheduler": scheduler,
			"closest":   cat.Closest(scheduler),
		}).Debug("Scheduler not in catalog, hiding all parameters")
	}
	react(n, cat, cat.ParamNames(scheduler), true)
}

// ApplyVisible reconciles against an explicit name list instead of a
// catalog lookup. It does not resize: the caller uses it to restore a
// serialized layout whose size was already persisted.
func ApplyVisible(n *Node, cat catalog.Catalog, names []string) {
	react(n, cat, names, false)
}

// react drives the visibility controller toward the desired set. The
// candidate-removal set is the union of all names ever declared in the
// catalog rather than the previously shown set, so the operation
// converges even when earlier toggles were interrupted or the catalog
// changed between calls. Given the same desired set it is idempotent.
func react(n *Node, cat catalog.Catalog, desired []string, resize bool) {
	origType := make(map[string]string, len(n.Widgets))
	hiddenBefore := make(map[string]bool, len(n.Widgets))
	for _, w := range n.Widgets {
		origType[w.Name] = w.OriginalType()
		hiddenBefore[w.Name] = w.Hidden()
	}

	want := mapset.NewSet()
	for _, name := range desired {
		want.Add(name)
	}

	cat.AllParamNames().Each(func(item interface{}) bool {
		name := item.(string)
		if !want.Contains(name) {
			Hide(n.Widget(name))
		}
		return false
	})

	for _, name := range desired {
		w := n.Widget(name)
		if w == nil {
			continue
		}
		Show(w)
		if w.Hidden() || w.Type == "" {
			// A prior hide/show imbalance left the type undefined;
			// fall back to the snapshot taken before this pass.
			if orig := origType[name]; orig != "" {
				w.Type = orig
			}
		}
	}

	if !resize {
		return
	}

	added, removed := 0, 0
	for _, w := range n.Widgets {
		switch {
		case hiddenBefore[w.Name] && !w.Hidden():
			added++
		case !hiddenBefore[w.Name] && w.Hidden():
			removed++
		}
	}
	n.Size.Height += float64(added-removed) * RowHeight
}
