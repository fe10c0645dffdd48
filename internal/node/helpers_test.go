package node

import (
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"scheduler-node-editor/internal/catalog"
)

// stubFactory builds plain numeric widgets without any host toolkit.
type stubFactory struct{}

func (stubFactory) Create(n *Node, name string, decl catalog.Declaration) *Widget {
	if decl.Kind != catalog.KindNumber {
		return nil
	}
	return NewWidget(name, "number", decl.Default, decl)
}

func declOf() catalog.Declaration {
	return catalog.Declaration{}
}

func declString() catalog.Declaration {
	return catalog.Declaration{Kind: catalog.KindString}
}

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		"euler": {
			"steps": {Kind: catalog.KindNumber, Default: 20, Min: 1, Max: 150, Step: 1},
		},
		"karras": {
			"steps":     {Kind: catalog.KindNumber, Default: 20, Min: 1, Max: 150, Step: 1},
			"sigma_max": {Kind: catalog.KindNumber, Default: 14.6, Min: 0.1, Max: 100, Step: 0.1, Round: 0.01},
		},
	}
}

// builtNode returns a node with two intrinsic widgets and the test
// catalog's parameter widgets built and hidden, plus the capture hook
// for log assertions.
func builtNode() (*Node, *logrus.Logger, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()

	n := New(7, "Scheduler", 280, 0)
	n.AddWidget(NewWidget("scheduler", "combo", "euler", catalog.Declaration{}))
	n.AddWidget(NewWidget("denoise", "number", 1.0, catalog.Declaration{}))
	n.Intrinsic = len(n.Widgets)
	n.Size.Height = float64(n.Intrinsic) * RowHeight

	BuildWidgets(n, testCatalog(), stubFactory{}, logger)
	return n, logger, hook
}

func visibleNames(n *Node) []string {
	names := make([]string, 0)
	for i, w := range n.Widgets {
		if i >= n.Intrinsic && !w.Hidden() {
			names = append(names, w.Name)
		}
	}
	return names
}
