package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"scheduler-node-editor/internal/catalog"
	"scheduler-node-editor/internal/config"
	"scheduler-node-editor/internal/node"
	"scheduler-node-editor/internal/util"
)

const nodeWidth = 280

// NodePanel renders one scheduler node: its intrinsic widgets followed
// by whichever parameter rows the selector currently exposes.
type NodePanel struct {
	node     *node.Node
	behavior *SchedulerBehavior
	cat      catalog.Catalog
	logger   *logrus.Logger

	selector *widget.Select
	paramBox *fyne.Container
	root     fyne.CanvasObject
}

// NewNodePanel creates the node with its intrinsic widgets, runs the
// creation lifecycle hook and builds the panel UI.
func NewNodePanel(id int, cat catalog.Catalog, behavior *SchedulerBehavior, factory *Factory, settings *config.Settings, logger *logrus.Logger) *NodePanel {
	n := node.New(id, "Scheduler", nodeWidth, 0)

	selectorWidget := node.NewWidget(SelectorWidget, "combo", DefaultScheduler, catalog.Declaration{Kind: catalog.KindCombo})
	n.AddWidget(selectorWidget)
	denoise := factory.Create(n, "denoise", catalog.Declaration{
		Kind: catalog.KindNumber, Default: 1.0, Min: 0.0, Max: 1.0, Step: 0.01, Round: 0.01,
	})
	n.AddWidget(denoise)
	n.Intrinsic = len(n.Widgets)
	n.Size.Height = float64(n.Intrinsic) * node.RowHeight

	behavior.OnCreated(n)

	p := &NodePanel{
		node:     n,
		behavior: behavior,
		cat:      cat,
		logger:   logger,
	}
	p.initializeUI(settings, denoise)
	return p
}

func (p *NodePanel) initializeUI(settings *config.Settings, denoise *node.Widget) {
	favourites := settings.Strings(config.KeyFavouriteSchedulers, nil)
	options := util.FavouritesOnTop(favourites, p.cat.Schedulers())

	p.selector = widget.NewSelect(options, p.onSchedulerSelected)
	p.node.Widget(SelectorWidget).Handle = p.selector

	p.paramBox = container.NewVBox()
	p.rebuildParams()

	denoiseRow, _ := denoise.Handle.(fyne.CanvasObject)

	p.root = widget.NewCard(p.node.Title, "",
		container.NewVBox(
			p.selector,
			denoiseRow,
			widget.NewSeparator(),
			p.paramBox,
		))

	p.selector.SetSelected(p.behavior.Selector(p.node))
}

func (p *NodePanel) onSchedulerSelected(selected string) {
	if selected == "" {
		return
	}

	p.behavior.SetSelector(p.node, selected)
	p.rebuildParams()

	p.logger.WithFields(logrus.Fields{
		"node":      p.node.ID,
		"scheduler": selected,
		"visible":   len(p.paramBox.Objects),
		"height":    p.node.Size.Height,
	}).Debug("Scheduler selected")
}

// rebuildParams swaps the rendered rows to the currently visible
// parameter widgets. The underlying widget handles are reused, so
// widget identity survives every selector change.
func (p *NodePanel) rebuildParams() {
	p.paramBox.RemoveAll()
	for i, w := range p.node.Widgets {
		if i < p.node.Intrinsic || w.Hidden() {
			continue
		}
		if row, ok := w.Handle.(fyne.CanvasObject); ok {
			p.paramBox.Add(row)
		}
	}
	p.paramBox.Refresh()
}

// Node exposes the underlying node, mainly for the application shell.
func (p *NodePanel) Node() *node.Node {
	return p.node
}

// GetContainer returns the panel's root canvas object.
func (p *NodePanel) GetContainer() fyne.CanvasObject {
	return p.root
}
