package gui

import (
	"github.com/sirupsen/logrus"

	"scheduler-node-editor/internal/catalog"
	"scheduler-node-editor/internal/events"
	"scheduler-node-editor/internal/node"
	"scheduler-node-editor/internal/remote"
)

// SelectorWidget is the name of the intrinsic dropdown that picks the
// scheduler.
const SelectorWidget = "scheduler"

// DefaultScheduler is the selector value a fresh node starts with.
const DefaultScheduler = "normal"

// SchedulerBehavior implements node.Behavior for the scheduler node
// type: it builds the parameter widget set at creation, keeps the
// visible set in step with the selector, and answers backend value
// requests.
type SchedulerBehavior struct {
	cat     catalog.Catalog
	factory node.WidgetFactory
	bus     *events.Bus
	client  *remote.Client
	logger  *logrus.Logger

	sync map[int]*remote.SyncHandler
}

// NewSchedulerBehavior wires the behavior's collaborators.
func NewSchedulerBehavior(cat catalog.Catalog, factory node.WidgetFactory, bus *events.Bus, client *remote.Client, logger *logrus.Logger) *SchedulerBehavior {
	return &SchedulerBehavior{
		cat:     cat,
		factory: factory,
		bus:     bus,
		client:  client,
		logger:  logger,
		sync:    make(map[int]*remote.SyncHandler),
	}
}

// OnCreated instantiates every catalog parameter as a hidden widget,
// attaches the value-sync listener and shows the set for the node's
// initial selector value.
func (b *SchedulerBehavior) OnCreated(n *node.Node) {
	created := node.BuildWidgets(n, b.cat, b.factory, b.logger)
	b.logger.WithFields(logrus.Fields{
		"node":    n.ID,
		"widgets": len(created),
	}).Debug("Built scheduler parameter widgets")

	b.sync[n.ID] = remote.AttachSync(b.bus, n, b.client, b.logger)

	node.ApplyScheduler(n, b.cat, b.Selector(n), b.logger)
}

// OnConfigure restores persisted widget values, then re-runs the
// reactor with the persisted selector value.
func (b *SchedulerBehavior) OnConfigure(n *node.Node, st node.State) {
	n.Restore(st)
	node.ApplyScheduler(n, b.cat, b.Selector(n), b.logger)
}

// OnConnectInput marks the widget as input-driven so its value keeps
// serializing while hidden.
func (b *SchedulerBehavior) OnConnectInput(n *node.Node, widgetName string) bool {
	if w := n.Widget(widgetName); w != nil {
		w.InputDriven = true
	}
	return true
}

// OnRemoved detaches the node's sync listener.
func (b *SchedulerBehavior) OnRemoved(n *node.Node) {
	if h, ok := b.sync[n.ID]; ok {
		h.Detach()
		delete(b.sync, n.ID)
	}
}

// SetSelector changes the selector widget value and reconciles the
// visible parameter set. This is the selector widget's value-change
// callback.
func (b *SchedulerBehavior) SetSelector(n *node.Node, scheduler string) {
	if w := n.Widget(SelectorWidget); w != nil {
		w.Value = scheduler
	}
	node.ApplyScheduler(n, b.cat, scheduler, b.logger)
}

// Selector reads the node's current selector value.
func (b *SchedulerBehavior) Selector(n *node.Node) string {
	w := n.Widget(SelectorWidget)
	if w == nil {
		return ""
	}
	s, _ := w.Value.(string)
	return s
}
