package remote

import (
	"context"

	"github.com/sirupsen/logrus"

	"scheduler-node-editor/internal/events"
	"scheduler-node-editor/internal/node"
)

// SyncHandler answers value requests for one node. It listens on the
// bus, ignores requests addressed to other nodes, and reports the
// requested widget values to the backend with a fire-and-forget POST.
type SyncHandler struct {
	node   *node.Node
	client *Client
	bus    *events.Bus
	logger *logrus.Logger
	subID  string
}

// AttachSync registers a sync handler for the node. The returned
// handler stays subscribed until Detach is called, which the node's
// removal hook does.
func AttachSync(bus *events.Bus, n *node.Node, client *Client, logger *logrus.Logger) *SyncHandler {
	h := &SyncHandler{
		node:   n,
		client: client,
		bus:    bus,
		logger: logger,
	}
	h.subID = bus.Subscribe(EventValuesRequested, h.handle)
	return h
}

// Detach removes the bus subscription.
func (h *SyncHandler) Detach() {
	h.bus.Unsubscribe(EventValuesRequested, h.subID)
}

func (h *SyncHandler) handle(data any) {
	req, ok := data.(ValuesRequest)
	if !ok {
		h.logger.WithField("event", EventValuesRequested).Warn("Unexpected payload type on values request")
		return
	}
	if req.ID != h.node.ID {
		return
	}

	outputs := make(map[string]WidgetValue, len(req.WidgetsNeeded))
	for _, name := range req.WidgetsNeeded {
		w := h.node.Widget(name)
		if w == nil {
			h.logger.WithFields(logrus.Fields{
				"node":   h.node.ID,
				"widget": name,
			}).Debug("Requested widget not present on node")
			continue
		}
		outputs[name] = WidgetValue{Value: w.Value}
	}

	report := ValuesReport{NodeID: h.node.ID, Outputs: outputs}

	// Fire and forget: the editor never blocks on the backend.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), postTimeout)
		defer cancel()
		if err := h.client.PostSchedulerValues(ctx, report); err != nil {
			h.logger.WithError(err).WithField("node", h.node.ID).Warn("Failed to report scheduler values")
		}
	}()
}
