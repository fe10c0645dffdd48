// Wire types and endpoints for the backend value-sync protocol
package remote

// APIPrefix is the path prefix every editor endpoint lives under.
const APIPrefix = "/api/editor"

// SchedulerValuesPath is the endpoint widget values are reported to,
// relative to APIPrefix.
const SchedulerValuesPath = "/scheduler_values"

// EventValuesRequested is the bus event asking a node to report its
// current widget values. The payload is a ValuesRequest.
const EventValuesRequested = "scheduler_values_requested"

// ValuesRequest asks the node with the given id for the named widgets.
type ValuesRequest struct {
	ID            int      `json:"id"`
	WidgetsNeeded []string `json:"widgets_needed"`
}

// WidgetValue wraps a single reported widget value.
type WidgetValue struct {
	Value any `json:"value"`
}

// ValuesReport is the body posted back to the backend.
type ValuesReport struct {
	NodeID  int                    `json:"node_id"`
	Outputs map[string]WidgetValue `json:"outputs"`
}
