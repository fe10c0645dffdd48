package node

// Behavior is the lifecycle contract a node type implements toward the
// host editor. The host invokes the hooks on its main loop; no hook
// runs concurrently with another.
type Behavior interface {
	// OnCreated runs once when the node is placed in the graph, after
	// the host has attached the node's intrinsic widgets.
	OnCreated(n *Node)

	// OnConfigure runs when the node is rebuilt from a saved document.
	OnConfigure(n *Node, st State)

	// OnConnectInput runs when an input link is attached to the named
	// widget. Returning false rejects the connection.
	OnConnectInput(n *Node, widgetName string) bool

	// OnRemoved runs when the node leaves the graph, releasing
	// anything the behavior registered on the node's behalf.
	OnRemoved(n *Node)
}
