package server

import (
	"context"
	"sync"

	"scheduler-node-editor/internal/remote"
)

// Messages matches inbound value reports to the callers waiting for
// them, keyed by node id. Reports that arrive before anyone waits are
// stashed; a newer report for the same node replaces the stashed one.
type Messages struct {
	mu      sync.Mutex
	pending map[int]remote.ValuesReport
	waiters map[int]chan remote.ValuesReport
}

// NewMessages creates an empty message holder.
func NewMessages() *Messages {
	return &Messages{
		pending: make(map[int]remote.ValuesReport),
		waiters: make(map[int]chan remote.ValuesReport),
	}
}

// Expect registers interest in the next report for a node. The caller
// must call Forget when done. A stashed report is delivered immediately.
func (m *Messages) Expect(nodeID int) <-chan remote.ValuesReport {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan remote.ValuesReport, 1)
	if report, ok := m.pending[nodeID]; ok {
		delete(m.pending, nodeID)
		ch <- report
		return ch
	}
	m.waiters[nodeID] = ch
	return ch
}

// Forget drops the waiter registration for a node.
func (m *Messages) Forget(nodeID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.waiters, nodeID)
}

// Deliver hands a report to its waiter, or stashes it (last report
// wins) when nobody is waiting yet.
func (m *Messages) Deliver(report remote.ValuesReport) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ch, ok := m.waiters[report.NodeID]; ok {
		delete(m.waiters, report.NodeID)
		ch <- report
		return
	}
	m.pending[report.NodeID] = report
}

// Wait blocks until a report for the node arrives or ctx is done.
func (m *Messages) Wait(ctx context.Context, nodeID int) (remote.ValuesReport, error) {
	ch := m.Expect(nodeID)
	defer m.Forget(nodeID)

	select {
	case report := <-ch:
		return report, nil
	case <-ctx.Done():
		return remote.ValuesReport{}, ctx.Err()
	}
}
