// In-process named event bus connecting the editor to node handlers
package events

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Handler receives the payload published with an event.
type Handler func(data any)

// Bus dispatches named events to subscribed handlers. Publish runs the
// handlers synchronously on the caller's goroutine, matching the host
// editor's single-threaded callback model.
type Bus struct {
	logger *logrus.Logger

	mu   sync.RWMutex
	subs map[string]map[string]Handler
}

// NewBus creates an empty bus.
func NewBus(logger *logrus.Logger) *Bus {
	return &Bus{
		logger: logger,
		subs:   make(map[string]map[string]Handler),
	}
}

// Subscribe registers a handler for an event and returns the
// subscription id used to remove it again.
func (b *Bus) Subscribe(event string, h Handler) string {
	id := uuid.NewString()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[event] == nil {
		b.subs[event] = make(map[string]Handler)
	}
	b.subs[event][id] = h
	return id
}

// Unsubscribe removes a subscription. Unknown ids are ignored.
func (b *Bus) Unsubscribe(event, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs[event], id)
}

// Publish delivers data to every handler subscribed to the event.
func (b *Bus) Publish(event string, data any) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[event]))
	for _, h := range b.subs[event] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	b.logger.WithFields(logrus.Fields{
		"event":    event,
		"handlers": len(handlers),
	}).Debug("Publishing event")

	for _, h := range handlers {
		h(data)
	}
}
