// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/tide-input/internal/logger"
)

// Handler is called for each dispatched event of a subscribed type.
// Returning true consumes the event and stops further handlers.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.Debugf("Event Manager: Handler subscribed to %v", eventType)
}

// Dispatch sends an event to all registered handlers for its type,
// synchronously and in subscription order.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	m.mu.RLock()
	handlers := make([]Handler, len(m.handlers[eventType]))
	copy(handlers, m.handlers[eventType]) // handlers may subscribe during dispatch
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	e := Event{Type: eventType, Data: data}
	for _, handler := range handlers {
		if handler(e) {
			break
		}
	}
}
