package eventbus

import (
	"sync"

	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/event"
)

type HandlerFunc func(event.Event) error

// wildcard receives every published event regardless of type.
const wildcard = event.Type("*")

type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[event.Type][]HandlerFunc
}

func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[event.Type][]HandlerFunc),
	}
}

func (b *InMemoryBus) Subscribe(eventType event.Type, handler HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll registers a handler for every event type.
func (b *InMemoryBus) SubscribeAll(handler HandlerFunc) {
	b.Subscribe(wildcard, handler)
}

func (b *InMemoryBus) Publish(evt event.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, handler := range b.handlers[evt.Type] {
		if err := handler(evt); err != nil {
			return err
		}
	}
	for _, handler := range b.handlers[wildcard] {
		if err := handler(evt); err != nil {
			return err
		}
	}

	return nil
}
