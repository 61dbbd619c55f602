package eventbus_test

import (
	"testing"

	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/event"
	"github.com/rcarvalho-pb/payment_methods-go/internal/infrastructure/eventbus"
)

func TestPublish_ReachesTypeAndWildcardSubscribers(t *testing.T) {
	bus := eventbus.NewInMemoryBus()

	var typed, all []event.Type
	bus.Subscribe(event.ChargeSucceeded, func(evt event.Event) error {
		typed = append(typed, evt.Type)
		return nil
	})
	bus.SubscribeAll(func(evt event.Event) error {
		all = append(all, evt.Type)
		return nil
	})

	bus.Publish(event.Event{Type: event.ChargeSucceeded})
	bus.Publish(event.Event{Type: event.ChargeFailed})

	if len(typed) != 1 {
		t.Errorf("expected 1 typed delivery, got %d", len(typed))
	}
	if len(all) != 2 {
		t.Errorf("expected 2 wildcard deliveries, got %d", len(all))
	}
}
