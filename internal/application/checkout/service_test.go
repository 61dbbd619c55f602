package checkout_test

import (
	"testing"
	"time"

	"github.com/rcarvalho-pb/payment_methods-go/internal/application/checkout"
	"github.com/rcarvalho-pb/payment_methods-go/internal/application/processing"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/event"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/failure"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/instrument"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/money"
	"github.com/rcarvalho-pb/payment_methods-go/internal/infra/logging"
	"github.com/rcarvalho-pb/payment_methods-go/internal/infra/metrics"
	"github.com/rcarvalho-pb/payment_methods-go/internal/infrastructure/persistence/inmemory"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fixedRand struct {
	value int
}

func (r fixedRand) Intn(n int) int {
	return r.value % n
}

type fakeBus struct {
	events []event.Event
}

func (b *fakeBus) Publish(evt event.Event) error {
	b.events = append(b.events, evt)
	return nil
}

func newService() (*checkout.Service, *fakeBus) {
	bus := &fakeBus{}
	service := &checkout.Service{
		Wallets: inmemory.NewWalletRepository(),
		Processor: &processing.Processor{
			Env: instrument.Env{
				Clock:          fixedClock{now: time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)},
				Rand:           fixedRand{value: 99},
				PixFailureRate: instrument.DefaultPixFailureRate,
			},
			MaxAmount: money.MustFromString("999999.99", money.BRL),
			Logger:    logging.NopLogger{},
			Metrics:   &metrics.Counters{},
		},
		EventBus: bus,
	}
	return service, bus
}

func amountOf(s string) *money.Money {
	m := money.MustFromString(s, money.BRL)
	return &m
}

func TestService_CreateWalletGeneratesIDWhenEmpty(t *testing.T) {
	service, _ := newService()

	w, err := service.CreateWallet("", "João Silva")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.ID == "" {
		t.Error("expected a generated wallet id")
	}
}

func TestService_ChargeUnknownWallet(t *testing.T) {
	service, _ := newService()

	_, _, err := service.Charge("missing", amountOf("10.00"))
	if err != checkout.ErrWalletNotFound {
		t.Errorf("expected ErrWalletNotFound, got %v", err)
	}
}

func TestService_ChargeEmptyWallet(t *testing.T) {
	service, _ := newService()

	w, _ := service.CreateWallet("w1", "João Silva")

	_, _, err := service.Charge(w.ID, amountOf("10.00"))
	if err != checkout.ErrNoInstruments {
		t.Errorf("expected ErrNoInstruments, got %v", err)
	}
}

func TestService_ChargePublishesLifecycleEvents(t *testing.T) {
	service, bus := newService()

	w, _ := service.CreateWallet("w1", "João Silva")

	// an exhausted card first, then a good pix key
	card := instrument.NewCreditCard("4532015112830366", "João Silva", "12/27", "123",
		money.MustFromString("100.00", money.BRL))
	if err := service.RegisterInstrument(w.ID, card); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.RegisterInstrument(w.ID, instrument.NewPix("usuario@exemplo.com", instrument.KeyEmail, "")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, attempts, err := service.Charge(w.ID, amountOf("250.00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Succeeded() {
		t.Fatalf("expected the pix key to settle, got %v", result.Err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}

	if len(bus.events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(bus.events))
	}
	if bus.events[0].Type != event.ChargeRequested {
		t.Errorf("expected ChargeRequested first, got %s", bus.events[0].Type)
	}
	if bus.events[1].Type != event.ChargeFailed {
		t.Errorf("expected ChargeFailed second, got %s", bus.events[1].Type)
	}
	if bus.events[2].Type != event.ChargeSucceeded {
		t.Errorf("expected ChargeSucceeded last, got %s", bus.events[2].Type)
	}

	failed, ok := bus.events[1].Payload.(event.ChargeFailedPayload)
	if !ok {
		t.Fatal("invalid payload for ChargeFailed")
	}
	if failed.Cause != failure.CardInsufficientLimit {
		t.Errorf("expected CardInsufficientLimit cause, got %s", failed.Cause)
	}
	if failed.MaskedInstrument != "**** **** **** 0366" {
		t.Errorf("unexpected masked instrument %q", failed.MaskedInstrument)
	}

	succeeded, ok := bus.events[2].Payload.(event.ChargeSucceededPayload)
	if !ok {
		t.Fatal("invalid payload for ChargeSucceeded")
	}
	if succeeded.SettledAmount != "BRL 250.00" {
		t.Errorf("unexpected settled amount %q", succeeded.SettledAmount)
	}
	if succeeded.ChargeID != failed.ChargeID {
		t.Error("expected the same charge id on every event")
	}
}

func TestService_InstrumentsChargeInRegistrationOrder(t *testing.T) {
	service, _ := newService()

	w, _ := service.CreateWallet("w1", "João Silva")

	first := instrument.NewPix("usuario@exemplo.com", instrument.KeyEmail, "")
	second := instrument.NewPix("+5511987654321", instrument.KeyPhone, "")
	service.RegisterInstrument(w.ID, first)
	service.RegisterInstrument(w.ID, second)

	result, attempts, err := service.Charge(w.ID, amountOf("10.00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("expected a single attempt, got %d", len(attempts))
	}
	if result.Receipt.MaskedID != first.MaskedID() {
		t.Errorf("expected the first instrument to settle, got %q", result.Receipt.MaskedID)
	}
}
