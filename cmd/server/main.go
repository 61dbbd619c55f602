package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/rcarvalho-pb/payment_methods-go/internal/application/checkout"
	"github.com/rcarvalho-pb/payment_methods-go/internal/application/processing"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/event"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/instrument"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/money"
	"github.com/rcarvalho-pb/payment_methods-go/internal/infra/config"
	"github.com/rcarvalho-pb/payment_methods-go/internal/infra/logging"
	"github.com/rcarvalho-pb/payment_methods-go/internal/infra/metrics"
	"github.com/rcarvalho-pb/payment_methods-go/internal/infrastructure/eventbus"
	httpapi "github.com/rcarvalho-pb/payment_methods-go/internal/infrastructure/http"
	"github.com/rcarvalho-pb/payment_methods-go/internal/infrastructure/persistence/inmemory"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	maxAmount, err := cfg.MaxAmount()
	if err != nil {
		log.Fatal(err)
	}

	logger := &logging.StdoutLogger{Service: "server"}
	counters := &metrics.Counters{}

	env := instrument.SystemEnv()
	env.PixFailureRate = cfg.Processing.PixFailureRate

	processor := &processing.Processor{
		Env:       env,
		MaxAmount: maxAmount,
		Logger:    logger,
		Metrics:   counters,
	}

	bus := eventbus.NewInMemoryBus()
	bus.SubscribeAll(func(evt event.Event) error {
		switch payload := evt.Payload.(type) {
		case event.ChargeRequestedPayload:
			logger.Info("charge requested", map[string]any{
				"charge-id": payload.ChargeID,
				"wallet-id": payload.WalletID,
				"amount":    payload.Amount,
			})
		case event.ChargeSucceededPayload:
			fields := map[string]any{
				"charge-id":  payload.ChargeID,
				"wallet-id":  payload.WalletID,
				"instrument": payload.MaskedInstrument,
				"settled":    payload.SettledAmount,
			}
			if payload.Advisory != "" {
				fields["advisory"] = payload.Advisory
			}
			logger.Info("charge succeeded", fields)
		case event.ChargeFailedPayload:
			logger.Error("charge attempt rejected", map[string]any{
				"charge-id":  payload.ChargeID,
				"wallet-id":  payload.WalletID,
				"instrument": payload.MaskedInstrument,
				"cause":      payload.Cause,
				"reason":     payload.Reason,
			})
		}
		return nil
	})

	service := &checkout.Service{
		Wallets:   inmemory.NewWalletRepository(),
		Processor: processor,
		EventBus:  bus,
	}

	handler := &httpapi.WalletHandler{
		Service:  service,
		Currency: money.Currency(cfg.Processing.Currency),
	}

	router := httpapi.NewRouter(handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("HTTP server running on port %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
