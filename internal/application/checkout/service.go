package checkout

import (
	"errors"

	"github.com/google/uuid"

	"github.com/rcarvalho-pb/payment_methods-go/internal/application/processing"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/event"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/failure"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/instrument"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/money"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/wallet"
)

var (
	ErrWalletNotFound = errors.New("wallet not found")
	ErrNoInstruments  = errors.New("wallet has no instruments")
)

type EventPublisher interface {
	Publish(event.Event) error
}

// Service charges wallets: it walks the wallet's instruments in order until
// one settles and publishes the lifecycle events along the way.
type Service struct {
	Wallets   wallet.Repository
	Processor *processing.Processor
	EventBus  EventPublisher
}

func (s *Service) CreateWallet(id, owner string) (*wallet.Wallet, error) {
	if id == "" {
		id = uuid.NewString()
	}

	w := wallet.New(id, owner)
	if err := s.Wallets.Save(w); err != nil {
		return nil, err
	}

	return w, nil
}

func (s *Service) ListWallets() ([]*wallet.Wallet, error) {
	return s.Wallets.All()
}

func (s *Service) RegisterInstrument(walletID string, inst instrument.Instrument) error {
	w, err := s.Wallets.FindByID(walletID)
	if err != nil {
		return ErrWalletNotFound
	}

	w.AddInstrument(inst)
	return s.Wallets.Save(w)
}

// Charge runs the fallback protocol over the wallet's instruments. The
// returned attempts cover every instrument tried, including the failures
// that preceded a success.
func (s *Service) Charge(walletID string, amount *money.Money) (processing.Result, []processing.Attempt, error) {
	w, err := s.Wallets.FindByID(walletID)
	if err != nil {
		return processing.Result{}, nil, ErrWalletNotFound
	}

	if len(w.Instruments) == 0 {
		return processing.Result{}, nil, ErrNoInstruments
	}

	chargeID := "chg_" + uuid.NewString()

	amountText := ""
	if amount != nil {
		amountText = amount.String()
	}

	s.EventBus.Publish(event.Event{
		Type: event.ChargeRequested,
		Payload: event.ChargeRequestedPayload{
			ChargeID: chargeID,
			WalletID: w.ID,
			Amount:   amountText,
		},
	})

	result, attempts := s.Processor.ProcessAny(w.Instruments, amount)

	for _, attempt := range attempts {
		if attempt.Result.Succeeded() {
			continue
		}
		s.EventBus.Publish(event.Event{
			Type: event.ChargeFailed,
			Payload: event.ChargeFailedPayload{
				ChargeID:         chargeID,
				WalletID:         w.ID,
				InstrumentKind:   string(attempt.Instrument.Kind()),
				MaskedInstrument: attempt.Instrument.MaskedID(),
				Cause:            failure.KindOf(attempt.Result.Err),
				Reason:           attempt.Result.Err.Error(),
			},
		})
	}

	if result.Succeeded() {
		s.EventBus.Publish(event.Event{
			Type: event.ChargeSucceeded,
			Payload: event.ChargeSucceededPayload{
				ChargeID:         chargeID,
				WalletID:         w.ID,
				InstrumentKind:   string(result.Receipt.InstrumentKind),
				MaskedInstrument: result.Receipt.MaskedID,
				SettledAmount:    result.Receipt.SettledAmount.String(),
				Advisory:         result.Receipt.Advisory,
			},
		})
	}

	return result, attempts, nil
}
