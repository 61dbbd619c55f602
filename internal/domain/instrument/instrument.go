// Package instrument holds the payment instrument variants. Every variant
// goes through the same two steps: Validate checks structure and business
// rules without touching state, Execute settles the amount and is the only
// place instrument state may change.
package instrument

import (
	"time"

	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/money"
)

type Kind string

const (
	KindCreditCard Kind = "CREDIT_CARD"
	KindBoleto     Kind = "BOLETO"
	KindPix        Kind = "PIX"
)

type Instrument interface {
	ID() string
	Description() string
	Kind() Kind

	// MaskedID never reveals the full raw identifier and is stable across
	// calls for the same instrument.
	MaskedID() string

	// Validate runs the structural and business-rule checks for the
	// variant. It never mutates the instrument.
	Validate(now time.Time) error

	// Execute settles the amount, applying variant-specific adjustments.
	// It must only be called after Validate succeeds.
	Execute(amount money.Money, env Env) (*Receipt, error)
}
