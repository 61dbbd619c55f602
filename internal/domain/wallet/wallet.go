package wallet

import "github.com/rcarvalho-pb/payment_methods-go/internal/domain/instrument"

// Wallet is an ordered list of instruments belonging to one payer. Charge
// attempts walk the list in registration order.
type Wallet struct {
	ID          string
	Owner       string
	Instruments []instrument.Instrument
}

func New(id, owner string) *Wallet {
	return &Wallet{ID: id, Owner: owner}
}

func (w *Wallet) AddInstrument(inst instrument.Instrument) {
	w.Instruments = append(w.Instruments, inst)
}
