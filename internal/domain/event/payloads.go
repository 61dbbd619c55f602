package event

import "github.com/rcarvalho-pb/payment_methods-go/internal/domain/failure"

type ChargeRequestedPayload struct {
	ChargeID string
	WalletID string
	Amount   string
}

type ChargeSucceededPayload struct {
	ChargeID         string
	WalletID         string
	InstrumentKind   string
	MaskedInstrument string
	SettledAmount    string
	Advisory         string
}

// ChargeFailedPayload reports one rejected instrument. A single charge may
// emit several of these before succeeding on a later instrument.
type ChargeFailedPayload struct {
	ChargeID         string
	WalletID         string
	InstrumentKind   string
	MaskedInstrument string
	Cause            failure.Kind
	Reason           string
}
