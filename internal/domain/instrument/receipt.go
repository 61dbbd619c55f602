package instrument

import (
	"fmt"

	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/money"
)

// Receipt is the success descriptor returned by Execute. Fields that do not
// apply to the instrument kind are left zero.
type Receipt struct {
	InstrumentKind Kind
	MaskedID       string
	Amount         money.Money
	SettledAmount  money.Money

	// credit card
	RemainingLimit *money.Money

	// boleto
	Beneficiary   string
	LateBreakdown *LateBreakdown
	Advisory      string

	// pix
	TransactionID string
	Note          string
}

// LateBreakdown details the adjustment applied to an overdue slip.
type LateBreakdown struct {
	Original money.Money
	Penalty  money.Money
	Interest money.Money
	DaysLate int
}

// Summary renders a one-line human-readable confirmation.
func (r *Receipt) Summary() string {
	switch r.InstrumentKind {
	case KindCreditCard:
		return fmt.Sprintf("payment of %s approved on card %s. remaining limit: %s",
			r.Amount, r.MaskedID, r.RemainingLimit)
	case KindBoleto:
		s := fmt.Sprintf("slip %s paid. amount: %s. beneficiary: %s",
			r.MaskedID, r.SettledAmount, r.Beneficiary)
		if b := r.LateBreakdown; b != nil {
			s += fmt.Sprintf(" (original: %s + penalty: %s + interest: %s, %d days late)",
				b.Original, b.Penalty, b.Interest, b.DaysLate)
		}
		return s
	case KindPix:
		s := fmt.Sprintf("pix of %s sent to %s. id: %s", r.SettledAmount, r.MaskedID, r.TransactionID)
		if r.Note != "" {
			s += ". note: " + r.Note
		}
		return s
	}
	return fmt.Sprintf("payment of %s settled via %s", r.SettledAmount, r.MaskedID)
}
